// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aliasfixture

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	cage_strings "github.com/codeactual/aliasfixture/internal/cage/strings"
)

const (
	newFileMode = 0644
)

// Result holds the value returned by one fixture function call.
type Result struct {
	Name      string `json:"name" toml:"name" yaml:"name"`
	Namespace string `json:"namespace" toml:"namespace" yaml:"namespace"`
	Ref       string `json:"ref" toml:"ref" yaml:"ref"`
	Value     int    `json:"value" toml:"value" yaml:"value"`
}

// Report holds the results of an Invoke call in invocation order.
type Report struct {
	Results []Result `json:"results" toml:"results" yaml:"results"`
}

// Invoke calls each entry once, in order.
//
// Any panic from a helper propagates to the caller unchanged.
func Invoke(entries ...Entry) *Report {
	r := &Report{}
	for _, e := range entries {
		r.Results = append(r.Results, Result{
			Name:      e.Name,
			Namespace: e.Namespace,
			Ref:       string(e.Ref),
			Value:     e.Call(),
		})
	}
	return r
}

// Value returns the first recorded value for the named function.
func (r *Report) Value(name string) (int, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res.Value, true
		}
	}
	return 0, false
}

// Namespaces returns the sorted, distinct namespaces in the report.
func (r *Report) Namespaces() []string {
	set := cage_strings.NewSet()
	for _, res := range r.Results {
		set.Add(res.Namespace)
	}
	return set.SortedSlice()
}

func (r *Report) String() string {
	var b strings.Builder

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNAMESPACE\tREF\tVALUE")
	for _, res := range r.Results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", res.Name, res.Namespace, res.Ref, res.Value)
	}
	_ = w.Flush()

	return b.String()
}

// WriteFile selects the encoding from the file extension: .json, .toml, otherwise YAML.
func (r *Report) WriteFile(name string) (err error) {
	var fileBytes []byte

	switch filepath.Ext(name) {
	case ".json":
		fileBytes, err = json.MarshalIndent(r, "", "  ")
	case ".toml":
		fileBytes, err = toml.Marshal(*r)
	default:
		fileBytes, err = yaml.Marshal(r)
	}

	if err != nil {
		return errors.Wrap(err, "failed to marshal Report")
	}

	if err = ioutil.WriteFile(name, fileBytes, newFileMode); err != nil {
		return errors.Wrapf(err, "failed to write Report to file [%s]", name)
	}

	return nil
}
