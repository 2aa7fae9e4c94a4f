// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aliasfixture

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	std_viper "github.com/spf13/viper"

	cage_viper "github.com/codeactual/aliasfixture/internal/cage/config/viper"
	cage_file "github.com/codeactual/aliasfixture/internal/cage/os/file"
)

// ConfigBaseName is the file name, minus extension, searched for when no config file is selected.
const ConfigBaseName = "aliasfixture"

// Config holds the optional file-based settings.
type Config struct {
	// Expect holds the value each namespace's helper should return, e.g. {"a": 1, "b": 2}.
	Expect map[string]int

	// Funcs is the default selection of fixture function names for `run`.
	Funcs []string
}

// ReadFile loads the named .yml/.yaml/.json/.toml file.
//
// If name is empty, the working directory is searched for ConfigBaseName plus one of those
// extensions. Finding no file is not an error because all settings are optional.
func (c *Config) ReadFile(name string) (errs []error) {
	if name == "" {
		for _, ext := range []string{"yml", "yaml", "json", "toml"} {
			candidate := ConfigBaseName + "." + ext
			if exists, _, err := cage_file.Exists(candidate); err != nil {
				return []error{errors.WithStack(err)}
			} else if exists {
				name = candidate
				break
			}
		}
	}

	if name == "" {
		return nil
	}

	file := std_viper.New()
	if err := cage_viper.ReadInConfig(file, name); err != nil {
		return []error{errors.Wrapf(err, "failed to locate config file [%s]", name)}
	}

	if err := file.UnmarshalExact(c); err != nil {
		return []error{errors.Wrapf(err, "failed to parse file [%s]", name)}
	}

	if _, selectErrs := Select(c.Funcs...); len(selectErrs) > 0 {
		for _, err := range selectErrs {
			errs = append(errs, errors.Wrapf(err, "config file [%s] Funcs list is invalid", name))
		}
	}

	return errs
}

// MergeExpect returns the file's expectations overlaid with the override's.
func (c *Config) MergeExpect(override map[string]int) map[string]int {
	merged := make(map[string]int)
	for ns, v := range c.Expect {
		merged[ns] = v
	}
	for ns, v := range override {
		merged[ns] = v
	}
	return merged
}

// ParseExpect parses the flag form of Config.Expect, e.g. "a=1,b=2".
//
// Each namespace may appear once.
func ParseExpect(s string) (map[string]int, error) {
	expect := make(map[string]int)

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" {
			return nil, errors.Errorf("expectation [%s] is not in namespace=value form", pair)
		}

		v, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "expectation [%s] value is not an integer", pair)
		}

		ns := strings.TrimSpace(parts[0])
		if _, dup := expect[ns]; dup {
			return nil, errors.Errorf("expectation [%s] repeats namespace [%s]", pair, ns)
		}
		expect[ns] = v
	}

	return expect, nil
}
