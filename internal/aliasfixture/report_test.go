// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aliasfixture_test

import (
	"encoding/json"
	"io/ioutil"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeactual/aliasfixture/internal/aliasfixture"
	testkit_file "github.com/codeactual/aliasfixture/internal/cage/testkit/os/file"
	testkit_require "github.com/codeactual/aliasfixture/internal/cage/testkit/testify/require"
)

func TestInvoke(t *testing.T) {
	report := aliasfixture.Invoke(aliasfixture.Catalog()...)

	require.Exactly(
		t,
		[]aliasfixture.Result{
			{Name: "run_module_a", Namespace: "a", Ref: "qualified", Value: 1},
			{Name: "run_module_b", Namespace: "b", Ref: "qualified", Value: 2},
			{Name: "run_alias_a", Namespace: "a", Ref: "alias", Value: 1},
			{Name: "run_alias_b", Namespace: "b", Ref: "alias", Value: 2},
		},
		report.Results,
	)

	v, ok := report.Value("run_alias_b")
	require.True(t, ok)
	require.Exactly(t, 2, v)

	_, ok = report.Value("run_alias_c")
	require.False(t, ok)

	require.Exactly(t, []string{"a", "b"}, report.Namespaces())
}

func TestInvokeCallsInOrder(t *testing.T) {
	var calls []string
	record := func(name string) func() int {
		return func() int {
			calls = append(calls, name)
			return len(calls)
		}
	}

	report := aliasfixture.Invoke(
		aliasfixture.Entry{Name: "second", Namespace: "x", Ref: aliasfixture.RefAlias, Call: record("second")},
		aliasfixture.Entry{Name: "first", Namespace: "x", Ref: aliasfixture.RefQualified, Call: record("first")},
	)

	require.Exactly(t, []string{"second", "first"}, calls)
	require.Exactly(t, 1, report.Results[0].Value)
	require.Exactly(t, 2, report.Results[1].Value)
}

func TestReportString(t *testing.T) {
	report := aliasfixture.Invoke(aliasfixture.Catalog()...)

	require.Exactly(
		t,
		"NAME          NAMESPACE  REF        VALUE\n"+
			"run_module_a  a          qualified  1\n"+
			"run_module_b  b          qualified  2\n"+
			"run_alias_a   a          alias      1\n"+
			"run_alias_b   b          alias      2\n",
		report.String(),
	)
}

func TestReportWriteFile(t *testing.T) {
	testkit_file.ResetTestdata(t)

	report := aliasfixture.Invoke(aliasfixture.Catalog()...)

	_, jsonPath := testkit_file.CreatePath(t, "report.json")
	require.NoError(t, report.WriteFile(jsonPath))

	jsonBytes, err := ioutil.ReadFile(jsonPath) // #nosec G304
	require.NoError(t, err)

	var fromJSON aliasfixture.Report
	require.NoError(t, json.Unmarshal(jsonBytes, &fromJSON))
	require.Exactly(t, report.Results, fromJSON.Results)

	_, yamlPath := testkit_file.CreatePath(t, "report.yml")
	require.NoError(t, report.WriteFile(yamlPath))
	testkit_require.FileStringContains(t, yamlPath, "results:", "name: run_alias_a", "ref: alias", "value: 2")

	_, tomlPath := testkit_file.CreatePath(t, "report.toml")
	require.NoError(t, report.WriteFile(tomlPath))
	testkit_require.FileStringContains(t, tomlPath, "run_module_b", "qualified")
}

func TestReportWriteFileError(t *testing.T) {
	testkit_file.ResetTestdata(t)

	_, p := testkit_file.CreatePath(t, "missing-dir", "report.json")
	err := aliasfixture.Invoke().WriteFile(p)
	require.Error(t, err)
	testkit_require.StringContains(t, err.Error(), "failed to write Report to file")
}
