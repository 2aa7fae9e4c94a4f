// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aliasfixture_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeactual/aliasfixture/internal/aliasfixture"
	testkit_require "github.com/codeactual/aliasfixture/internal/cage/testkit/testify/require"
)

func entryNames(entries []aliasfixture.Entry) (names []string) {
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func TestCatalog(t *testing.T) {
	catalog := aliasfixture.Catalog()

	testkit_require.StringSliceExactly(
		t,
		[]string{"run_module_a", "run_module_b", "run_alias_a", "run_alias_b"},
		entryNames(catalog),
	)

	for _, e := range catalog {
		require.NotNil(t, e.Call, e.Name)
	}

	require.Exactly(t, []string{"a", "b"}, aliasfixture.Namespaces(catalog))
	require.Exactly(t, aliasfixture.Names(), entryNames(catalog))
}

func TestFind(t *testing.T) {
	e, err := aliasfixture.Find("run_alias_b")
	require.NoError(t, err)
	require.Exactly(t, "b", e.Namespace)
	require.Exactly(t, aliasfixture.RefAlias, e.Ref)
	require.Exactly(t, 2, e.Call())

	e, err = aliasfixture.Find("run_module_a")
	require.NoError(t, err)
	require.Exactly(t, "a", e.Namespace)
	require.Exactly(t, aliasfixture.RefQualified, e.Ref)
	require.Exactly(t, 1, e.Call())

	_, err = aliasfixture.Find("run_module_c")
	require.EqualError(t, err, "fixture function [run_module_c] not found, available: run_module_a, run_module_b, run_alias_a, run_alias_b")
}

func TestSelectAllWhenEmpty(t *testing.T) {
	for _, names := range [][]string{nil, {}, {"", " "}} {
		selected, errs := aliasfixture.Select(names...)
		require.Empty(t, errs)
		require.Exactly(t, aliasfixture.Names(), entryNames(selected))
	}
}

func TestSelectCatalogOrderWithoutDuplicates(t *testing.T) {
	selected, errs := aliasfixture.Select("run_alias_b", "run_module_a", " run_alias_b ")
	require.Empty(t, errs)
	testkit_require.StringSliceExactly(t, []string{"run_module_a", "run_alias_b"}, entryNames(selected))
}

func TestSelectUnknownNames(t *testing.T) {
	selected, errs := aliasfixture.Select("run_alias_z", "run_alias_a", "helper")
	require.Nil(t, selected)
	testkit_require.ErrorStringsExactly(
		t,
		[]string{
			"fixture function [helper] not found, available: run_module_a, run_module_b, run_alias_a, run_alias_b",
			"fixture function [run_alias_z] not found, available: run_module_a, run_module_b, run_alias_a, run_alias_b",
		},
		errs,
	)
}
