// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeactual/aliasfixture/internal/fixture/app"
	util_a "github.com/codeactual/aliasfixture/internal/fixture/pkga/util"
	util_b "github.com/codeactual/aliasfixture/internal/fixture/pkgb/util"
)

func TestValues(t *testing.T) {
	require.Exactly(t, 1, app.RunModuleA())
	require.Exactly(t, 1, app.RunAliasA())
	require.Exactly(t, 2, app.RunModuleB())
	require.Exactly(t, 2, app.RunAliasB())
}

func TestAliasMatchesQualified(t *testing.T) {
	require.Exactly(t, app.RunModuleA(), app.RunAliasA())
	require.Exactly(t, app.RunModuleB(), app.RunAliasB())

	require.Exactly(t, util_a.Helper(), app.RunAliasA())
	require.Exactly(t, util_b.Helper(), app.RunAliasB())
}

func TestNamespaceIsolation(t *testing.T) {
	a := app.RunModuleA()
	_ = app.RunModuleB()
	_ = app.RunAliasB()
	require.Exactly(t, a, app.RunModuleA())
	require.Exactly(t, a, app.RunAliasA())

	b := app.RunAliasB()
	_ = app.RunAliasA()
	_ = app.RunModuleA()
	require.Exactly(t, b, app.RunModuleB())
	require.Exactly(t, b, app.RunAliasB())

	require.NotEqual(t, app.RunModuleA(), app.RunModuleB())
}
