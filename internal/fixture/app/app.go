// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// In this fixture, each namespace's Helper is reachable by two spellings: a call through
// the named import and a call through a package-level alias bound at initialization.
package app

import (
	util_a "github.com/codeactual/aliasfixture/internal/fixture/pkga/util"
	util_b "github.com/codeactual/aliasfixture/internal/fixture/pkgb/util"
)

var helperA = util_a.Helper

var helperB = util_b.Helper

func RunModuleA() int {
	return util_a.Helper()
}

func RunModuleB() int {
	return util_b.Helper()
}

func RunAliasA() int {
	return helperA()
}

func RunAliasB() int {
	return helperB()
}
