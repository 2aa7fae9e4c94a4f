// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package util is namespace "b" of the fixture. See pkga/util.
package util

// Helper is the namespace "b" target of both qualified and aliased references.
func Helper() int {
	return 2
}
