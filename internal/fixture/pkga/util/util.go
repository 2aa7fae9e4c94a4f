// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package util is namespace "a" of the fixture. Its name deliberately collides with
// the sibling namespace "b" so that importers of both must name their imports.
package util

// Helper is the namespace "a" target of both qualified and aliased references.
func Helper() int {
	return 1
}
