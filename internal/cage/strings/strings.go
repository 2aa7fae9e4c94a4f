// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package strings

import "sort"

// SortStable sorts the slice in place, in increasing order.
func SortStable(s []string) {
	sort.Stable(sort.StringSlice(s))
}
