// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package reflect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cage_reflect "github.com/codeactual/aliasfixture/internal/cage/reflect"
)

type flagged struct {
	Func    string `usage:"fixture function names"`
	Untagged string
}

func TestGetFieldTag(t *testing.T) {
	v := flagged{}
	p := &v

	require.Exactly(t, "fixture function names", cage_reflect.GetFieldTag(v, "Func", "usage"))
	require.Exactly(t, "fixture function names", cage_reflect.GetFieldTag(p, "Func", "usage"))
	require.Exactly(t, "fixture function names", cage_reflect.GetFieldTag(&p, "Func", "usage"))

	require.Exactly(t, "", cage_reflect.GetFieldTag(v, "Untagged", "usage"))
	require.Exactly(t, "", cage_reflect.GetFieldTag(v, "Missing", "usage"))
	require.Exactly(t, "", cage_reflect.GetFieldTag("not a struct", "Func", "usage"))
	require.Exactly(t, "", cage_reflect.GetFieldTag(nil, "Func", "usage"))
}
