// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package reflect

import std_reflect "reflect"

// GetFieldTag returns the value of a struct field's tag.
//
// The val may be a struct or a pointer to one, e.g. the handler whose flags are being bound.
// It returns an empty string if val is not a struct or the field does not exist.
func GetFieldTag(val interface{}, field string, key string) string {
	t := std_reflect.TypeOf(val)
	for t != nil && t.Kind() == std_reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != std_reflect.Struct {
		return ""
	}
	if f, found := t.FieldByName(field); found {
		return f.Tag.Get(key)
	}
	return ""
}
