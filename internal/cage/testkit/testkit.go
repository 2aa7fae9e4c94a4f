// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package testkit

import (
	"testing"
)

// FatalErrf ends the test if err is non-nil. The message is f plus the "%+v" of err.
func FatalErrf(t *testing.T, err error, f string, v ...interface{}) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf(f+": %+v", append(v, err)...)
}

// RequireNoErrors is an alternative to methods like require.Exactly which will only display the
// "%s" of each unexpected error. This function outputs the "%+v" string to include the stack trace.
//
// It accepts the []error returned by operations that report every problem at once, e.g. Config.ReadFile.
func RequireNoErrors(t *testing.T, errs []error) {
	t.Helper()
	if len(errs) == 0 {
		return
	}
	for n, err := range errs {
		t.Errorf("unexpected error (%d/%d): %+v", n+1, len(errs), err)
	}
	t.FailNow()
}
