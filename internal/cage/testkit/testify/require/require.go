// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package require

import (
	"fmt"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	std_require "github.com/stretchr/testify/require"
)

func StringSliceExactly(t *testing.T, expected []string, actual []string) {
	std_require.Exactly(t, expected, actual, fmt.Sprintf(
		"expect: %s\nactual: %s\n", spew.Sdump(expected), spew.Sdump(actual),
	))
}

// ErrorStringsExactly compares the messages of the errors, in order, to the expected strings.
func ErrorStringsExactly(t *testing.T, expected []string, errs []error) {
	actual := []string{}
	for _, err := range errs {
		actual = append(actual, err.Error())
	}
	if expected == nil {
		expected = []string{}
	}
	StringSliceExactly(t, expected, actual)
}

func StringContains(t *testing.T, subject string, expected ...string) {
	for _, e := range expected {
		std_require.True(
			t,
			strings.Contains(subject, e),
			fmt.Sprintf("subject [%s]\nsubstring [%s]", subject, e),
		)
	}
}

func FileStringContains(t *testing.T, name string, expected ...string) {
	readBytes, err := ioutil.ReadFile(name) // #nosec G304
	std_require.NoError(t, errors.WithStack(err))
	StringContains(t, string(readBytes), expected...)
}
