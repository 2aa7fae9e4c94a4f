// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package file

import (
	"os"
	"path/filepath"
	"testing"

	cage_file "github.com/codeactual/aliasfixture/internal/cage/os/file"
	"github.com/codeactual/aliasfixture/internal/cage/testkit"
)

// dataDir defines the base directory for fixtures and test data.
const dataDir = "testdata"

func FixtureDataDir() string {
	return filepath.Join(dataDir, "fixture")
}

func DynamicDataDir() string {
	return filepath.Join(dataDir, "dynamic")
}

func DynamicDataDirAbs(t *testing.T) string {
	abs, err := filepath.Abs(DynamicDataDir())
	testkit.FatalErrf(t, err, "failed to get absolute path [%s]", DynamicDataDir())
	return abs
}

// ResetTestdata empties the conventional location of dynamic files/directories.
//
// If the conventional location does not exist, it makes it.
func ResetTestdata(t *testing.T) {
	dir := DynamicDataDirAbs(t)
	exists, _, err := cage_file.Exists(dir)
	testkit.FatalErrf(t, err, "failed to reset test data dir")
	if exists {
		testkit.FatalErrf(t, cage_file.RemoveAllSafer(dir), "failed to remove dir [%s]", dir)
	}
	testkit.FatalErrf(t, os.MkdirAll(dir, 0700), "failed to make dir [%s]", dir)
}

// CreatePath returns a path under DynamicDataDir() at a relative path built by joining the path parts.
func CreatePath(t *testing.T, pathPart ...string) (relPath string, absPath string) {
	pathPart = append([]string{DynamicDataDir()}, pathPart...)
	relPath = filepath.Join(pathPart...)

	absPath, err := filepath.Abs(relPath)
	testkit.FatalErrf(t, err, "failed to get absolute path [%s]", relPath)

	return relPath, absPath
}

// FixturePath returns a path under FixtureDataDir() at a relative path built by joining the path parts.
func FixturePath(t *testing.T, pathPart ...string) (relPath string, absPath string) {
	pathPart = append([]string{FixtureDataDir()}, pathPart...)
	relPath = filepath.Join(pathPart...)

	absPath, err := filepath.Abs(relPath)
	testkit.FatalErrf(t, err, "failed to get absolute path [%s]", relPath)

	return relPath, absPath
}
