// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package aliasfixture_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/codeactual/aliasfixture/internal/aliasfixture"
	"github.com/codeactual/aliasfixture/internal/cage/testkit"
	testkit_file "github.com/codeactual/aliasfixture/internal/cage/testkit/os/file"
	testkit_require "github.com/codeactual/aliasfixture/internal/cage/testkit/testify/require"
)

// Fixture files are located in ./testdata/fixture/config.

type ConfigSuite struct {
	suite.Suite

	Wd string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigSuite))
}

func (s *ConfigSuite) SetupTest() {
	var err error
	s.Wd, err = os.Getwd()
	require.NoError(s.T(), err)
}

func (s *ConfigSuite) TearDownTest() {
	require.NoError(s.T(), os.Chdir(s.Wd))
}

func (s *ConfigSuite) FixturePath(parts ...string) string {
	_, p := testkit_file.FixturePath(s.T(), parts...)
	return p
}

func (s *ConfigSuite) TestReadFileFormats() {
	t := s.T()

	cases := map[string]aliasfixture.Config{
		"valid.yml": {
			Expect: map[string]int{"a": 1, "b": 2},
			Funcs:  []string{"run_alias_a", "run_module_b"},
		},
		"valid.json": {
			Expect: map[string]int{"a": 1, "b": 2},
			Funcs:  []string{"run_module_a"},
		},
		"valid.toml": {
			Expect: map[string]int{"a": 1, "b": 2},
			Funcs:  []string{"run_alias_b"},
		},
	}

	for name, expected := range cases {
		var actual aliasfixture.Config
		testkit.RequireNoErrors(t, actual.ReadFile(s.FixturePath("config", name)))
		require.Exactly(t, expected.Expect, actual.Expect, name)
		require.Exactly(t, expected.Funcs, actual.Funcs, name)
	}
}

func (s *ConfigSuite) TestReadFileUnknownKey() {
	t := s.T()

	var c aliasfixture.Config
	errs := c.ReadFile(s.FixturePath("config", "unknown_key.yml"))
	require.Len(t, errs, 1)
	testkit_require.StringContains(t, errs[0].Error(), "failed to parse file", "unknown_key.yml")
}

func (s *ConfigSuite) TestReadFileUnknownFunc() {
	t := s.T()

	var c aliasfixture.Config
	errs := c.ReadFile(s.FixturePath("config", "unknown_func.yml"))
	require.Len(t, errs, 1)
	testkit_require.StringContains(t, errs[0].Error(), "Funcs list is invalid", "fixture function [run_alias_c] not found")
}

func (s *ConfigSuite) TestReadFileMissing() {
	t := s.T()

	var c aliasfixture.Config
	errs := c.ReadFile(s.FixturePath("config", "not_found.yml"))
	require.Len(t, errs, 1)
	testkit_require.StringContains(t, errs[0].Error(), "failed to locate config file")
}

func (s *ConfigSuite) TestReadFileDiscovery() {
	t := s.T()

	require.NoError(t, os.Chdir(s.FixturePath("discover")))

	var c aliasfixture.Config
	require.Empty(t, c.ReadFile(""))
	require.Exactly(t, map[string]int{"a": 1}, c.Expect)
	require.Exactly(t, []string{"run_module_a"}, c.Funcs)
}

func (s *ConfigSuite) TestReadFileOptional() {
	t := s.T()

	// The config fixture dir contains no file with the default base name.
	require.NoError(t, os.Chdir(s.FixturePath("config")))

	var c aliasfixture.Config
	require.Empty(t, c.ReadFile(""))
	require.Nil(t, c.Expect)
	require.Nil(t, c.Funcs)
}

func TestParseExpect(t *testing.T) {
	expect, err := aliasfixture.ParseExpect("a=1, b = 2,")
	require.NoError(t, err)
	require.Exactly(t, map[string]int{"a": 1, "b": 2}, expect)

	expect, err = aliasfixture.ParseExpect("")
	require.NoError(t, err)
	require.Empty(t, expect)

	_, err = aliasfixture.ParseExpect("a")
	require.EqualError(t, err, "expectation [a] is not in namespace=value form")

	_, err = aliasfixture.ParseExpect("=1")
	require.EqualError(t, err, "expectation [=1] is not in namespace=value form")

	_, err = aliasfixture.ParseExpect("a=1,b=2,a=2")
	require.EqualError(t, err, "expectation [a=2] repeats namespace [a]")

	_, err = aliasfixture.ParseExpect("a=1, a =1")
	require.EqualError(t, err, "expectation [a =1] repeats namespace [a]")

	_, err = aliasfixture.ParseExpect("a=one")
	require.Error(t, err)
	testkit_require.StringContains(t, err.Error(), "expectation [a=one] value is not an integer")
}

func TestMergeExpect(t *testing.T) {
	c := aliasfixture.Config{Expect: map[string]int{"a": 1, "b": 2}}
	require.Exactly(t, map[string]int{"a": 1, "b": 3, "c": 4}, c.MergeExpect(map[string]int{"b": 3, "c": 4}))
	require.Exactly(t, map[string]int{"a": 1, "b": 2}, c.Expect)

	empty := aliasfixture.Config{}
	require.Exactly(t, map[string]int{}, empty.MergeExpect(nil))
}
