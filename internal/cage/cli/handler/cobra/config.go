// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cobra

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	std_cobra "github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	cage_viper "github.com/codeactual/aliasfixture/internal/cage/config/viper"
	cage_strings "github.com/codeactual/aliasfixture/internal/cage/strings"
	tp_viper "github.com/codeactual/aliasfixture/internal/third_party/github.com/config/viper"
)

// Config provides viper integration and enforces prefixed environment variables.
//
// It is not a mixin. NewCommand uses it directly so every command gets the behavior.
type Config struct {
	*viper.Viper

	// envPrefix records the value passed to Init because viper has no getter for it.
	envPrefix string

	requiredKeys *cage_strings.Set

	cmd *std_cobra.Command
}

// Init creates the config storage instance.
func (c *Config) Init(envPrefix string, cmd *std_cobra.Command) *std_cobra.Command {
	c.Viper = cage_viper.NewEnvSpace(envPrefix)

	c.cmd = cmd
	c.envPrefix = envPrefix
	c.requiredKeys = cage_strings.NewSet()

	return cmd
}

// BindEnvToAllFlags binds all flags in the command to the viper instance.
func (c *Config) BindEnvToAllFlags(cmd *std_cobra.Command) {
	if err := c.Viper.BindPFlags(cmd.Flags()); err != nil {
		panic(errors.Wrap(err, "failed to bind all flags to environment variable aliases"))
	}
}

// SetRequired registers config keys which must be provided as a flag or environment value.
//
// It panics if any key is not a flag of the command.
func (c *Config) SetRequired(keys ...string) {
	validKeys := cage_strings.NewSet()
	c.cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		validKeys.Add(f.Name)
	})

	for _, key := range keys {
		if !validKeys.Contains(key) {
			panic(errors.Errorf("invalid required key selection [%s]", key))
		}
		c.requiredKeys.Add(key)
	}
}

// PreRun copies environment values into unset flags and checks for missing required keys.
//
// The error string contains a list of all missing config keys.
func (c *Config) PreRun() (showUsage bool, _ error) {
	if err := tp_viper.MergeConfig(c.cmd.Flags(), c.Viper); err != nil {
		return false, errors.WithStack(err)
	}

	missing := c.MissingRequiredKeyStrings()

	if len(missing) > 0 {
		return true, errors.New("Missing:\n\t" + strings.Join(missing, "\n\t"))
	}

	return false, nil
}

// MissingRequiredKeyStrings returns a "--<flag key name>/<env key name>" element for each missing key.
func (c *Config) MissingRequiredKeyStrings() (missing []string) {
	for _, key := range c.requiredKeys.SortedSlice() {
		if !cage_viper.IsSetInCommand(c.Viper, c.cmd, c.envPrefix, key) {
			missing = append(missing, c.KeyUsageString(key))
		}
	}
	return missing
}

func (c *Config) KeyUsageString(key string) string {
	return fmt.Sprintf("--%s/%s", key, cage_viper.EnvPrefixedName(c.envPrefix, key))
}
