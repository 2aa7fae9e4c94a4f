// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codeactual/aliasfixture/cmd/aliasfixture/run"
	"github.com/codeactual/aliasfixture/cmd/aliasfixture/verify"
	"github.com/codeactual/aliasfixture/internal/ldflags"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aliasfixture",
		Short: "Invoke and verify the qualified/aliased import fixture",
	}

	rootCmd.Version = ldflags.Version
	rootCmd.AddCommand(run.NewCommand())
	rootCmd.AddCommand(verify.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
