// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cobra

import (
	"context"
	"os"

	"github.com/pkg/errors"
	std_cobra "github.com/spf13/cobra"

	"github.com/codeactual/aliasfixture/internal/cage/cli/handler"
	"github.com/codeactual/aliasfixture/internal/ldflags"
)

type Init struct {
	Cmd *std_cobra.Command

	Ctx context.Context

	EnvPrefix string

	// Mixins defines all Mixin implementations for automatic integration into stages
	// of the command run, e.g. binding flags.
	Mixins []handler.Mixin
}

// Handler defines the behaviors implemented by the Handler struct of each sub-command package.
//
// Run methods receive only parsed values so they can be tested without cobra.
type Handler interface {
	handler.Responder

	// BindFlags optionally defines CLI flags.
	BindFlags(cmd *std_cobra.Command) (requiredFlags []string)

	// Init defines the cobra command object, prefix for environment variable configs, etc.
	Init() Init

	// Run is called when all bound flags are available.
	Run(ctx context.Context, args []string)
}

// NewCommand finishes preparation of the command object created by the handler's Init method.
//
// It binds the flags of the handler and its mixins, binds every flag to an environment variable,
// and runs the PreRun/PostRun stages of all mixins before those of the handler.
func NewCommand(h Handler, init Init) *std_cobra.Command {
	defaultIO(h)

	config := Config{}
	config.Init(init.EnvPrefix, init.Cmd)

	init.Cmd.PreRunE = func(cmd *std_cobra.Command, args []string) error {
		if showUsage, err := config.PreRun(); err != nil {
			if showUsage {
				_ = cmd.Usage()
			}
			return errors.Wrap(err, "failed to configure the command")
		}

		for _, mixin := range init.Mixins {
			if preRunner, ok := mixin.(handler.PreRun); ok {
				if err := preRunner.PreRun(init.Ctx, args); err != nil {
					return errors.Wrapf(err, "mixin [%s] failed to start", mixin.Name())
				}
			}
		}

		if preRunner, ok := h.(handler.PreRun); ok {
			if err := preRunner.PreRun(init.Ctx, args); err != nil {
				return errors.WithStack(err)
			}
		}

		return nil
	}

	init.Cmd.Run = func(cmd *std_cobra.Command, args []string) {
		h.Run(init.Ctx, args)
	}

	init.Cmd.PostRun = func(cmd *std_cobra.Command, args []string) {
		for _, mixin := range init.Mixins {
			if postRunner, ok := mixin.(handler.PostRun); ok {
				postRunner.PostRun(init.Ctx)
			}
		}

		if postRunner, ok := h.(handler.PostRun); ok {
			postRunner.PostRun(init.Ctx)
		}
	}

	requiredFlags := h.BindFlags(init.Cmd)

	for _, mixin := range init.Mixins {
		requiredFlags = append(requiredFlags, mixin.BindCobraFlags(init.Cmd)...)

		if m, ok := mixin.(handler.Responder); ok {
			// Mixins write where the handler writes unless already assigned.
			if m.Out() == nil {
				m.SetOut(h.Out())
			}
			if m.Err() == nil {
				m.SetErr(h.Err())
			}
		}
	}

	config.BindEnvToAllFlags(init.Cmd)
	config.SetRequired(requiredFlags...)

	// Let handlers/mixins control the display of errors and usage info.
	init.Cmd.SilenceErrors = true
	init.Cmd.SilenceUsage = true

	return init.Cmd
}

// NewHandler is called by parent commands in order to create a new sub-command defined by the handler.
//
//     parent.AddCommand(handler_cobra.NewHandler(&run.Handler{}))
func NewHandler(h Handler) *std_cobra.Command {
	init := h.Init()
	if init.Ctx == nil {
		init.Ctx = context.Background()
	}
	if init.Cmd.Version == "" {
		init.Cmd.Version = ldflags.Version
	}
	return NewCommand(h, init)
}

// defaultIO selects the standard streams for any destination not already assigned, e.g. by a test.
//
// SetIn is not called because IO.In returns os.Stdin automatically when it is a pipe.
func defaultIO(r handler.Responder) {
	if r.Out() == nil {
		r.SetOut(os.Stdout)
	}
	if r.Err() == nil {
		r.SetErr(os.Stderr)
	}
}
