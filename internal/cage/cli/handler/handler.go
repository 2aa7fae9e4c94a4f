// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package handler

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	tp_os "github.com/codeactual/aliasfixture/internal/third_party/stackexchange/os"
)

type Mixin interface {
	// BindCobraFlags gives each mixin the opportunity to define its own flags.
	BindCobraFlags(cmd *cobra.Command) (requiredFlags []string)

	// Name should identify the mixin for use in error/log messages.
	//
	// Ideally it is short, e.g. like a package name.
	Name() string
}

// PreRun is optionally implemented by handlers/mixins to perform tasks after flags are parsed
// but before Handler.Run.
//
// If it returns an error, Handler.Run and Handler.PostRun do not execute.
type PreRun interface {
	PreRun(ctx context.Context, args []string) error
}

// PostRun is optionally implemented by handlers/mixins to perform tasks after Handler.Run finishes.
type PostRun interface {
	PostRun(ctx context.Context)
}

// Responder defines the common response behavior expected from each sub-command implementation.
//
// Out and Err exist so that terminal messages can be captured for assertions about their content.
type Responder interface {
	// Err returns the standard error destination.
	Err() io.Writer

	// In returns the standard input source.
	In() io.Reader

	// Out returns the standard output destination.
	Out() io.Writer

	// SetErr assigns the standard error destination.
	SetErr(io.Writer)

	// SetIn assigns the standard input source.
	SetIn(io.Reader)

	// SetOut assigns the standard output destination.
	SetOut(io.Writer)
}

// IO can be embedded in all mixins and sub-command handlers and provide a default implementation
// of the Responder interface.
type IO struct {
	err io.Writer
	out io.Writer
	in  io.Reader
}

func (h *IO) Err() io.Writer {
	return h.err
}

func (h *IO) Out() io.Writer {
	return h.out
}

// In returns the reader assigned by SetIn, otherwise standard input if it is a pipe, otherwise nil.
func (h *IO) In() io.Reader {
	if h.in != nil && h.in != os.Stdin {
		return h.in
	}

	pipeStdin, err := tp_os.IsPipeStdin()
	if err != nil {
		// The only cause of an error here is a failed os.Stdin.Stat().
		panic(errors.Wrap(err, "failed to check if stdin is a pipe"))
	}

	if pipeStdin {
		return os.Stdin
	}

	return nil
}

func (h *IO) SetErr(w io.Writer) {
	h.err = w
}

func (h *IO) SetOut(w io.Writer) {
	h.out = w
}

func (h *IO) SetIn(r io.Reader) {
	h.in = r
}

var _ Responder = (*IO)(nil)
