// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package verify

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codeactual/aliasfixture/internal/aliasfixture"
	"github.com/codeactual/aliasfixture/internal/cage/cli/handler"
	handler_cobra "github.com/codeactual/aliasfixture/internal/cage/cli/handler/cobra"
	log_zap "github.com/codeactual/aliasfixture/internal/cage/cli/handler/mixin/log/zap"
	cage_reflect "github.com/codeactual/aliasfixture/internal/cage/reflect"
)

// Handler defines the sub-command flags and logic.
type Handler struct {
	handler.IO

	ConfigFile string `usage:"configuration file (.json/.toml/.yaml/.yml)"`
	Expect     string `usage:"(comma-separated) Expected helper value per namespace, e.g. a=1,b=2 (overrides config Expect)"`

	Log *log_zap.Mixin

	config aliasfixture.Config
	expect map[string]int
}

// Init defines the command, its environment variable prefix, etc.
//
// It implements cli/handler/cobra.Handler.
func (h *Handler) Init() handler_cobra.Init {
	h.Log = &log_zap.Mixin{}

	return handler_cobra.Init{
		Cmd: &cobra.Command{
			Use:   "verify",
			Short: "Check that alias and qualified references agree and namespaces are isolated",
		},
		EnvPrefix: "ALIASFIXTURE",
		Mixins: []handler.Mixin{
			h.Log,
		},
	}
}

// BindFlags binds the flags to Handler fields.
//
// It implements cli/handler/cobra.Handler.
func (h *Handler) BindFlags(cmd *cobra.Command) []string {
	cmd.Flags().StringVarP(&h.ConfigFile, "config", "", "", cage_reflect.GetFieldTag(h, "ConfigFile", "usage"))
	cmd.Flags().StringVarP(&h.Expect, "expect", "", "", cage_reflect.GetFieldTag(h, "Expect", "usage"))
	return []string{}
}

// PreRun executes after flag parsing and before Run.
//
// If it returns an error, Run and PostRun are not executed.
//
// It implements cli/handler.PreRun
func (h *Handler) PreRun(ctx context.Context, args []string) (err error) {
	h.expect, err = aliasfixture.ParseExpect(h.Expect)
	return err
}

// Run performs the sub-command logic.
//
// It implements cli/handler/cobra.Handler.
func (h *Handler) Run(ctx context.Context, args []string) {
	if errs := h.config.ReadFile(h.ConfigFile); len(errs) > 0 {
		h.Log.ExitOnErr(1, errs...)
		return
	}

	catalog := aliasfixture.Catalog()
	expect := h.config.MergeExpect(h.expect)

	errs := aliasfixture.Check(catalog, expect)

	h.Log.Info(
		"verify finished",
		zap.Int("functions", len(catalog)),
		zap.Strings("namespaces", aliasfixture.Namespaces(catalog)),
		zap.Any("expect", expect),
		zap.Int("violations", len(errs)),
	)

	if len(errs) > 0 {
		h.Log.ExitOnErr(1, errs...)
		return
	}

	fmt.Fprintln(h.Out(), "ok")
}

// NewCommand returns a cobra command instance based on Handler.
func NewCommand() *cobra.Command {
	return handler_cobra.NewHandler(&Handler{})
}

var _ handler_cobra.Handler = (*Handler)(nil)
var _ handler.PreRun = (*Handler)(nil)
