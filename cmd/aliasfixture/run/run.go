// Copyright (C) 2019 The aliasfixture Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package run

import (
	"context"
	"fmt"
	"strings"

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
	Func       string `usage:"(comma-separated) Fixture function names, e.g. run_alias_a (default: config Funcs, otherwise all)"`
	ReportFile string `usage:"Also write the results to a file (.json/.toml/.yaml/.yml)"`

	Log *log_zap.Mixin

	config aliasfixture.Config
}

// Init defines the command, its environment variable prefix, etc.
//
// It implements cli/handler/cobra.Handler.
func (h *Handler) Init() handler_cobra.Init {
	h.Log = &log_zap.Mixin{}

	return handler_cobra.Init{
		Cmd: &cobra.Command{
			Use:   "run",
			Short: "Invoke fixture functions and print their return values",
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
	cmd.Flags().StringVarP(&h.Func, "func", "", "", cage_reflect.GetFieldTag(h, "Func", "usage"))
	cmd.Flags().StringVarP(&h.ReportFile, "report", "", "", cage_reflect.GetFieldTag(h, "ReportFile", "usage"))
	return []string{}
}

// Run performs the sub-command logic.
//
// It implements cli/handler/cobra.Handler.
func (h *Handler) Run(ctx context.Context, args []string) {
	if errs := h.config.ReadFile(h.ConfigFile); len(errs) > 0 {
		h.Log.ExitOnErr(1, errs...)
		return
	}

	names := h.config.Funcs
	if h.Func != "" {
		names = strings.Split(h.Func, ",")
	}

	entries, errs := aliasfixture.Select(names...)
	if len(errs) > 0 {
		h.Log.ExitOnErr(1, errs...)
		return
	}

	report := aliasfixture.Invoke(entries...)

	for _, res := range report.Results {
		h.Log.Debug(
			"invoked fixture function",
			zap.String("name", res.Name),
			zap.String("namespace", res.Namespace),
			zap.String("ref", res.Ref),
			zap.Int("value", res.Value),
		)
	}

	fmt.Fprint(h.Out(), report.String())

	if h.ReportFile != "" {
		if err := report.WriteFile(h.ReportFile); err != nil {
			h.Log.ExitOnErr(1, err)
			return
		}
	}

	h.Log.Info(
		"run finished",
		zap.Int("invoked", len(report.Results)),
		zap.Strings("namespaces", report.Namespaces()),
		zap.String("reportFile", h.ReportFile),
	)
}

// NewCommand returns a cobra command instance based on Handler.
func NewCommand() *cobra.Command {
	return handler_cobra.NewHandler(&Handler{})
}

var _ handler_cobra.Handler = (*Handler)(nil)
