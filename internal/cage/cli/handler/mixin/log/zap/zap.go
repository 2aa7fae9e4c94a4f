// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package zap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
	std_zap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/codeactual/aliasfixture/internal/cage/cli/handler"
	cage_errors "github.com/codeactual/aliasfixture/internal/cage/errors"
	cage_file "github.com/codeactual/aliasfixture/internal/cage/os/file"
	cage_reflect "github.com/codeactual/aliasfixture/internal/cage/reflect"
	cage_strings "github.com/codeactual/aliasfixture/internal/cage/strings"
	"github.com/codeactual/aliasfixture/internal/ldflags"
)

const (
	newDirPerm = 0755
)

// Mixin writes JSON log events to a file selected by flag. Without a file, Logger is a no-op.
type Mixin struct {
	handler.IO

	*std_zap.Logger

	LogAppend bool   `usage:"Append events to preexisting file instead of truncating it"`
	LogFile   string `usage:"File to receive JSON log events"`
	LogLevel  string

	// exit ends the process after ExitOnErr reports errors.
	exit func(code int)
}

// Implements cage/cli/handler.Mixin
func (m *Mixin) BindCobraFlags(cmd *cobra.Command) []string {
	cmd.Flags().StringVarP(&m.LogFile, "log-file", "", "", cage_reflect.GetFieldTag(m, "LogFile", "usage"))
	cmd.Flags().StringVarP(&m.LogLevel, "log-level", "", zapcore.WarnLevel.String(), "Minimum level included in file: "+strings.Join(logLevels(), ", "))
	cmd.Flags().BoolVarP(&m.LogAppend, "log-append", "", true, cage_reflect.GetFieldTag(m, "LogAppend", "usage"))
	return []string{}
}

// Implements cage/cli/handler.Mixin
func (m *Mixin) Name() string {
	return "cage/cli/handler/mixin/log/zap"
}

// Implements cage/cli/handler.PreRun
func (m *Mixin) PreRun(ctx context.Context, args []string) error {
	if m.LogFile == "" {
		m.Logger = std_zap.NewNop()
		return nil
	}

	level := std_zap.NewAtomicLevel()
	if !cage_strings.NewSet().AddSlice(logLevels()).Contains(m.LogLevel) {
		return errors.Errorf("log level [%s] not found in available levels %v", m.LogLevel, logLevels())
	}
	if err := level.UnmarshalText([]byte(m.LogLevel)); err != nil {
		return errors.Wrapf(err, "failed to apply selected log level [%s]", m.LogLevel)
	}

	runId, err := ksuid.NewRandom()
	if err != nil {
		return errors.Wrap(err, "failed to generate run ID for logger")
	}

	if err = os.MkdirAll(filepath.Dir(m.LogFile), newDirPerm); err != nil {
		return errors.Wrapf(err, "failed to create log dir [%s]", filepath.Dir(m.LogFile))
	}

	if !m.LogAppend {
		exists, _, existsErr := cage_file.Exists(m.LogFile)
		if existsErr != nil {
			return errors.Wrapf(existsErr, "failed to check if log file exists [%s]", m.LogFile)
		}

		if exists {
			if truncErr := os.Truncate(m.LogFile, 0); truncErr != nil {
				return errors.Wrapf(truncErr, "failed to truncate log file [%s]", m.LogFile)
			}
		}
	}

	logCfg := std_zap.NewProductionConfig()

	// These redundantly appear in every event so that any excerpt of the file is enough for a bug report.
	logCfg.InitialFields = map[string]interface{}{
		"version": ldflags.Version,
		"go": map[string]interface{}{
			"arch":    runtime.GOARCH,
			"os":      runtime.GOOS,
			"version": runtime.Version(),
		},
		"runId": runId.String(),
		"args":  os.Args,
	}

	logCfg.Level = level
	logCfg.OutputPaths = []string{m.LogFile}
	logCfg.ErrorOutputPaths = []string{m.LogFile}
	logCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logCfg.EncoderConfig.EncodeCaller = zapcore.FullCallerEncoder

	m.Logger, err = logCfg.Build()
	if err != nil {
		return errors.Wrap(err, "failed to configure logger")
	}

	return nil
}

// ErrToFile logs one event containing all errors in the cage/errors.Event structure.
func (m *Mixin) ErrToFile(errs ...error) {
	if m.Logger == nil {
		return
	}

	m.Logger.Error(
		fmt.Sprintf("%d errors logged, see 'errs' key", len(errs)),
		std_zap.Any("errs", cage_errors.NewEvent(errs...)),
	)
}

// Implements cage/cli/handler.PostRun
func (m *Mixin) PostRun(ctx context.Context) {
	if m.Logger == nil {
		return
	}
	if err := m.Logger.Sync(); err != nil {
		fmt.Fprintf(m.Err(), "failed to flush events to log file [%s]: %s\n", m.LogFile, err)
	}
}

// ExitOnErr writes the list of non-nil errors to standard error and the log file, then exits.
//
// It returns without effect if all errors are nil.
func (m *Mixin) ExitOnErr(code int, errs ...error) {
	var nonNil []error
	for _, err := range errs {
		cage_errors.Append(&nonNil, err)
	}
	if len(nonNil) == 0 {
		return
	}

	cage_errors.WriteErrList(m.Err(), nonNil...)
	m.ErrToFile(nonNil...)

	if m.LogFile == "" {
		fmt.Fprintln(m.Err(), "To save a more detailed error list, see --log-* flags.")
	}

	m.PostRun(context.Background())

	if m.exit == nil {
		os.Exit(code)
	}
	m.exit(code)
}

// SetExit replaces os.Exit in ExitOnErr, e.g. to assert on the code in a test.
func (m *Mixin) SetExit(exit func(code int)) {
	m.exit = exit
}

func logLevels() []string {
	return []string{
		zapcore.DebugLevel.String(),
		zapcore.InfoLevel.String(),
		zapcore.WarnLevel.String(),
		zapcore.ErrorLevel.String(),
	}
}

var _ handler.Mixin = (*Mixin)(nil)
var _ handler.PreRun = (*Mixin)(nil)
var _ handler.PostRun = (*Mixin)(nil)
