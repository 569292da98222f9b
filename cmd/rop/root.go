// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rop/cmd/rop/commands"
	"github.com/walteh/rop/cmd/rop/opts"
	"github.com/walteh/rop/pkg/config"
	"github.com/walteh/rop/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// rootFlags are bound per root command so tests can build fresh trees
type rootFlags struct {
	configFile string
	debug      bool
	dryRun     bool
	ignoreCase bool
	summary    bool
}

// 🌳 NewRootCmd builds the rop command tree writing outcomes to stdout and diagnostics to stderr
func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}
	ro := &opts.RootOpts{Stdout: stdout, Stderr: stderr}

	// verbs are case-insensitive: "rop LIST" is "rop list"
	cobra.EnableCaseInsensitive = true

	cmd := &cobra.Command{
		Use:   "rop",
		Short: "Apply one operation to every directory entry whose name matches a regular expression",
		Long: `rop selects the immediate entries of a directory whose names match a
regular expression and applies a single operation to each of them.

Operations:
  list    'pattern' source                list the matching entries
  remove  'pattern' source                remove the matching entries
  move    'pattern' source destination    move the matching entries into destination
  copy    'pattern' source destination    copy the matching files into destination
  extract 'pattern' source folder         move the matching entries into source/folder

Patterns are unanchored: 'txt' matches "a.txt" and "txt-notes".`,
		Example: `  rop list '\.log$' /var/tmp
  rop extract '^IMG_' ~/Downloads photos
  rop --dry-run remove '~$' .`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveRootOpts(cmd, flags, ro)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addRootFlags(cmd, flags)

	cmd.AddCommand(
		commands.NewListCmd(ro),
		commands.NewRemoveCmd(ro),
		commands.NewMoveCmd(ro),
		commands.NewCopyCmd(ro),
		commands.NewExtractCmd(ro),
		newVersionCmd(),
	)

	return cmd
}

func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", config.DefaultFile, "config file path (.yaml, .yml, .hcl or .json)")
	cmd.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "report what would happen without touching the filesystem")
	cmd.PersistentFlags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "match the pattern case-insensitively")
	cmd.PersistentFlags().BoolVarP(&flags.summary, "summary", "s", false, "print a summary table to stderr after the run")
}

// 🔧 resolveRootOpts loads the config, applies flag overrides and installs the loggers
func resolveRootOpts(cmd *cobra.Command, flags *rootFlags, ro *opts.RootOpts) error {
	zlog := setupLogging(ro.Stderr, flags.debug)
	ctx := zlog.WithContext(cmd.Context())

	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(ctx, flags.configFile)
	} else {
		cfg, err = config.LoadOptional(ctx, flags.configFile)
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("debug") {
		cfg.Debug = flags.debug
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if cmd.Flags().Changed("ignore-case") {
		cfg.IgnoreCase = flags.ignoreCase
	}
	if cmd.Flags().Changed("summary") {
		cfg.Summary = flags.summary
	}

	if cfg.Debug {
		zlog = zlog.Level(zerolog.DebugLevel)
	}
	zlog.Debug().Str("config", cfg.String()).Msg("configuration resolved")

	ro.Config = cfg
	console := log.New(ro.Stdout, zlog).Plain(!isTerminal(ro.Stdout))

	ctx = zlog.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, console)
	cmd.SetContext(ctx)
	return nil
}

// 📝 setupLogging builds the stderr logger, human readable on a terminal and JSON otherwise
func setupLogging(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := w
	if isTerminal(w) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
