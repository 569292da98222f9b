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

package operation

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/rop/pkg/command"
	"github.com/walteh/rop/pkg/match"
	"github.com/walteh/rop/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation applies one verb to every matching entry of a directory
type Operation interface {
	// Execute runs the operation. A *FatalError is returned before any
	// outcome; ErrListingIncomplete after a listing broke off. Per-entry
	// failures are handed to the Reporter.
	Execute(ctx context.Context) error
	// Command returns the command being executed
	Command() command.Command
}

// 📣 Reporter receives one Outcome per matched entry
type Reporter interface {
	Report(ctx context.Context, outcome Outcome)
}

// ReporterFunc adapts a function to Reporter
type ReporterFunc func(ctx context.Context, outcome Outcome)

func (f ReporterFunc) Report(ctx context.Context, outcome Outcome) {
	f(ctx, outcome)
}

// 🔧 Options contains everything an operation needs
type Options struct {
	// Command is the validated verb and operands
	Command command.Command
	// Reporter receives per-entry outcomes
	Reporter Reporter
	// Protect lists doublestar globs for names that are never selected
	Protect []string
	// IgnoreCase makes the pattern case-insensitive
	IgnoreCase bool
	// DryRun reports planned outcomes without touching the filesystem
	DryRun bool
}

// 🏭 New creates the operation for opts.Command
func New(opts Options) (Operation, error) {
	if opts.Reporter == nil {
		return nil, errors.Errorf("reporter is required")
	}

	base := NewBaseOperation(opts)
	switch opts.Command.Verb() {
	case command.VerbList:
		return &listOperation{BaseOperation: base}, nil
	case command.VerbRemove:
		return &removeOperation{BaseOperation: base}, nil
	case command.VerbMove:
		return &moveOperation{BaseOperation: base}, nil
	case command.VerbCopy:
		return &copyOperation{BaseOperation: base}, nil
	case command.VerbExtract:
		return &extractOperation{BaseOperation: base}, nil
	default:
		return nil, errors.Errorf("%w: %s has no operation", command.ErrUnknownVerb, opts.Command.Verb())
	}
}

// 🧱 BaseOperation holds the scan-match-apply fold shared by every verb
type BaseOperation struct {
	cmd        command.Command
	reporter   Reporter
	protect    []string
	ignoreCase bool
	dryRun     bool
}

// 🏗️ NewBaseOperation creates a new base operation
func NewBaseOperation(opts Options) BaseOperation {
	return BaseOperation{
		cmd:        opts.Command,
		reporter:   opts.Reporter,
		protect:    opts.Protect,
		ignoreCase: opts.IgnoreCase,
		dryRun:     opts.DryRun,
	}
}

func (b *BaseOperation) Command() command.Command {
	return b.cmd
}

// 🔓 open compiles the pattern and starts the scan pass. Both failures are fatal.
func (b *BaseOperation) open(ctx context.Context) (*match.Matcher, *scan.Pass, error) {
	m, err := match.Compile(b.cmd.Pattern(), match.WithIgnoreCase(b.ignoreCase), match.WithProtect(b.protect...))
	if err != nil {
		return nil, nil, fatal("compiling pattern", err)
	}

	pass, err := scan.Open(b.cmd.Source())
	if err != nil {
		return nil, nil, fatal("scanning source", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("pattern", m.String()).
		Str("source", pass.Dir()).
		Bool("dry_run", b.dryRun).
		Msg("scan started")

	return m, pass, nil
}

// lister is the part of scan.Pass the fold consumes
type lister interface {
	Dir() string
	Next() (scan.Entry, error)
	Close() error
}

// 🔁 fold applies fn to every matching entry and reports each outcome.
// The pass is closed when the fold returns. A listing that breaks off midway
// returns ErrListingIncomplete; outcomes already reported stand.
func (b *BaseOperation) fold(ctx context.Context, m *match.Matcher, pass lister, fn func(ctx context.Context, ent scan.Entry) Outcome) error {
	logger := zerolog.Ctx(ctx)
	defer func() {
		if err := pass.Close(); err != nil {
			logger.Warn().Err(err).Msg("closing scan pass")
		}
	}()

	var listErr error
	seen, matched := 0, 0
	for {
		ent, err := pass.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn().Err(err).Str("source", pass.Dir()).Int("seen", seen).Msg("listing ended early")
			listErr = errors.Errorf("%w: %s after %d entries: %s", ErrListingIncomplete, pass.Dir(), seen, err.Error())
			break
		}
		seen++

		if !m.Matches(ent.Name) {
			continue
		}
		matched++

		outcome := fn(ctx, ent)
		outcome.Verb = b.cmd.Verb()
		outcome.Name = ent.Name
		outcome.Path = ent.Path
		b.reporter.Report(ctx, outcome)
	}

	logger.Debug().
		Int("seen", seen).
		Int("matched", matched).
		Msg("scan finished")

	return listErr
}

// 📝 planned returns the dry-run outcome, or nil when the operation should really run
func (b *BaseOperation) planned(destination string) *Outcome {
	if !b.dryRun {
		return nil
	}
	return &Outcome{Status: StatusPlanned, Destination: destination}
}
