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

package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rop/cmd/rop/opts"
	"github.com/walteh/rop/pkg/command"
	"github.com/walteh/rop/pkg/log"
	"github.com/walteh/rop/pkg/operation"
	"github.com/walteh/rop/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 runVerb turns positional operands into a command, runs it and reports the tally.
// Per-entry failures and an incomplete listing are reported but never fail the invocation.
func runVerb(cmd *cobra.Command, ro *opts.RootOpts, verb command.Verb, args []string) error {
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx).With().Str("command", string(verb)).Logger()
	ctx = logger.WithContext(ctx)
	console := log.FromContext(ctx)

	c, err := command.Parse(append([]string{string(verb)}, args...))
	if err != nil {
		return errors.Errorf("parsing %s: %w", verb, err)
	}

	tally := status.NewTally(console)
	op, err := operation.New(operation.Options{
		Command:    c,
		Reporter:   tally,
		Protect:    ro.Config.Protect,
		IgnoreCase: ro.Config.IgnoreCase,
		DryRun:     ro.Config.DryRun,
	})
	if err != nil {
		return errors.Errorf("creating operation: %w", err)
	}

	if ro.Config.DryRun {
		console.Header("dry run, nothing will be changed: " + c.String())
	}

	runErr := operation.NewRunner(&logger).Run(ctx, op)
	if runErr != nil && !errors.Is(runErr, operation.ErrListingIncomplete) {
		return runErr
	}

	if ro.Config.Summary {
		if err := status.RenderTable(ro.Stderr, tally); err != nil {
			return errors.Errorf("printing summary: %w", err)
		}
	}

	summary := status.FormatSummary(tally)
	switch {
	case runErr != nil:
		console.Warningf("%s; %v", summary, runErr)
	case tally.Count(operation.StatusFailed) > 0:
		console.Warningf("%s", summary)
	default:
		logger.Debug().Msg(summary)
	}

	return nil
}
