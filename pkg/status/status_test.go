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

package status

import (
	"bytes"
	"context"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rop/pkg/command"
	"github.com/walteh/rop/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func outcomes() []operation.Outcome {
	return []operation.Outcome{
		{Verb: command.VerbMove, Name: "a.txt", Status: operation.StatusSucceeded},
		{Verb: command.VerbMove, Name: "b.txt", Status: operation.StatusSucceeded},
		{Verb: command.VerbMove, Name: "c.txt", Status: operation.StatusFailed, Err: errors.New("target already exists")},
		{Verb: command.VerbMove, Name: "dst", Status: operation.StatusSkipped},
	}
}

func TestTally(t *testing.T) {
	var forwarded []string
	next := operation.ReporterFunc(func(ctx context.Context, o operation.Outcome) {
		forwarded = append(forwarded, o.Name)
	})

	tally := NewTally(next)
	for _, o := range outcomes() {
		tally.Report(context.Background(), o)
	}

	assert.Equal(t, []string{"a.txt", "b.txt", "c.txt", "dst"}, forwarded, "every outcome should be forwarded in order")
	assert.Equal(t, 4, tally.Total())
	assert.Equal(t, 2, tally.Count(operation.StatusSucceeded))
	assert.Equal(t, 1, tally.Count(operation.StatusFailed))
	assert.Equal(t, 1, tally.Count(operation.StatusSkipped))
	assert.Equal(t, 0, tally.Count(operation.StatusPlanned))
	assert.Equal(t, command.VerbMove, tally.Verb())

	failures := tally.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "c.txt", failures[0].Name)
}

func TestTallyWithoutNext(t *testing.T) {
	tally := NewTally(nil)
	tally.Report(context.Background(), outcomes()[0])
	assert.Equal(t, 1, tally.Total())
}

func TestFormatSummary(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []operation.Outcome
		want     string
	}{
		{
			name: "empty",
			want: "0 matched",
		},
		{
			name:     "mixed",
			outcomes: outcomes(),
			want:     "4 matched for move: 2 succeeded, 1 failed, 1 skipped",
		},
		{
			name: "planned_only",
			outcomes: []operation.Outcome{
				{Verb: command.VerbExtract, Name: "a", Status: operation.StatusPlanned},
			},
			want: "1 matched for extract: 1 planned",
		},
		{
			name: "no_verb",
			outcomes: []operation.Outcome{
				{Name: "a", Status: operation.StatusSucceeded},
			},
			want: "1 matched: 1 succeeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tally := NewTally(nil)
			for _, o := range tt.outcomes {
				tally.Report(context.Background(), o)
			}
			assert.Equal(t, tt.want, FormatSummary(tally))
		})
	}
}

func TestRenderTable(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tally := NewTally(nil)
	for _, o := range outcomes() {
		tally.Report(context.Background(), o)
	}

	buf := &bytes.Buffer{}
	require.NoError(t, RenderTable(buf, tally))

	out := buf.String()
	for _, want := range []string{"status", "count", "succeeded", "failed", "skipped", "planned", "total"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, "c.txt: target already exists", "failures should be listed")
}
