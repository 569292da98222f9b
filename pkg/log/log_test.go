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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rop/pkg/command"
	"github.com/walteh/rop/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "report_outcomes",
			op: func(t *testing.T, logger *Logger) {
				logger.Report(context.Background(), operation.Outcome{
					Verb:   command.VerbList,
					Name:   "a.txt",
					Status: operation.StatusSucceeded,
				})
				logger.Report(context.Background(), operation.Outcome{
					Verb:        command.VerbMove,
					Name:        "b.txt",
					Destination: "/tmp/dst",
					Status:      operation.StatusSucceeded,
				})
			},
			wantLogs: []string{
				"• a.txt                               list     succeeded",
				"✓ b.txt                               move     succeeded → /tmp/dst",
			},
		},
		{
			name: "log_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("warning message")
				logger.Error("error message")
			},
			wantLogs: []string{
				"⚠️  warning message",
				"❌ error message",
			},
		},
		{
			name: "log_formatted_messages",
			op: func(t *testing.T, logger *Logger) {
				logger.Warningf("warning %s", "test")
				logger.Errorf("error %s", "test")
			},
			wantLogs: []string{
				"⚠️  warning test",
				"❌ error test",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("dry run")
			},
			wantLogs: []string{
				"rop • dry run",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create buffer for console output
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			// Perform operation
			tt.op(t, logger)

			// Check output
			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	// Create logger
	logger := New(io.Discard, zerolog.Nop())

	// Add to context
	ctx := context.Background()
	ctx = NewContext(ctx, logger)

	// Get from context
	got := FromContext(ctx)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	// Check panic on missing logger
	assert.Panics(t, func() {
		FromContext(context.Background())
	}, "FromContext should panic when logger is missing")
}

func TestOutcomeFormatting(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name  string
		plain bool
		o     operation.Outcome
		want  string
	}{
		{
			name: "removed",
			o: operation.Outcome{
				Verb:   command.VerbRemove,
				Name:   "old.log",
				Status: operation.StatusSucceeded,
			},
			want: "  ✓ old.log                             remove   succeeded ",
		},
		{
			name: "failed_copy",
			o: operation.Outcome{
				Verb:        command.VerbCopy,
				Name:        "a.txt",
				Destination: "dst",
				Status:      operation.StatusFailed,
				Err:         errors.New("target already exists"),
			},
			want: "  ✗ a.txt                               copy     failed    → dst target already exists",
		},
		{
			name: "skipped_move",
			o: operation.Outcome{
				Verb:        command.VerbMove,
				Name:        "dst",
				Destination: "src/dst",
				Status:      operation.StatusSkipped,
				Detail:      "entry is the destination directory",
			},
			want: "  - dst                                 move     skipped   → src/dst (entry is the destination directory)",
		},
		{
			name: "planned_extract",
			o: operation.Outcome{
				Verb:        command.VerbExtract,
				Name:        "a.txt",
				Destination: "src/archive",
				Status:      operation.StatusPlanned,
			},
			want: "  ⟳ a.txt                               extract  planned   → src/archive",
		},
		{
			name:  "plain_list",
			plain: true,
			o: operation.Outcome{
				Verb:   command.VerbList,
				Name:   "a.txt",
				Status: operation.StatusSucceeded,
			},
			want: "a.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.Nop()).Plain(tt.plain)

			logger.Report(context.Background(), tt.o)

			assert.Equal(t, tt.want+"\n", buf.String(), "formatted output should match")
		})
	}
}
