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

package command

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rop/pkg/match"
	"gitlab.com/tozd/go/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		check   func(t *testing.T, c Command)
	}{
		{
			name: "no_args_is_help",
			args: nil,
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbHelp, c.Verb())
			},
		},
		{
			name: "help",
			args: []string{"HELP"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbHelp, c.Verb())
			},
		},
		{
			name: "list",
			args: []string{"list", `\.txt$`, "/tmp/src"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbList, c.Verb())
				assert.Equal(t, `\.txt$`, c.Pattern())
				assert.Equal(t, "/tmp/src", c.Source())
				assert.Empty(t, c.Target(), "list has no target")
			},
		},
		{
			name: "empty_pattern_selects_everything",
			args: []string{"list", "", "/tmp/src"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbList, c.Verb())
				assert.Equal(t, "", c.Pattern())
				assert.Equal(t, "/tmp/src", c.Source())
			},
		},
		{
			name: "remove_mixed_case_verb",
			args: []string{"Remove", `log`, "/var/tmp"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbRemove, c.Verb())
			},
		},
		{
			name: "move",
			args: []string{"move", `\.txt$`, "/tmp/src", "/tmp/dst"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbMove, c.Verb())
				assert.Equal(t, "/tmp/dst", c.Destination())
				assert.Equal(t, "/tmp/dst", c.Target())
			},
		},
		{
			name: "copy",
			args: []string{"copy", `.`, "src", "dst"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbCopy, c.Verb())
				assert.Equal(t, "dst", c.Target())
			},
		},
		{
			name: "extract",
			args: []string{"extract", `\.txt$`, "/tmp/src2", "archive"},
			check: func(t *testing.T, c Command) {
				assert.Equal(t, VerbExtract, c.Verb())
				assert.Equal(t, "archive", c.Folder())
				assert.Equal(t, filepath.Join("/tmp/src2", "archive"), c.Target())
			},
		},
		{
			name:    "unknown_verb",
			args:    []string{"cut", `.`, "src"},
			wantErr: ErrUnknownVerb,
		},
		{
			name:    "list_missing_source",
			args:    []string{"list", `.`},
			wantErr: ErrMissingOperand,
		},
		{
			name:    "list_missing_pattern",
			args:    []string{"list"},
			wantErr: ErrMissingOperand,
		},
		{
			name:    "move_missing_destination",
			args:    []string{"move", `.`, "src"},
			wantErr: ErrMissingOperand,
		},
		{
			name:    "extract_missing_folder",
			args:    []string{"extract", `.`, "src"},
			wantErr: ErrMissingOperand,
		},
		{
			name:    "empty_source",
			args:    []string{"list", `.`, ""},
			wantErr: ErrMissingOperand,
		},
		{
			name:    "too_many",
			args:    []string{"list", `.`, "src", "extra"},
			wantErr: ErrTooManyOperands,
		},
		{
			name:    "bad_regex",
			args:    []string{"list", `(`, "src"},
			wantErr: match.ErrInvalidPattern,
		},
		{
			name:    "extract_nested_folder",
			args:    []string{"extract", `.`, "src", "a/b"},
			wantErr: ErrInvalidFolder,
		},
		{
			name:    "extract_parent_folder",
			args:    []string{"extract", `.`, "src", ".."},
			wantErr: ErrInvalidFolder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.args)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v, got %v", tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestZeroValueIsHelp(t *testing.T) {
	var c Command
	assert.Equal(t, VerbHelp, c.Verb())
	assert.Equal(t, "help", c.String())
}

func TestString(t *testing.T) {
	c, err := NewMove(`\.txt$`, "src", "dst")
	require.NoError(t, err)
	assert.Equal(t, `move "\\.txt$" in src to dst`, c.String())

	c, err = NewExtract(`\.txt$`, "src", "archive")
	require.NoError(t, err)
	assert.Equal(t, `extract "\\.txt$" in src into archive`, c.String())
}
