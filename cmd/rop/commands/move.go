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
	"github.com/spf13/cobra"
	"github.com/walteh/rop/cmd/rop/opts"
	"github.com/walteh/rop/pkg/command"
)

func NewMoveCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "move 'pattern' source destination",
		Aliases: []string{"mv"},
		Short:   "Move the matching entries of source into destination",
		Long: `Move renames every immediate entry of source whose name matches pattern into
destination, keeping its name. destination must be an existing directory. An entry
named like destination itself is skipped, and an existing target is never overwritten.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerb(cmd, opts, command.VerbMove, args)
		},
	}

	return cmd
}
