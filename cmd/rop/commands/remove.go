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

func NewRemoveCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove 'pattern' source",
		Aliases: []string{"rm"},
		Short:   "Remove the entries of source whose names match pattern",
		Long: `Remove deletes every immediate entry of source whose name matches pattern.
Files and empty directories are removed. A non-empty directory fails for that entry
only and the run continues.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerb(cmd, opts, command.VerbRemove, args)
		},
	}

	return cmd
}
