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

func NewListCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list 'pattern' source",
		Short: "List the entries of source whose names match pattern",
		Long: `List prints every immediate entry of source whose name matches pattern.
Nothing is modified. When stdout is not a terminal each name is printed on its own
line so the output can be piped.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerb(cmd, opts, command.VerbList, args)
		},
	}

	return cmd
}
