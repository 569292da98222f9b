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

func NewExtractCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract 'pattern' source folder",
		Short: "Move the matching entries of source into a new folder inside it",
		Long: `Extract creates source/folder when it does not exist yet and moves every
matching entry of source into it. The folder itself is skipped if its name matches.`,
		Args: cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerb(cmd, opts, command.VerbExtract, args)
		},
	}

	return cmd
}
