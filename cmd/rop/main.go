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
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/rop/pkg/log"
)

func main() {
	root := NewRootCmd(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		printDiagnostic(os.Stderr, err)
		os.Exit(1)
	}
}

// printDiagnostic writes the single line a failed invocation ends with. The
// structured logger may not exist yet, so only the console line is written.
func printDiagnostic(w io.Writer, err error) {
	log.New(w, zerolog.Nop()).Errorf("rop: %v", err)
}
