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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/walteh/rop/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🚚 moveOperation renames matching entries into the destination directory
type moveOperation struct {
	BaseOperation
}

// 🏃 Execute runs the move operation
func (op *moveOperation) Execute(ctx context.Context) error {
	m, pass, err := op.open(ctx)
	if err != nil {
		return err
	}

	dest := op.cmd.Destination()
	if err := requireDir(dest); err != nil {
		pass.Close()
		return fatal("checking destination", err)
	}

	return op.fold(ctx, m, pass, func(ctx context.Context, ent scan.Entry) Outcome {
		return op.moveInto(ent, dest)
	})
}

// 🚚 moveInto moves ent into dir. An entry named like dir itself is skipped so
// a directory is never moved into itself.
func (b *BaseOperation) moveInto(ent scan.Entry, dir string) Outcome {
	if ent.Name == filepath.Base(dir) {
		return Outcome{
			Status:      StatusSkipped,
			Destination: dir,
			Detail:      "entry is the destination directory",
		}
	}

	target := filepath.Join(dir, ent.Name)
	if err := requireAbsent(target); err != nil {
		return Outcome{Status: StatusFailed, Destination: dir, Err: err}
	}

	if p := b.planned(dir); p != nil {
		return *p
	}

	// no copy fallback across devices; EXDEV is reported like any other failure
	if err := os.Rename(ent.Path, target); err != nil {
		return Outcome{Status: StatusFailed, Destination: dir, Err: errors.Errorf("moving: %w", err)}
	}
	return Outcome{Status: StatusSucceeded, Destination: dir}
}

// 📂 requireDir checks that path exists and is a directory
func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("%w: %s: %s", ErrDestinationUnusable, path, err.Error())
	}
	if !info.IsDir() {
		return errors.Errorf("%w: %s", ErrDestinationUnusable, path)
	}
	return nil
}

// 🔍 requireAbsent checks that nothing lives at target yet
func requireAbsent(target string) error {
	_, err := os.Lstat(target)
	if err == nil {
		return errors.Errorf("%w: %s", ErrTargetExists, target)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Errorf("checking target: %w", err)
}
