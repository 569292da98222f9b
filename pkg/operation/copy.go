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
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/rop/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 📦 copyOperation duplicates matching files into the destination directory
type copyOperation struct {
	BaseOperation
}

// 🏃 Execute runs the copy operation
func (op *copyOperation) Execute(ctx context.Context) error {
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
		return op.copyInto(ctx, ent, dest)
	})
}

// 📄 copyInto copies a single file. There is no self-destination rule here:
// a directory entry or an occupied target simply fails.
func (op *copyOperation) copyInto(ctx context.Context, ent scan.Entry, dir string) Outcome {
	target := filepath.Join(dir, ent.Name)

	info, err := os.Stat(ent.Path)
	if err != nil {
		return Outcome{Status: StatusFailed, Destination: dir, Err: errors.Errorf("reading source: %w", err)}
	}
	if !info.Mode().IsRegular() {
		return Outcome{Status: StatusFailed, Destination: dir, Err: errors.Errorf("%w: %s", ErrNotRegularFile, ent.Path)}
	}
	if err := requireAbsent(target); err != nil {
		return Outcome{Status: StatusFailed, Destination: dir, Err: err}
	}

	if p := op.planned(dir); p != nil {
		return *p
	}

	if err := copyFile(ent.Path, target, info.Mode().Perm()); err != nil {
		return Outcome{Status: StatusFailed, Destination: dir, Err: err}
	}

	zerolog.Ctx(ctx).Trace().
		Str("source", ent.Path).
		Str("target", target).
		Int64("size", info.Size()).
		Msg("file copied")

	return Outcome{Status: StatusSucceeded, Destination: dir}
}

// 📑 copyFile writes src's contents to a new file at dst. A partially written
// dst is removed on failure.
func copyFile(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, perm)
	if err != nil {
		return errors.Errorf("creating target: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return errors.Errorf("copying content: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return errors.Errorf("closing target: %w", err)
	}
	return nil
}
