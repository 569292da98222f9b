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

	"github.com/rs/zerolog"
	"github.com/walteh/rop/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 📤 extractOperation creates a folder under the source and moves matches into it
type extractOperation struct {
	BaseOperation
}

// 🏃 Execute runs the extract operation
func (op *extractOperation) Execute(ctx context.Context) error {
	m, pass, err := op.open(ctx)
	if err != nil {
		return err
	}

	folder := op.cmd.Target()
	if err := op.ensureFolder(ctx, folder); err != nil {
		pass.Close()
		return fatal("preparing extract folder", err)
	}

	return op.fold(ctx, m, pass, func(ctx context.Context, ent scan.Entry) Outcome {
		return op.moveInto(ent, folder)
	})
}

// 📁 ensureFolder creates folder unless a directory already sits there.
// In dry-run mode nothing is created.
func (op *extractOperation) ensureFolder(ctx context.Context, folder string) error {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(folder)
	switch {
	case err == nil && info.IsDir():
		logger.Debug().Str("folder", folder).Msg("extract folder already exists")
		return nil
	case err == nil:
		return errors.Errorf("%w: %s exists and is not a directory", ErrFolderUnavailable, folder)
	case !errors.Is(err, fs.ErrNotExist):
		return errors.Errorf("%w: %s: %s", ErrFolderUnavailable, folder, err.Error())
	}

	if op.dryRun {
		logger.Debug().Str("folder", folder).Msg("would create extract folder")
		return nil
	}

	if err := os.Mkdir(folder, 0o755); err != nil {
		return errors.Errorf("%w: %s: %s", ErrFolderUnavailable, folder, err.Error())
	}
	logger.Debug().Str("folder", folder).Msg("extract folder created")
	return nil
}
