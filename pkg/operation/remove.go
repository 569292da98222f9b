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
	"os"

	"github.com/walteh/rop/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🗑️ removeOperation deletes matching entries
type removeOperation struct {
	BaseOperation
}

// 🏃 Execute runs the remove operation
func (op *removeOperation) Execute(ctx context.Context) error {
	m, pass, err := op.open(ctx)
	if err != nil {
		return err
	}

	return op.fold(ctx, m, pass, op.removeEntry)
}

// 🗑️ removeEntry deletes a single entry; non-empty directories fail
func (op *removeOperation) removeEntry(ctx context.Context, ent scan.Entry) Outcome {
	if p := op.planned(""); p != nil {
		return *p
	}

	if err := os.Remove(ent.Path); err != nil {
		return Outcome{Status: StatusFailed, Err: errors.Errorf("removing: %w", err)}
	}
	return Outcome{Status: StatusSucceeded}
}
