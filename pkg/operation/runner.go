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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations one at a time on the calling goroutine
type OperationRunner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	return &OperationRunner{
		logger: logger,
	}
}

// 🏃 Run executes an operation and logs how it went
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	cmd := op.Command()
	logger := r.logger.With().Str("verb", string(cmd.Verb())).Logger()
	ctx = logger.WithContext(ctx)

	start := time.Now()
	logger.Debug().Str("command", cmd.String()).Msg("operation started")

	if err := op.Execute(ctx); err != nil {
		if errors.Is(err, ErrListingIncomplete) {
			logger.Debug().Err(err).Dur("took", time.Since(start)).Msg("operation finished early")
		} else {
			logger.Debug().Err(err).Bool("fatal", IsFatal(err)).Msg("operation aborted")
		}
		return errors.Errorf("running %s: %w", cmd.Verb(), err)
	}

	logger.Debug().Dur("took", time.Since(start)).Msg("operation finished")
	return nil
}
