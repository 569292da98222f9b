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
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrFolderUnavailable is returned when the extract folder cannot be created or used
	ErrFolderUnavailable = errors.Base("extract folder unavailable")
	// ErrDestinationUnusable is returned when a move or copy destination is not a directory
	ErrDestinationUnusable = errors.Base("destination is not a directory")

	// ErrListingIncomplete is returned when the source listing broke off after some entries were processed
	ErrListingIncomplete = errors.Base("listing incomplete")

	// per-entry causes carried in Outcome.Err
	ErrTargetExists   = errors.Base("target already exists")
	ErrNotRegularFile = errors.Base("not a regular file")
)

// 💥 FatalError aborts the whole invocation before any outcome is produced
type FatalError struct {
	Stage string
	Err   error
}

func (e *FatalError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

func fatal(stage string, err error) error {
	return &FatalError{Stage: stage, Err: err}
}

// IsFatal reports whether err aborted the invocation
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
