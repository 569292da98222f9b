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
	"github.com/walteh/rop/pkg/command"
)

// 📊 Status is the result of applying a verb to one entry
type Status int

const (
	StatusSucceeded Status = iota // The verb was applied
	StatusFailed                  // The filesystem refused; see Outcome.Err
	StatusSkipped                 // Deliberately not applied; see Outcome.Detail
	StatusPlanned                 // Dry run, nothing was touched
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	case StatusPlanned:
		return "planned"
	default:
		return "unknown"
	}
}

// 📄 Outcome is emitted exactly once per matched entry
type Outcome struct {
	Verb        command.Verb // Verb that was applied
	Name        string       // Entry base name
	Path        string       // Entry full path
	Destination string       // Target directory for move, copy and extract
	Status      Status       // What happened
	Detail      string       // Human readable reason for skips
	Err         error        // Cause of a failure
}

// Ok reports whether the outcome is not a failure
func (o Outcome) Ok() bool {
	return o.Status != StatusFailed
}
