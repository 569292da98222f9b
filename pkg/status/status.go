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

package status

import (
	"context"
	"sync"

	"github.com/walteh/rop/pkg/command"
	"github.com/walteh/rop/pkg/operation"
)

// 📊 Tally counts outcomes per status while forwarding them to another reporter
type Tally struct {
	next operation.Reporter

	mu       sync.Mutex
	verb     command.Verb
	counts   map[operation.Status]int
	failures []operation.Outcome
}

// 🏭 NewTally wraps next; a nil next only counts
func NewTally(next operation.Reporter) *Tally {
	return &Tally{
		next:   next,
		counts: make(map[operation.Status]int),
	}
}

// 📝 Report implements operation.Reporter
func (t *Tally) Report(ctx context.Context, o operation.Outcome) {
	t.mu.Lock()
	t.verb = o.Verb
	t.counts[o.Status]++
	if o.Status == operation.StatusFailed {
		t.failures = append(t.failures, o)
	}
	t.mu.Unlock()

	if t.next != nil {
		t.next.Report(ctx, o)
	}
}

// Count returns how many outcomes had status s
func (t *Tally) Count(s operation.Status) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[s]
}

// Total returns the number of matched entries
func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Failures returns the failed outcomes in report order
func (t *Tally) Failures() []operation.Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]operation.Outcome(nil), t.failures...)
}

// Verb returns the verb of the last outcome seen
func (t *Tally) Verb() command.Verb {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.verb
}
