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
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/walteh/rop/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

var summaryOrder = []operation.Status{
	operation.StatusSucceeded,
	operation.StatusFailed,
	operation.StatusSkipped,
	operation.StatusPlanned,
}

// FormatSummary returns a one line summary, e.g. "3 matched for move: 2 succeeded, 1 failed"
func FormatSummary(t *Tally) string {
	s := fmt.Sprintf("%d matched", t.Total())
	if verb := t.Verb(); verb != "" {
		s += " for " + string(verb)
	}
	sep := ": "
	for _, st := range summaryOrder {
		n := t.Count(st)
		if n == 0 {
			continue
		}
		s += fmt.Sprintf("%s%d %s", sep, n, st)
		sep = ", "
	}
	return s
}

// 📋 RenderTable writes a pterm table of per-status counts followed by every failure
func RenderTable(w io.Writer, t *Tally) error {
	data := pterm.TableData{{"status", "count"}}
	for _, st := range summaryOrder {
		data = append(data, []string{st.String(), strconv.Itoa(t.Count(st))})
	}
	data = append(data, []string{"total", strconv.Itoa(t.Total())})

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Errorf("rendering summary table: %w", err)
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return errors.Errorf("writing summary table: %w", err)
	}

	for _, f := range t.Failures() {
		if _, err := fmt.Fprintf(w, "  %s: %v\n", f.Name, f.Err); err != nil {
			return errors.Errorf("writing failures: %w", err)
		}
	}
	return nil
}
