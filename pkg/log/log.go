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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/walteh/rop/pkg/command"
	"github.com/walteh/rop/pkg/operation"
)

// 🎨 Display configuration
const (
	entryIndent = 2  // spaces to indent entry lines
	nameWidth   = 35 // Base width for entry name
	verbWidth   = 8  // Width for verb
	statusWidth = 10 // Width for status text
)

// 🎯 Logger prints one console line per outcome and mirrors it to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	plain   bool
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📃 Plain makes list outcomes print the bare entry name, one per line
func (l *Logger) Plain(plain bool) *Logger {
	l.plain = plain
	return l
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatOutcome formats an outcome for display
func (l *Logger) formatOutcome(o operation.Outcome) string {
	if l.plain && o.Verb == command.VerbList && o.Status == operation.StatusSucceeded {
		return o.Name
	}

	var symbol rune
	var symbolColor color.Attribute
	switch o.Status {
	case operation.StatusFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	case operation.StatusSkipped:
		symbol = '-'
		symbolColor = color.FgYellow
	case operation.StatusPlanned:
		symbol = '⟳'
		symbolColor = color.FgBlue
	default:
		if o.Verb == command.VerbList {
			symbol = '•'
			symbolColor = color.FgCyan
		} else {
			symbol = '✓'
			symbolColor = color.FgGreen
		}
	}

	line := fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, o.Name),
		color.New(color.FgMagenta).Sprint(fmt.Sprintf("%-*s", verbWidth, o.Verb)),
		fmt.Sprintf("%-*s", statusWidth, o.Status))

	if o.Destination != "" {
		line += color.New(color.Faint).Sprint("→ " + o.Destination)
	}
	switch {
	case o.Err != nil:
		line += " " + color.New(color.FgRed).Sprint(o.Err.Error())
	case o.Detail != "":
		line += " " + color.New(color.Faint).Sprintf("(%s)", o.Detail)
	}
	return line
}

// 📝 Report prints an outcome and logs it
func (l *Logger) Report(ctx context.Context, o operation.Outcome) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, l.formatOutcome(o))

	ev := l.zlog.Debug()
	if o.Status == operation.StatusFailed {
		ev = l.zlog.Warn().Err(o.Err)
	}
	ev.
		Str("entry", o.Name).
		Str("verb", string(o.Verb)).
		Str("status", o.Status.String()).
		Str("destination", o.Destination).
		Msg("entry processed")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ropText := color.New(color.Bold, color.FgCyan).Sprint("rop")
	fmt.Fprintf(l.console, "\n%s %s\n\n", ropText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}
