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

// Package command holds the validated, immutable request for one invocation.
package command

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/walteh/rop/pkg/match"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUnknownVerb is returned for a verb outside the supported set
	ErrUnknownVerb = errors.Base("unknown verb")
	// ErrMissingOperand is returned when a required operand is absent or empty
	ErrMissingOperand = errors.Base("missing operand")
	// ErrTooManyOperands is returned when more operands are given than the verb takes
	ErrTooManyOperands = errors.Base("too many operands")
	// ErrInvalidFolder is returned when an extract folder is not a single path element
	ErrInvalidFolder = errors.Base("invalid folder name")
)

// 🎬 Verb selects the operation applied to matching entries
type Verb string

const (
	VerbHelp    Verb = "help"
	VerbList    Verb = "list"
	VerbRemove  Verb = "remove"
	VerbMove    Verb = "move"
	VerbCopy    Verb = "copy"
	VerbExtract Verb = "extract"
)

// Verbs lists every verb in usage order
var Verbs = []Verb{VerbHelp, VerbList, VerbRemove, VerbMove, VerbCopy, VerbExtract}

// ParseVerb maps a case-insensitive name to a Verb
func ParseVerb(s string) (Verb, error) {
	v := Verb(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Verbs {
		if v == known {
			return v, nil
		}
	}
	return "", errors.Errorf("%w: %q", ErrUnknownVerb, s)
}

// operands returns the number of positional operands the verb takes after its name
func (v Verb) operands() int {
	switch v {
	case VerbHelp:
		return 0
	case VerbList, VerbRemove:
		return 2
	default:
		return 3
	}
}

// 📦 Command is one verb plus its operands. The zero value is the help command.
type Command struct {
	verb        Verb
	pattern     string
	source      string
	destination string
	folder      string
}

func (c Command) Verb() Verb {
	if c.verb == "" {
		return VerbHelp
	}
	return c.verb
}

func (c Command) Pattern() string     { return c.pattern }
func (c Command) Source() string      { return c.source }
func (c Command) Destination() string { return c.destination }
func (c Command) Folder() string      { return c.folder }

// Target returns the directory matches end up in: the destination for move and
// copy, source/folder for extract, and "" otherwise.
func (c Command) Target() string {
	switch c.verb {
	case VerbMove, VerbCopy:
		return c.destination
	case VerbExtract:
		return filepath.Join(c.source, c.folder)
	default:
		return ""
	}
}

func (c Command) String() string {
	switch c.Verb() {
	case VerbHelp:
		return "help"
	case VerbList, VerbRemove:
		return fmt.Sprintf("%s %q in %s", c.verb, c.pattern, c.source)
	case VerbExtract:
		return fmt.Sprintf("%s %q in %s into %s", c.verb, c.pattern, c.source, c.folder)
	default:
		return fmt.Sprintf("%s %q in %s to %s", c.verb, c.pattern, c.source, c.destination)
	}
}

// 🆘 Help returns the help command
func Help() Command {
	return Command{verb: VerbHelp}
}

// 📋 NewList builds a list command
func NewList(pattern, source string) (Command, error) {
	return build(Command{verb: VerbList, pattern: pattern, source: source})
}

// 🗑️ NewRemove builds a remove command
func NewRemove(pattern, source string) (Command, error) {
	return build(Command{verb: VerbRemove, pattern: pattern, source: source})
}

// 🚚 NewMove builds a move command
func NewMove(pattern, source, destination string) (Command, error) {
	return build(Command{verb: VerbMove, pattern: pattern, source: source, destination: destination})
}

// 📑 NewCopy builds a copy command
func NewCopy(pattern, source, destination string) (Command, error) {
	return build(Command{verb: VerbCopy, pattern: pattern, source: source, destination: destination})
}

// 📤 NewExtract builds an extract command
func NewExtract(pattern, source, folder string) (Command, error) {
	return build(Command{verb: VerbExtract, pattern: pattern, source: source, folder: folder})
}

// 🔍 Parse builds a command from positional arguments: verb pattern source [destination|folder].
// No arguments at all yields the help command.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return Help(), nil
	}

	verb, err := ParseVerb(args[0])
	if err != nil {
		return Command{}, err
	}

	rest := args[1:]
	want := verb.operands()
	if len(rest) > want {
		return Command{}, errors.Errorf("%w: %s takes %d, got %d", ErrTooManyOperands, verb, want, len(rest))
	}
	operand := func(i int, name string) (string, error) {
		if i >= len(rest) {
			return "", errors.Errorf("%w: %s requires %s", ErrMissingOperand, verb, name)
		}
		return rest[i], nil
	}

	if verb == VerbHelp {
		return Help(), nil
	}

	pattern, err := operand(0, "a pattern")
	if err != nil {
		return Command{}, err
	}
	source, err := operand(1, "a source directory")
	if err != nil {
		return Command{}, err
	}

	switch verb {
	case VerbList:
		return NewList(pattern, source)
	case VerbRemove:
		return NewRemove(pattern, source)
	}

	third := "a destination directory"
	if verb == VerbExtract {
		third = "a folder name"
	}
	last, err := operand(2, third)
	if err != nil {
		return Command{}, err
	}

	switch verb {
	case VerbMove:
		return NewMove(pattern, source, last)
	case VerbCopy:
		return NewCopy(pattern, source, last)
	default:
		return NewExtract(pattern, source, last)
	}
}

// build validates every operand the verb carries. An empty pattern is valid
// and selects every entry.
func build(c Command) (Command, error) {
	if _, err := match.Compile(c.pattern); err != nil {
		return Command{}, err
	}
	if c.source == "" {
		return Command{}, errors.Errorf("%w: %s requires a source directory", ErrMissingOperand, c.verb)
	}

	switch c.verb {
	case VerbMove, VerbCopy:
		if c.destination == "" {
			return Command{}, errors.Errorf("%w: %s requires a destination directory", ErrMissingOperand, c.verb)
		}
	case VerbExtract:
		if c.folder == "" {
			return Command{}, errors.Errorf("%w: extract requires a folder name", ErrMissingOperand)
		}
		if c.folder == "." || c.folder == ".." || strings.ContainsRune(c.folder, filepath.Separator) || strings.ContainsRune(c.folder, '/') {
			return Command{}, errors.Errorf("%w: %q", ErrInvalidFolder, c.folder)
		}
	}

	return c, nil
}
