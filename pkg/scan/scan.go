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

// Package scan lists the immediate entries of a single directory.
//
// A Pass reads one entry at a time and is exhausted exactly once; callers that
// need a second look at the directory must Open a new Pass.
package scan

import (
	"io"
	"os"
	"path/filepath"

	"gitlab.com/tozd/go/errors"
)

var (
	// ErrDirectoryUnreadable is returned when the directory cannot be listed
	ErrDirectoryUnreadable = errors.Base("directory unreadable")
	// ErrPassClosed is returned by Next after Close
	ErrPassClosed = errors.Base("scan pass closed")
)

// 📄 Entry is an immediate child of the scanned directory
type Entry struct {
	Path  string // Full path to the entry
	Name  string // Base name, the only thing the matcher sees
	IsDir bool   // Whether the listing reported a directory
}

// 📂 Pass is a single forward-only walk over a directory listing
type Pass struct {
	dir    string
	f      *os.File
	done   bool
	closed bool
}

// 🏭 Open starts a new pass over dir
func Open(dir string) (*Pass, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrDirectoryUnreadable, dir, err.Error())
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s: not a directory", ErrDirectoryUnreadable, dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return nil, errors.Errorf("%w: %s: %s", ErrDirectoryUnreadable, dir, err.Error())
	}

	return &Pass{dir: dir, f: f}, nil
}

// 📍 Dir returns the directory being scanned
func (p *Pass) Dir() string {
	return p.dir
}

// ⏭️ Next returns the next entry, or io.EOF once the listing is exhausted
func (p *Pass) Next() (Entry, error) {
	if p.closed {
		return Entry{}, ErrPassClosed
	}
	if p.done {
		return Entry{}, io.EOF
	}

	ents, err := p.f.ReadDir(1)
	if err != nil {
		p.done = true
		if errors.Is(err, io.EOF) {
			return Entry{}, io.EOF
		}
		return Entry{}, errors.Errorf("reading %s: %w", p.dir, err)
	}
	if len(ents) == 0 {
		p.done = true
		return Entry{}, io.EOF
	}

	ent := ents[0]
	return Entry{
		Path:  filepath.Join(p.dir, ent.Name()),
		Name:  ent.Name(),
		IsDir: ent.IsDir(),
	}, nil
}

// 🔒 Close releases the directory handle
func (p *Pass) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if err := p.f.Close(); err != nil {
		return errors.Errorf("closing %s: %w", p.dir, err)
	}
	return nil
}

// 📋 All drains a fresh pass over dir into a slice
func All(dir string) ([]Entry, error) {
	p, err := Open(dir)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	var out []Entry
	for {
		ent, err := p.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, ent)
	}
}
