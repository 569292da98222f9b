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

package scan

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func setupDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deeper"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "hidden.txt"), []byte("x"), 0o644))
	return dir
}

func TestAllListsImmediateChildren(t *testing.T) {
	dir := setupDir(t)

	entries, err := All(dir)
	require.NoError(t, err, "listing should succeed")

	names := make([]string, 0, len(entries))
	for _, ent := range entries {
		names = append(names, ent.Name)
		assert.Equal(t, filepath.Join(dir, ent.Name), ent.Path, "path should join dir and name")
		assert.Equal(t, ent.Name == "sub", ent.IsDir, "only sub is a directory")
	}
	sort.Strings(names)

	assert.Equal(t, []string{"a.txt", "b.txt", "notes.md", "sub"}, names, "should not recurse")
}

func TestPassIsNotRestartable(t *testing.T) {
	dir := setupDir(t)

	p, err := Open(dir)
	require.NoError(t, err)
	defer p.Close()

	count := 0
	for {
		_, err := p.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		count++
	}
	assert.Equal(t, 4, count, "should yield every entry once")

	_, err = p.Next()
	assert.ErrorIs(t, err, io.EOF, "exhausted pass should stay exhausted")

	require.NoError(t, p.Close())
	_, err = p.Next()
	assert.ErrorIs(t, err, ErrPassClosed, "closed pass should refuse reads")
	assert.NoError(t, p.Close(), "double close should be a no-op")
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: filepath.Join(dir, "nope")},
		{name: "not_a_directory", path: file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Open(tt.path)
			require.Error(t, err)
			assert.Nil(t, p)
			assert.True(t, errors.Is(err, ErrDirectoryUnreadable), "error should be ErrDirectoryUnreadable, got %v", err)
			assert.Contains(t, err.Error(), tt.path, "error should name the path")
		})
	}
}

func TestEmptyDirectory(t *testing.T) {
	entries, err := All(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
