package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	trending "github.com/theskumar/github-trending"
	"github.com/theskumar/github-trending/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("#### python\n"), 0644))
}

func TestDiscoverDigests(t *testing.T) {
	t.Parallel()

	t.Run("keeps only date-named markdown files in a directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.md"))
		writeFile(t, filepath.Join(dir, "2020-01-01.md"))
		writeFile(t, filepath.Join(dir, "README.md"))
		writeFile(t, filepath.Join(dir, "2020-1-1.md"))
		writeFile(t, filepath.Join(dir, "notes.txt"))

		files, err := fs.DiscoverDigests(dir)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, filepath.Join(dir, "2020-01-01.md"), files[0].Path)
		assert.Equal(t, "2020-01-01", files[0].Date)
	})

	t.Run("walks directories recursively", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2019", "2019-12-31.md"))
		writeFile(t, filepath.Join(dir, "2020", "01", "2020-01-01.md"))

		files, err := fs.DiscoverDigests(dir)
		require.NoError(t, err)
		require.Len(t, files, 2)
	})

	t.Run("returns files in sorted order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "2020-03-01.md"))
		writeFile(t, filepath.Join(dir, "2020-01-01.md"))
		writeFile(t, filepath.Join(dir, "2020-02-01.md"))

		files, err := fs.DiscoverDigests(dir)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, "2020-01-01", files[0].Date)
		assert.Equal(t, "2020-02-01", files[1].Date)
		assert.Equal(t, "2020-03-01", files[2].Date)
	})

	t.Run("accepts a single matching file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "2017-08-29.md")
		writeFile(t, path)

		files, err := fs.DiscoverDigests(path)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, trending.DigestFile{Path: path, Date: "2017-08-29"}, files[0])
	})

	t.Run("returns empty for a single non-matching file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		writeFile(t, path)

		files, err := fs.DiscoverDigests(path)
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("returns ENOTFOUND for nonexistent path", func(t *testing.T) {
		t.Parallel()

		_, err := fs.DiscoverDigests(filepath.Join(t.TempDir(), "missing"))
		require.Error(t, err)
		assert.Equal(t, trending.ENOTFOUND, trending.ErrorCode(err))
	})
}
