// Package fs provides filesystem-based input discovery for trending digest
// files.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	trending "github.com/theskumar/github-trending"
)

// DiscoverDigests finds digest files under path. A regular file is included
// only if its name matches the YYYY-MM-DD.md pattern; a directory is walked
// recursively and filtered the same way. The date is taken from the file
// name, never from file contents.
//
// Results are sorted lexicographically by path, which also sorts them
// chronologically given the naming convention. A nonexistent path returns an
// ENOTFOUND error; a path that exists but matches nothing returns an empty
// slice and no error.
func DiscoverDigests(path string) ([]trending.DigestFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, trending.Errorf(trending.ENOTFOUND, "path %q does not exist", path)
	}

	var files []trending.DigestFile

	if !info.IsDir() {
		if date, ok := trending.DateFromFilename(path); ok {
			files = append(files, trending.DigestFile{Path: path, Date: date})
		}
		return files, nil
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}
		if date, ok := trending.DateFromFilename(p); ok {
			files = append(files, trending.DigestFile{Path: p, Date: date})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}
