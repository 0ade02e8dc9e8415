// Package docwalk enumerates a documentation tree in presentation order:
// depth-first by path, with a directory's index document ahead of its
// siblings.
package docwalk

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// indexMarker sorts before any alphanumeric rune when paths are compared
// as strings, which is what pulls index documents to the front.
const indexMarker = "!!!"

var indexNames = map[string]bool{
	"index.md":  true,
	"index.mdx": true,
}

// File is one document candidate produced by Walk.
type File struct {
	Path    string // path as walked, rooted at the walk root argument
	RelPath string // path relative to the walk root
	SortKey string
}

// Depth returns the file's outline depth: the number of path separators in
// its root-relative path, minus one for index documents so an index shares
// its parent directory's level. Top-level index files stay at depth zero.
func (f File) Depth() int {
	depth := strings.Count(filepath.ToSlash(f.RelPath), "/")
	if strings.HasPrefix(filepath.Base(f.RelPath), "index.") && depth > 0 {
		depth--
	}
	return depth
}

// SortKeyFor builds the ordering key for a directory entry. Index documents
// get the marker prefix on their base name; everything else keys by its
// plain path.
func SortKeyFor(dir, base string) string {
	if indexNames[base] {
		base = indexMarker + base
	}
	return filepath.Join(dir, base)
}

// Walk enumerates every regular file under root, ordered by ascending sort
// key. Directories themselves are never returned.
func Walk(root string) ([]File, error) {
	var files []File
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return fmt.Errorf("relativizing %s: %w", path, relErr)
		}
		files = append(files, File{
			Path:    path,
			RelPath: rel,
			SortKey: SortKeyFor(filepath.Dir(path), d.Name()),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool { return files[i].SortKey < files[j].SortKey })
	return files, nil
}
