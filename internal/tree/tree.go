package tree

import (
	"os"
	"path/filepath"
	"strings"
)

// Render walks root depth-first and returns its textual tree, one entry per
// line: directories as "<indent><name>/" and files as "<indent><name>".
// Indentation is four spaces per folder depth below root, measured as the
// path-separator count of the entry's path relative to root. Siblings come
// out in filepath.Walk's lexical order, so the result is deterministic for
// a given tree.
func Render(root string) (string, error) {
	if _, err := os.Stat(root); err != nil {
		return "", err
	}

	root = filepath.Clean(root)
	var b strings.Builder
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Unreadable entries are left out rather than failing the walk.
			return nil
		}
		depth := strings.Count(strings.TrimPrefix(path, root), string(os.PathSeparator))
		indent := strings.Repeat(" ", 4*depth)
		if info.IsDir() {
			b.WriteString(indent + info.Name() + "/\n")
		} else {
			b.WriteString(indent + info.Name() + "\n")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}
