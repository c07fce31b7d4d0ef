package pasta

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// extensions are the file extensions recognised as Pascal source.
var extensions = []string{".pas", ".pp", ".dpr", ".lpr", ".inc"}

// isSource reports whether path has one of the extensions, ignoring case.
func isSource(path string) bool {
	return slices.Contains(extensions, strings.ToLower(filepath.Ext(path)))
}

// sources returns the Pascal source files named by path.
//
// If path is a file it is returned as is, whatever its extension. If it is a directory,
// it is walked recursively for files with one of the extensions, in lexical order.
func sources(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{path}, nil
	}

	var paths []string

	err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.Type().IsRegular() && isSource(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", path, err)
	}

	return paths, nil
}
