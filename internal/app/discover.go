package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/seiskit/sgynorm/internal/domain"
)

// Discover walks root, collects files whose extension matches ext
// (case-insensitive, leading dot included), and returns their paths relative
// to root, sorted lexicographically for deterministic processing order.
// A missing or non-directory root yields domain.ErrInputNotFound; a root with
// no matching files yields an empty set and no error.
func Discover(root, ext string) (domain.FileSet, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", root, domain.ErrInputNotFound)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: not a directory: %w", root, domain.ErrInputNotFound)
	}

	var files domain.FileSet
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ext) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
