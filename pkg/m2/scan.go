package m2

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/activestate/bomgen/pkg/errors"
)

// Ext is the file extension of Maven project descriptors.
const Ext = ".pom"

// Scan returns a lazy sequence of absolute paths to every .pom file under root.
//
// The sequence is single-use and yields paths in directory walk order. A walk
// error is yielded once with an empty path and ends the sequence.
func Scan(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		abs, err := filepath.Abs(root)
		if err != nil {
			yield("", errors.Wrap(errors.ErrCodeFilesystem, err, "resolve %s", root))
			return
		}

		stopped := false
		walkErr := filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(d.Name()) != Ext {
				return nil
			}
			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield("", errors.Wrap(errors.ErrCodeFilesystem, walkErr, "scan %s", abs))
		}
	}
}

// Collect drains [Scan] and sorts the result with [ComparePaths].
func Collect(root string) ([]string, error) {
	var paths []string
	for path, err := range Scan(root) {
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	slices.SortFunc(paths, ComparePaths)
	return paths, nil
}

// ComparePaths orders paths component by component, so "a/b/x.pom" sorts
// before "a/b-c/x.pom" even though '-' < '/' bytewise.
func ComparePaths(a, b string) int {
	return slices.Compare(
		strings.Split(filepath.ToSlash(a), "/"),
		strings.Split(filepath.ToSlash(b), "/"),
	)
}
