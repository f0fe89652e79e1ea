package m2

import (
	"os"
	"path/filepath"

	"github.com/activestate/bomgen/pkg/errors"
)

// DirName is the repository directory expected next to a JDK installation.
const DirName = "m2"

// Locate resolves the repository root.
//
// An explicit path wins. Otherwise the root is the m2 directory beside
// javaHome, i.e. filepath.Dir(javaHome)/m2. Callers read JAVA_HOME themselves
// and pass it in. The result is always absolute, so it lines up with the
// paths yielded by [Scan].
func Locate(explicit, javaHome string) (string, error) {
	var root string
	switch {
	case explicit != "":
		root = explicit
	case javaHome != "":
		root = filepath.Join(filepath.Dir(filepath.Clean(javaHome)), DirName)
	default:
		return "", errors.New(errors.ErrCodeConfig,
			"no repository root: pass an explicit m2 path or set JAVA_HOME to a JDK installation")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFilesystem, err, "resolve %s", root)
	}
	return abs, nil
}

// CheckRoot verifies that root exists and is a directory.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFilesystem, err, "repository root %s", root)
	}
	if !info.IsDir() {
		return errors.New(errors.ErrCodeFilesystem, "repository root %s is not a directory", root)
	}
	return nil
}
