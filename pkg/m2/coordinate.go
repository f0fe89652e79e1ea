package m2

import (
	"path/filepath"
	"strings"

	"github.com/activestate/bomgen/pkg/errors"
)

// minSegments is group + artifact + version + file.
const minSegments = 4

// Coordinate identifies one POM found in the repository.
type Coordinate struct {
	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string // set by the caller after reading the POM
	Path       string // absolute path of the .pom file
}

// Key returns "groupId:artifactId", the identity used for deduplication.
func (c Coordinate) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// String returns "groupId:artifactId:version".
func (c Coordinate) String() string {
	return c.Key() + ":" + c.Version
}

// ParsePath derives a coordinate from the location of a .pom below root.
//
// The last three segments are artifactId, version and file name; everything
// above them, joined with ".", is the groupId. Paths with no group segment, or
// outside root, are rejected with ErrCodeInvalidPath.
func ParsePath(root, path string) (Coordinate, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return Coordinate{}, errors.Wrap(errors.ErrCodeInvalidPath, err, "%s is not below %s", path, root)
	}

	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidPath, "%s is not below %s", path, root)
	}

	parts := strings.Split(rel, "/")
	if len(parts) < minSegments {
		return Coordinate{}, errors.New(errors.ErrCodeInvalidPath,
			"%s: expected <group>/<artifact>/<version>/<file>.pom, got %d segments", rel, len(parts))
	}

	n := len(parts)
	return Coordinate{
		GroupID:    strings.Join(parts[:n-3], "."),
		ArtifactID: parts[n-3],
		Version:    parts[n-2],
		Path:       path,
	}, nil
}
