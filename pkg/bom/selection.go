package bom

import (
	"github.com/package-url/packageurl-go"

	"github.com/activestate/bomgen/pkg/m2"
)

// DefaultSkipPackaging lists packaging types that never appear in a BOM:
// parent/aggregator POMs and build plugins.
var DefaultSkipPackaging = []string{"pom", "plugin"}

// Entry is one selected artifact.
type Entry struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Key returns "groupId:artifactId".
func (e Entry) Key() string {
	return e.GroupID + ":" + e.ArtifactID
}

// PURL returns the package URL of the entry, e.g.
// "pkg:maven/io.vavr/vavr-match@0.9.4".
func (e Entry) PURL() string {
	return packageurl.NewPackageURL(packageurl.TypeMaven, e.GroupID, e.ArtifactID, e.Version, nil, "").ToString()
}

// Selection maps each "groupId:artifactId" to the greatest version added so
// far. Iteration follows first-insertion order. Not safe for concurrent use.
type Selection struct {
	skip    map[string]bool
	index   map[string]int
	entries []Entry
}

// NewSelection returns an empty selection that ignores the given packaging
// types. A nil list means [DefaultSkipPackaging].
func NewSelection(skip []string) *Selection {
	if skip == nil {
		skip = DefaultSkipPackaging
	}
	s := &Selection{
		skip:  make(map[string]bool, len(skip)),
		index: make(map[string]int),
	}
	for _, p := range skip {
		s.skip[p] = true
	}
	return s
}

// Skips reports whether coordinates with this packaging are ignored.
func (s *Selection) Skips(packaging string) bool {
	return s.skip[packaging]
}

// Add offers c to the selection and reports whether it was stored, either as
// a new key or as a strictly greater version of an existing one.
func (s *Selection) Add(c m2.Coordinate) bool {
	if s.skip[c.Packaging] {
		return false
	}

	key := c.Key()
	i, ok := s.index[key]
	if !ok {
		s.index[key] = len(s.entries)
		s.entries = append(s.entries, Entry{GroupID: c.GroupID, ArtifactID: c.ArtifactID, Version: c.Version})
		return true
	}

	if CompareVersions(c.Version, s.entries[i].Version) > 0 {
		s.entries[i].Version = c.Version
		return true
	}
	return false
}

// Version returns the selected version for key.
func (s *Selection) Version(key string) (string, bool) {
	i, ok := s.index[key]
	if !ok {
		return "", false
	}
	return s.entries[i].Version, true
}

// Len returns the number of distinct keys.
func (s *Selection) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the selected entries in insertion order.
func (s *Selection) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
