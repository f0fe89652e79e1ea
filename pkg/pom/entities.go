package pom

import "strings"

// Entity is a literal text substitution applied before XML parsing. POMs in
// the wild contain HTML entity references that an XML parser without a DTD
// rejects; each entry maps such a reference to its character.
type Entity struct {
	Name  string // e.g. "&oslash;"
	Value string // e.g. "ø"
}

// DefaultEntities is the built-in normalization table.
var DefaultEntities = []Entity{
	{Name: "&oslash;", Value: "ø"},
}

// newReplacer builds a single-pass replacer from the table. Entries with an
// empty name are ignored.
func newReplacer(entities []Entity) *strings.Replacer {
	pairs := make([]string, 0, 2*len(entities))
	for _, e := range entities {
		if e.Name == "" {
			continue
		}
		pairs = append(pairs, e.Name, e.Value)
	}
	return strings.NewReplacer(pairs...)
}
