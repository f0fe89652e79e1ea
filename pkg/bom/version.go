package bom

import (
	"slices"
	"strings"
)

// CompareVersions orders two version strings by their dot-separated segments,
// comparing segments as strings. When one list is a prefix of the other the
// shorter one is smaller. It returns -1, 0 or +1.
//
//	CompareVersions("0.9.4", "0.9.3") == +1
//	CompareVersions("1.9", "1.10")    == +1  // "9" > "10" as strings
//	CompareVersions("1.0", "1.0.1")   == -1
func CompareVersions(a, b string) int {
	return slices.Compare(strings.Split(a, "."), strings.Split(b, "."))
}
