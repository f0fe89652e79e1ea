// Package m2 finds a local Maven repository and enumerates the POM files in it.
//
// A Maven repository mirrors artifact coordinates in its directory layout:
//
//	<root>/io/vavr/vavr-match/0.9.3/vavr-match-0.9.3.pom
//	       └─group─┘ └artifact┘ └ver┘ └──────file──────┘
//
// [Locate] resolves the root, [Scan] lazily yields every .pom below it,
// [Collect] drains and sorts that sequence, and [ParsePath] turns one path back
// into a [Coordinate]. File contents are never read here; see package pom.
package m2
