// Package bom reduces scanned coordinates to one version per artifact and
// writes the result as a Maven Bill of Materials.
//
// # Version selection
//
// [Selection] keeps, for every "groupId:artifactId", the greatest version seen
// according to [CompareVersions]. The comparison splits on "." and compares
// the segments as strings, so "1.9" beats "1.10". Existing BOMs depend on this
// ordering; do not replace it with a semantic-version comparator.
//
// # Output
//
// [NewProject] builds the document and [WriteFile] stores it in the Maven
// layout below the repository root:
//
//	<root>/com/activestate/platform/project/<name>-bom/1.0.0/<name>-bom-1.0.0.pom
package bom
