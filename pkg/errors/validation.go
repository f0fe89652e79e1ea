package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxProjectNameLength bounds the artifactId and every path segment derived
// from the project name.
const maxProjectNameLength = 200

// projectNameRegex matches names usable both as a Maven artifactId prefix and
// as a single directory name.
var projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateProjectName validates the project name that becomes the BOM's
// artifactId ("<name>-bom") and part of its output path.
//
// Rejected:
//   - empty names
//   - control characters and null bytes
//   - path separators and traversal sequences
//   - names that do not start with a letter or digit
func ValidateProjectName(name string) error {
	if name == "" {
		return New(ErrCodeUsage, "project name is required")
	}

	if len(name) > maxProjectNameLength {
		return New(ErrCodeUsage, "project name too long (max %d characters)", maxProjectNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeUsage, "project name contains invalid control characters")
		}
	}

	for _, pattern := range []string{"..", "/", "\\"} {
		if strings.Contains(name, pattern) {
			return New(ErrCodeUsage, "project name contains invalid characters: %q", pattern)
		}
	}

	if !projectNameRegex.MatchString(name) {
		return New(ErrCodeUsage, "invalid project name: %q", name)
	}

	return nil
}

// ValidateCoordinatePart checks one groupId, artifactId or version value
// taken from the BOM configuration.
func ValidateCoordinatePart(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeConfig, "%s cannot be empty", field)
	}
	if strings.ContainsAny(value, "/\\:") {
		return New(ErrCodeConfig, "%s contains invalid characters: %q", field, value)
	}
	if strings.Contains(value, "..") {
		return New(ErrCodeConfig, "%s cannot contain \"..\": %q", field, value)
	}
	return nil
}
