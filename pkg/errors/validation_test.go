package errors

import (
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "myproject", false},
		{"valid with dash", "my-project", false},
		{"valid with underscore", "my_project", false},
		{"valid with dot", "my.project", false},
		{"valid digits", "88459370", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 300), true},
		{"leading dash", "-project", true},
		{"leading dot", ".project", true},
		{"path traversal", "foo..bar", true},
		{"slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
		{"space", "my project", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProjectName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeUsage) {
				t.Errorf("ValidateProjectName(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeUsage)
			}
		})
	}
}

func TestValidateCoordinatePart(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"group", "com.activestate.platform.project", false},
		{"version", "1.0.0", false},

		{"empty", "", true},
		{"blank", "   ", true},
		{"slash", "com/activestate", true},
		{"colon", "com:activestate", true},
		{"traversal", "com..activestate", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinatePart("group_id", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinatePart(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
