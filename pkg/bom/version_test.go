package bom

import "testing"

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"0.9.4", "0.9.3", 1},
		{"0.9.3", "0.9.4", -1},
		{"1.0", "1.0", 0},
		// Segments compare as strings, not numbers.
		{"1.9", "1.10", 1},
		{"1.10", "1.9", -1},
		{"2.0", "10.0", 1},
		// A prefix is smaller.
		{"1.0", "1.0.1", -1},
		{"1.0.0", "1.0", 1},
		// Qualifiers are plain text.
		{"31.0-jre", "31.0-android", 1},
		{"1.0-SNAPSHOT", "1.0", 1},
		{"", "0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := CompareVersions(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
