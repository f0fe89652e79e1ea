package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUsage, "missing argument: %s", "project_name")

	if err.Code != ErrCodeUsage {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUsage)
	}

	if err.Message != "missing argument: project_name" {
		t.Errorf("Message = %v, want %v", err.Message, "missing argument: project_name")
	}

	expected := "USAGE: missing argument: project_name"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := fs.ErrPermission
	err := Wrap(ErrCodeFilesystem, cause, "create output directory")

	if err.Code != ErrCodeFilesystem {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeFilesystem)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("errors.Is(err, fs.ErrPermission) = false, want true")
	}

	expected := "FILESYSTEM: create output directory: permission denied"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeConfig, "test"),
			code:     ErrCodeConfig,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeConfig, "test"),
			code:     ErrCodeParse,
			expected: false,
		},
		{
			name:     "outer code wins",
			err:      Wrap(ErrCodeFilesystem, New(ErrCodeParse, "inner"), "outer"),
			code:     ErrCodeFilesystem,
			expected: true,
		},
		{
			name:     "fmt wrapped",
			err:      fmt.Errorf("scan: %w", New(ErrCodeParse, "bad xml")),
			code:     ErrCodeParse,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeUsage,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeUsage,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeInvalidPath, "test"), ErrCodeInvalidPath},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeConfig, "friendly message"), "friendly message"},
		{"with cause", Wrap(ErrCodeParse, errors.New("unexpected EOF"), "parse a.pom"), "parse a.pom: unexpected EOF"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}
