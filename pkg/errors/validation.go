package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateInput checks a string before it is traced.
//
// The empty string is accepted: tracing it is a no-op. Rejected inputs:
//   - Invalid UTF-8
//   - Control characters (newlines, tabs, escape sequences) that would
//     break the one-cell-per-character display
//   - More than maxLen characters, when maxLen > 0
func ValidateInput(input string, maxLen int) error {
	if !utf8.ValidString(input) {
		return New(ErrCodeInvalidInput, "input is not valid UTF-8")
	}

	for i, r := range []rune(input) {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "input contains a control character at position %d", i)
		}
	}

	if n := utf8.RuneCountInString(input); maxLen > 0 && n > maxLen {
		return New(ErrCodeInputTooLong, "input has %d characters (max %d)", n, maxLen)
	}

	return nil
}

// ValidateOutputPath validates a file path that output will be written to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
