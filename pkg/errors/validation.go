package errors

import (
	"strings"
	"unicode"
)

const maxNameLength = 256

// ValidateColumnName validates an attribute column name supplied by a user.
//
// A valid column name is non-empty, at most 256 bytes long and free of
// control characters. Surrounding whitespace is rejected so that "type"
// and " type" cannot silently address different columns.
func ValidateColumnName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "attribute name cannot be empty")
	}
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "attribute name too long (max %d characters)", maxNameLength)
	}
	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidInput, "attribute name %q has surrounding whitespace", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "attribute name contains invalid characters")
		}
	}
	return nil
}

// ValidateCategory validates a node category value used to select a mode.
//
// Category values are compared against the string form of node attribute
// values, so any printable value is accepted, including the literal "null"
// that selects nodes without the attribute.
func ValidateCategory(value string) error {
	if value == "" {
		return New(ErrCodeInvalidInput, "category cannot be empty")
	}
	if len(value) > maxNameLength {
		return New(ErrCodeInvalidInput, "category too long (max %d characters)", maxNameLength)
	}
	for _, r := range value {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "category contains invalid characters")
		}
	}
	return nil
}

// ValidatePath validates a file path given on the command line.
//
// Rules:
//   - Non-empty, at most 4096 bytes
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
