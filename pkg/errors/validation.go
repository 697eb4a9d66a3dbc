package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputDir validates the directory diagrams are written to.
//
// Absolute and relative paths are both accepted; the rules only reject input
// that cannot name a directory:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 1024 characters
func ValidateOutputDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output directory too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	return nil
}

// ValidateFilename validates a rendered file name.
// It must be a plain basename: no separators, no traversal, not hidden.
func ValidateFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." || strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidPath, "file name cannot be hidden or relative: %q", name)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	return nil
}

// sceneKeyRegex matches registry keys such as "future-scaling".
var sceneKeyRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateSceneKey validates a scene registry key.
func ValidateSceneKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "scene key cannot be empty")
	}

	if len(key) > 64 {
		return New(ErrCodeInvalidInput, "scene key too long (max 64 characters)")
	}

	if !sceneKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidInput, "invalid scene key %q (lowercase letters, digits and dashes)", key)
	}

	return nil
}
