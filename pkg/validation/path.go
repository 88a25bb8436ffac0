// Package validation provides input validation functions for security-critical operations.
// These functions implement defense-in-depth against path traversal and injection attacks.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// Conan reference segment (name, version, user, channel):
// - First character alphanumeric or underscore
// - Then alphanumerics, underscore, plus, dot and hyphen
// - Max 51 characters
var segmentRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_+.-]{0,50}$`)

// Binary package id: 40 lowercase hex characters (sha1 of the package settings).
var packageIDRegex = regexp.MustCompile(`^[a-f0-9]{40}$`)

// File names accepted inside a recipe or package folder.
var fileNameRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.-]{0,127}$`)

// MaxAssetPathLength is the maximum allowed length for asset paths.
const MaxAssetPathLength = 512

// ValidateSegment validates one segment of a Conan reference.
// Returns an error if the segment is invalid or could enable path traversal.
func ValidateSegment(segment string) error {
	if segment == "" {
		return fmt.Errorf("segment cannot be empty")
	}

	// Check for path traversal attempts
	if strings.Contains(segment, "..") {
		return fmt.Errorf("segment contains path traversal sequence")
	}

	if !segmentRegex.MatchString(segment) {
		return fmt.Errorf("invalid segment %q: must start with a letter, digit or underscore and contain only [a-zA-Z0-9_+.-] (max 51 chars)", segment)
	}

	return nil
}

// ValidatePackageID validates a binary package id.
func ValidatePackageID(id string) error {
	if id == "" {
		return fmt.Errorf("package id cannot be empty")
	}

	if !packageIDRegex.MatchString(id) {
		return fmt.Errorf("invalid package id format: must be 40 lowercase hex chars")
	}

	return nil
}

// ValidateFileName validates the file name part of an asset path.
func ValidateFileName(name string) error {
	if name == "" {
		return fmt.Errorf("file name cannot be empty")
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("file name contains path traversal sequence")
	}

	if !fileNameRegex.MatchString(name) {
		return fmt.Errorf("invalid file name format")
	}

	return nil
}

// ValidateAssetPath validates a slash separated asset path as stored by the repository.
func ValidateAssetPath(path string) error {
	if path == "" {
		return fmt.Errorf("asset path cannot be empty")
	}

	if len(path) > MaxAssetPathLength {
		return fmt.Errorf("asset path too long: %d chars (max %d)", len(path), MaxAssetPathLength)
	}

	if strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
		return fmt.Errorf("asset path must not start or end with a slash")
	}

	for _, part := range strings.Split(path, "/") {
		if part == "" {
			return fmt.Errorf("asset path contains an empty segment")
		}
		if part == "." || strings.Contains(part, "..") {
			return fmt.Errorf("asset path contains path traversal sequence")
		}
	}

	return nil
}

// PackagesDir is the folder holding binary packages below a recipe.
const PackagesDir = "packages"

// ValidateFileLayout validates the file part of a recipe route: either a
// bare "<file>" or "packages/<package id>/<file>".
func ValidateFileLayout(rest string) error {
	parts := strings.Split(rest, "/")
	switch len(parts) {
	case 1:
		return ValidateFileName(parts[0])
	case 3:
		if parts[0] != PackagesDir {
			return fmt.Errorf("unexpected folder %q: only %s/<package id>/<file> is allowed", parts[0], PackagesDir)
		}
		if err := ValidatePackageID(parts[1]); err != nil {
			return err
		}
		return ValidateFileName(parts[2])
	default:
		return fmt.Errorf("invalid file layout %q: want <file> or %s/<package id>/<file>", rest, PackagesDir)
	}
}

// ValidatePathWithinRoot validates that a constructed path stays within the root directory.
// This provides defense-in-depth after filepath.Join operations.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	cleanRoot := filepath.Clean(rootDir)
	cleanPath := filepath.Clean(fullPath)

	// Ensure the path starts with the root directory
	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) && cleanPath != cleanRoot {
		return fmt.Errorf("path escapes root directory")
	}

	return nil
}
