// Package testutil provides shared helpers for tests that create and
// inspect dictionary and word files.
package testutil

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile creates a test file with content on the given filesystem
func WriteFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()

	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// ReadFile reads a test file and fails the test on error
func ReadFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read test file %s: %v", path, err)
	}
	return string(content)
}

// ReadLines reads a test file and returns its newline-separated lines,
// without the trailing empty element after the final newline
func ReadLines(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()

	content := ReadFile(t, fs, path)
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if !exists {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	if exists {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertSortedUniqueLowercase checks the dictionary line invariants:
// non-empty, lowercase, unique, strictly ascending
func AssertSortedUniqueLowercase(t *testing.T, lines []string) {
	t.Helper()

	prev := ""
	for i, line := range lines {
		if line == "" {
			t.Errorf("Line %d is empty", i+1)
		}
		if line != strings.ToLower(line) {
			t.Errorf("Line %d contains uppercase characters: %q", i+1, line)
		}
		if i > 0 && line <= prev {
			t.Errorf("Line %d not in strict ascending order: %q after %q", i+1, line, prev)
		}
		prev = line
	}
}
