package dictionary

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Load reads a dictionary file back into a word slice. Blank lines are
// skipped and Windows line endings tolerated; no normalization is applied.
func Load(fs afero.Fs, path string) ([]string, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		words = append(words, line)
	}

	return words, nil
}

// Verify checks that a dictionary file upholds the format the spell
// checker relies on: every line non-empty, lowercase and unique, lines in
// strictly ascending lexicographic order, and the final line terminated
// by a newline. It returns the word count on success. An empty file is
// valid and counts zero words.
func Verify(fs afero.Fs, path string) (int, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to read dictionary file: %w", err)
	}
	if len(content) == 0 {
		return 0, nil
	}
	if content[len(content)-1] != '\n' {
		return 0, fmt.Errorf("dictionary %s: final line is not newline-terminated", path)
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	prev := ""
	for i, line := range lines {
		lineNo := i + 1
		if line == "" {
			return 0, fmt.Errorf("dictionary %s: line %d is empty", path, lineNo)
		}
		if line != strings.ToLower(line) {
			return 0, fmt.Errorf("dictionary %s: line %d contains uppercase characters: %q", path, lineNo, line)
		}
		if i > 0 {
			if line == prev {
				return 0, fmt.Errorf("dictionary %s: line %d duplicates %q", path, lineNo, line)
			}
			if line < prev {
				return 0, fmt.Errorf("dictionary %s: line %d out of order: %q after %q", path, lineNo, line, prev)
			}
		}
		prev = line
	}

	return len(lines), nil
}
