package wordlist

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// ReadFile reads supplemental words from a file, one word per line.
// Blank lines and lines starting with '#' are skipped, and Windows line
// endings are tolerated. The words are returned as authored; callers are
// expected to run the result through Normalize.
func ReadFile(fs afero.Fs, path string) ([]string, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}

	var words []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return words, nil
}
