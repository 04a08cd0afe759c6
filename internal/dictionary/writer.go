// Package dictionary persists word collections as the plain-text seed
// dictionary consumed by the spell checker, and verifies existing
// dictionary files against that format.
package dictionary

import (
	"bufio"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"codeberg.org/snonux/wordbank/internal/wordlist"
)

// DefaultOutputPath is where the spell checker expects its seed
// dictionary, relative to the current working directory.
const DefaultOutputPath = "test_data/enhanced_dictionary.txt"

// WriterOptions configures the dictionary export
type WriterOptions struct {
	OutputPath string   // Output dictionary file path
	CreateDir  bool     // Create the parent directory before writing
	Fs         afero.Fs // Target filesystem (OS filesystem if nil)
}

// DefaultWriterOptions returns sensible defaults
func DefaultWriterOptions() *WriterOptions {
	return &WriterOptions{
		OutputPath: DefaultOutputPath,
		CreateDir:  false,
		Fs:         afero.NewOsFs(),
	}
}

// Writer persists normalized word collections as dictionary files
type Writer struct {
	options *WriterOptions
}

// NewWriter creates a new dictionary writer
func NewWriter(options *WriterOptions) *Writer {
	if options == nil {
		options = DefaultWriterOptions()
	}
	if options.Fs == nil {
		options.Fs = afero.NewOsFs()
	}
	return &Writer{options: options}
}

// OutputPath returns the configured output path
func (w *Writer) OutputPath() string {
	return w.options.OutputPath
}

// Write normalizes the given words and writes them to the output path,
// one word per line, each line terminated by a newline. The target file
// is created or truncated and closed before Write returns. The number of
// unique words written is returned.
//
// The parent directory is only created when CreateDir is set; otherwise a
// missing directory surfaces as the create error. No temp-file-and-rename
// discipline is used, so a failure mid-write can leave a truncated file.
func (w *Writer) Write(words []string) (int, error) {
	unique := wordlist.Normalize(words)

	if w.options.CreateDir {
		dir := filepath.Dir(w.options.OutputPath)
		if err := w.options.Fs.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := w.options.Fs.Create(w.options.OutputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create dictionary file: %w", err)
	}

	buf := bufio.NewWriter(file)
	for _, word := range unique {
		if _, err := buf.WriteString(word + "\n"); err != nil {
			file.Close()
			return 0, fmt.Errorf("failed to write word %q: %w", word, err)
		}
	}

	if err := buf.Flush(); err != nil {
		file.Close()
		return 0, fmt.Errorf("failed to flush dictionary file: %w", err)
	}
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close dictionary file: %w", err)
	}

	return len(unique), nil
}
