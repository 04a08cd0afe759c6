package processor

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"codeberg.org/snonux/wordbank/internal/cli"
	"codeberg.org/snonux/wordbank/internal/dictionary"
	"codeberg.org/snonux/wordbank/internal/history"
	"codeberg.org/snonux/wordbank/internal/wordlist"
)

// Processor handles the main dictionary build logic
type Processor struct {
	flags *cli.Flags
	fs    afero.Fs
	out   io.Writer
}

// NewProcessor creates a new dictionary processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags: flags,
		fs:    afero.NewOsFs(),
		out:   os.Stdout,
	}
}

// Build assembles the word collection and writes the dictionary file.
// The collection is the embedded list plus any merge files; the writer
// normalizes it (lowercase, dedupe, sort) before writing.
func (p *Processor) Build() error {
	words := wordlist.Builtin()

	for _, path := range p.flags.MergeFiles {
		extra, err := wordlist.ReadFile(p.fs, path)
		if err != nil {
			return err
		}
		words = append(words, extra...)
		fmt.Fprintf(p.out, "Merged %d words from %s\n", len(extra), path)
	}

	writer := dictionary.NewWriter(&dictionary.WriterOptions{
		OutputPath: p.flags.OutputPath,
		CreateDir:  p.flags.CreateDir,
		Fs:         p.fs,
	})

	count, err := writer.Write(words)
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, color.GreenString("Created enhanced dictionary with %d words", count))
	fmt.Fprintf(p.out, "File: %s\n", p.flags.OutputPath)

	if p.flags.History {
		p.recordBuild(count)
	}

	return nil
}

// Check verifies an existing dictionary file and reports its word count
func (p *Processor) Check(path string) error {
	count, err := dictionary.Verify(p.fs, path)
	if err != nil {
		return err
	}

	fmt.Fprintln(p.out, color.GreenString("Dictionary OK: %d words", count))
	fmt.Fprintf(p.out, "File: %s\n", path)
	return nil
}

// ListHistory prints all recorded builds, newest first
func (p *Processor) ListHistory() error {
	store, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	builds, err := store.List()
	if err != nil {
		return err
	}

	if len(builds) == 0 {
		fmt.Fprintln(p.out, "No builds recorded yet")
		return nil
	}
	for _, b := range builds {
		fmt.Fprintf(p.out, "%s  %6d words  %s\n",
			b.CreatedAt.Format("2006-01-02 15:04:05"), b.WordCount, b.OutputPath)
	}
	return nil
}

// recordBuild appends the build to the history ledger. A ledger failure
// is a warning only: the dictionary file is already on disk and remains
// the contract of the run.
func (p *Processor) recordBuild(count int) {
	store, err := history.Open(p.flags.HistoryDB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return
	}
	defer store.Close()

	b := history.Build{
		CreatedAt:  time.Now(),
		OutputPath: p.flags.OutputPath,
		WordCount:  count,
	}
	if err := store.Record(b); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}
