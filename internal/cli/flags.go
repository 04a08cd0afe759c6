package cli

import (
	"os"
	"path/filepath"

	"codeberg.org/snonux/wordbank/internal/dictionary"
)

// Flags holds all command-line flag values
type Flags struct {
	CfgFile     string
	OutputPath  string
	CreateDir   bool
	MergeFiles  []string
	CheckFile   string
	History     bool
	HistoryDB   string
	ListHistory bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		OutputPath: dictionary.DefaultOutputPath,
		HistoryDB:  DefaultHistoryDBPath(),
	}
}

// DefaultHistoryDBPath returns the default location of the build history
// database
func DefaultHistoryDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "wordbank", "history.db")
}
