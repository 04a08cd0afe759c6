package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordbank/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordbank",
		Short: "Seed dictionary builder for the spell checker",
		Long: `wordbank builds the seed dictionary consumed by the spell checker.

It flattens the embedded English word list (plus any merge files) into a
set of unique lowercase words and writes them, sorted, one per line.

Examples:
  wordbank                         # Write test_data/enhanced_dictionary.txt
  wordbank -o words.txt --mkdir    # Custom output path, create parent dir
  wordbank --merge extra.txt       # Merge words from a supplemental file
  wordbank --check words.txt       # Verify an existing dictionary file`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.wordbank.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", flags.OutputPath, "Output dictionary file path")
	cmd.Flags().BoolVar(&flags.CreateDir, "mkdir", false, "Create the output directory if it does not exist")
	cmd.Flags().StringArrayVar(&flags.MergeFiles, "merge", nil, "Merge words from file, one per line (repeatable)")
	cmd.Flags().StringVar(&flags.CheckFile, "check", "", "Verify an existing dictionary file and exit")
	cmd.Flags().BoolVar(&flags.History, "history", false, "Record this build in the history database")
	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", flags.HistoryDB, "Build history database path")
	cmd.Flags().BoolVar(&flags.ListHistory, "list-history", false, "List recorded builds and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.path", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.mkdir", cmd.Flags().Lookup("mkdir"))
	viper.BindPFlag("history.enabled", cmd.Flags().Lookup("history"))
	viper.BindPFlag("history.database", cmd.Flags().Lookup("history-db"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".wordbank" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".wordbank")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDBANK")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
