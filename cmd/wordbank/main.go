package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/wordbank/internal/cli"
	"codeberg.org/snonux/wordbank/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, flags *cli.Flags) error {
	// Config file values apply unless the flag was given explicitly
	if !cmd.Flags().Changed("output") && viper.GetString("output.path") != "" {
		flags.OutputPath = viper.GetString("output.path")
	}
	if !cmd.Flags().Changed("mkdir") && viper.GetBool("output.mkdir") {
		flags.CreateDir = true
	}
	if !cmd.Flags().Changed("history") && viper.GetBool("history.enabled") {
		flags.History = true
	}
	if !cmd.Flags().Changed("history-db") && viper.GetString("history.database") != "" {
		flags.HistoryDB = viper.GetString("history.database")
	}

	// Create processor
	proc := processor.NewProcessor(flags)

	// Handle --list-history flag
	if flags.ListHistory {
		return proc.ListHistory()
	}

	// Handle --check flag
	if flags.CheckFile != "" {
		return proc.Check(flags.CheckFile)
	}

	return proc.Build()
}
