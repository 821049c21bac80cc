package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/ocrtrain/internal/cli"
	"codeberg.org/snonux/ocrtrain/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create commands
	rootCmd := cli.CreateRootCommand(flags)
	trainCmd := cli.CreateTrainCommand(flags)
	vocabCmd := cli.CreateVocabCommand(flags)
	archiveCmd := cli.CreateArchiveCommand(flags)

	// Load .env and config before any subcommand runs
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return cli.InitConfig(flags.CfgFile, flags.EnvFile)
	}

	trainCmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return processor.NewProcessor(flags).Train(ctx)
	}
	vocabCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags).Vocab(args)
	}
	archiveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return processor.NewProcessor(flags).Archive(args[0])
	}

	rootCmd.AddCommand(trainCmd, vocabCmd, archiveCmd)

	// Execute command
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
