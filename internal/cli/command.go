package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/ocrtrain/internal"
	"codeberg.org/snonux/ocrtrain/internal/config"
)

// EnvPrefix prefixes environment variables that override configuration keys
const EnvPrefix = "OCRTRAIN"

// KeyTrainerCmd is the configuration key of the external trainer command
const KeyTrainerCmd = "trainer_cmd"

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ocrtrain",
		Short: "Text recognition training harness",
		Long: `ocrtrain prepares and launches text recognition model training.

It reads a YAML experiment configuration, resolves the character set the
model has to predict, creates the experiment's model directory and hands
the resolved configuration to an external trainer.

Examples:
  ocrtrain train --config config_files/ja_custom.yaml
  ocrtrain train --config ja.yaml --quick --dry-run
  ocrtrain vocab --root all_data
  ocrtrain archive ja_custom`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.ocrtrain.yaml or ./.ocrtrain.yaml)")
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", flags.EnvFile, "dotenv file loaded before reading the environment")

	return rootCmd
}

// CreateTrainCommand creates the train subcommand
func CreateTrainCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Resolve the configuration and run the trainer",
		Args:  cobra.NoArgs,
	}

	cmd.Flags().BoolVar(&flags.AMP, "amp", false, "Enable mixed precision training")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the resolved configuration instead of training (creates no directories)")
	cmd.Flags().BoolVar(&flags.Quick, "quick", false, "Quick test run (num_iter=10, valInterval=5)")
	cmd.Flags().StringVar(&flags.ModelsDir, "models-dir", flags.ModelsDir, "Directory holding experiment model directories")
	cmd.Flags().StringVar(&flags.TrainerCmd, "trainer-cmd", flags.TrainerCmd, "External trainer command; the resolved config is written to its stdin")
	cmd.Flags().StringVar(&flags.ExperimentName, "experiment-name", "", "Override experiment_name")
	cmd.Flags().IntVar(&flags.NumIter, "num-iter", 0, "Override num_iter")
	cmd.Flags().IntVar(&flags.ValInterval, "val-interval", 0, "Override valInterval")

	bindFlagsToViper(cmd)

	return cmd
}

// CreateVocabCommand creates the vocab subcommand
func CreateVocabCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab [label files...]",
		Short: "Print the characters used in label files",
		Long: `vocab prints every distinct character found in the transcriptions of the
given label files, in the order first seen across all files.

Without arguments it reads test, train and val labels.csv under --root.`,
	}

	cmd.Flags().StringVar(&flags.Root, "root", flags.Root, "Data root used when no label files are given")
	cmd.Flags().BoolVar(&flags.Sorted, "sorted", false, "Sort characters by code point")
	cmd.Flags().StringVar(&flags.Separator, "sep", flags.Separator, "Separator printed between characters")
	cmd.Flags().BoolVar(&flags.Normalize, "normalize", false, "Apply Unicode NFC to transcriptions")

	return cmd
}

// CreateArchiveCommand creates the archive subcommand
func CreateArchiveCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <experiment>",
		Short: "Move an experiment's model directory into the archive",
		Args:  cobra.ExactArgs(1),
	}

	cmd.Flags().StringVar(&flags.ModelsDir, "models-dir", flags.ModelsDir, "Directory holding experiment model directories")

	return cmd
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag(config.KeyExperimentName, cmd.Flags().Lookup("experiment-name"))
	viper.BindPFlag(config.KeyNumIter, cmd.Flags().Lookup("num-iter"))
	viper.BindPFlag(config.KeyValInterval, cmd.Flags().Lookup("val-interval"))
	viper.BindPFlag(KeyTrainerCmd, cmd.Flags().Lookup("trainer-cmd"))
}

// InitConfig loads the dotenv file and the viper configuration. A missing
// default config file is not an error, an unreadable --config file is.
func InitConfig(cfgFile, envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
		} else {
			viper.AddConfigPath(home)
		}

		// Search config in home and working directory with name ".ocrtrain" (without extension)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".ocrtrain")
	}

	// Environment variables
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	return nil
}

// TrainerCommand splits the trainer command into program and arguments.
// The --trainer-cmd flag wins over OCRTRAIN_TRAINER_CMD and the
// trainer_cmd config key.
func TrainerCommand() []string {
	return strings.Fields(viper.GetString(KeyTrainerCmd))
}
