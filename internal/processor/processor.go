package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"codeberg.org/snonux/ocrtrain/internal/archive"
	"codeberg.org/snonux/ocrtrain/internal/cli"
	"codeberg.org/snonux/ocrtrain/internal/config"
	"codeberg.org/snonux/ocrtrain/internal/labels"
	"codeberg.org/snonux/ocrtrain/internal/resolve"
	"codeberg.org/snonux/ocrtrain/internal/trainer"
	"codeberg.org/snonux/ocrtrain/internal/vocab"
)

// Quick test overrides
const (
	QuickNumIter     = 10
	QuickValInterval = 5
)

// DefaultVocabDatasets are scanned by the vocab command when no files are given
var DefaultVocabDatasets = []string{"test", "train", "val"}

// Processor handles the main training run logic
type Processor struct {
	flags   *cli.Flags
	viper   *viper.Viper
	trainer trainer.Trainer
	out     io.Writer
}

// NewProcessor creates a processor that runs the external trainer command
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{
		flags:   flags,
		viper:   viper.GetViper(),
		trainer: trainer.NewExecTrainer(cli.TrainerCommand()),
		out:     os.Stdout,
	}
}

// NewProcessorWithTrainer creates a processor with a custom viper instance and trainer
func NewProcessorWithTrainer(flags *cli.Flags, v *viper.Viper, t trainer.Trainer, out io.Writer) *Processor {
	return &Processor{
		flags:   flags,
		viper:   v,
		trainer: t,
		out:     out,
	}
}

// Resolve loads the configuration, applies overrides and resolves the character set
func (p *Processor) Resolve() (*config.Resolved, error) {
	opts, err := config.Load(p.viper)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if p.flags.Quick {
		opts.NumIter = QuickNumIter
		opts.ValInterval = QuickValInterval
	}

	if _, auto := opts.Vocabulary.(config.Auto); auto && !p.flags.DryRun {
		fmt.Fprintf(p.out, "Deriving character set from %d dataset(s) under %s\n", len(opts.SelectData), opts.TrainData)
	}

	if p.flags.DryRun {
		return resolve.Plan(opts, p.flags.ModelsDir)
	}
	return resolve.Resolve(opts, p.flags.ModelsDir)
}

// Train resolves the configuration and runs the trainer. With --dry-run the
// resolved configuration is printed instead and no directory is created.
func (p *Processor) Train(ctx context.Context) error {
	resolved, err := p.Resolve()
	if err != nil {
		return err
	}

	if p.flags.DryRun {
		doc, err := trainer.Marshal(resolved)
		if err != nil {
			return err
		}
		_, err = p.out.Write(doc)
		return err
	}

	fmt.Fprintf(p.out, "Experiment: %s\n", resolved.ExperimentName)
	fmt.Fprintf(p.out, "Characters: %d\n", len([]rune(resolved.Character)))
	fmt.Fprintf(p.out, "Model directory: %s\n", resolved.ModelDir)
	if resolved.SavedModel != "" {
		fmt.Fprintf(p.out, "Model path: %s\n", resolved.SavedModel)
	}
	if p.flags.Quick {
		fmt.Fprintf(p.out, "Quick test: num_iter=%d valInterval=%d\n", resolved.NumIter, resolved.ValInterval)
	}

	fmt.Fprintf(p.out, "Starting training...\n")
	if err := p.trainer.Train(ctx, resolved, p.flags.AMP); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	fmt.Fprintf(p.out, "\nDone! Models saved to: %s\n", resolved.ModelDir)
	return nil
}

// Vocab prints the characters of the given label files, or of the default
// datasets under the root directory when none are given
func (p *Processor) Vocab(paths []string) error {
	if len(paths) == 0 {
		for _, name := range DefaultVocabDatasets {
			paths = append(paths, filepath.Join(p.flags.Root, name, labels.FileName))
		}
	}

	extractor := vocab.Extractor{Order: vocab.FirstSeen, Normalize: p.flags.Normalize}
	if p.flags.Sorted {
		extractor.Order = vocab.CodePoint
	}

	chars, err := extractor.Extract(paths...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(p.out, chars.Join(p.flags.Separator))
	return err
}

// Archive moves an experiment's model directory into the archive
func (p *Processor) Archive(experiment string) error {
	if err := config.ValidateExperimentName(experiment); err != nil {
		return err
	}

	archived, err := archive.ArchiveExperiment(p.flags.ModelsDir, experiment)
	if err != nil {
		return fmt.Errorf("failed to archive experiment: %w", err)
	}

	fmt.Fprintf(p.out, "Experiment %s archived to: %s\n", experiment, archived)
	return nil
}
