// Package resolve turns validated options into a resolved configuration:
// it settles the character set and prepares the experiment's model
// directory.
package resolve

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/snonux/ocrtrain/internal/config"
	"codeberg.org/snonux/ocrtrain/internal/labels"
	"codeberg.org/snonux/ocrtrain/internal/vocab"
)

// DefaultModelsRoot is where experiment directories are created
const DefaultModelsRoot = "saved_models"

// LabelPath returns the label file of a dataset under the training data root
func LabelPath(trainData, dataset string) string {
	return filepath.Join(trainData, dataset, labels.FileName)
}

// Resolve settles the character set of opts and creates
// <modelsRoot>/<experiment_name>. Label file errors are returned unmodified
// and leave no directory behind.
func Resolve(opts *config.Options, modelsRoot string) (*config.Resolved, error) {
	resolved, err := Plan(opts, modelsRoot)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(resolved.ModelDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create model directory: %w", err)
	}
	return resolved, nil
}

// Plan settles the character set and names the model directory without
// touching the filesystem beyond reading label files
func Plan(opts *config.Options, modelsRoot string) (*config.Resolved, error) {
	character, err := Characters(opts)
	if err != nil {
		return nil, err
	}

	if modelsRoot == "" {
		modelsRoot = DefaultModelsRoot
	}

	return &config.Resolved{
		Options:   opts,
		Character: character,
		ModelDir:  filepath.Join(modelsRoot, opts.ExperimentName),
	}, nil
}

// Characters returns the character set the model must predict
func Characters(opts *config.Options) (string, error) {
	switch src := opts.Vocabulary.(type) {
	case config.Explicit:
		return src.Characters(), nil
	case config.Auto:
		set, err := DatasetCharacters(opts.TrainData, opts.SelectData, opts.NormalizeUnicode)
		if err != nil {
			return "", err
		}
		return set.String(), nil
	default:
		return "", fmt.Errorf("unknown vocabulary source %T", src)
	}
}

// DatasetCharacters unions the characters of each dataset's label file and
// sorts the result by code point
func DatasetCharacters(trainData string, datasets []string, normalize bool) (*vocab.Charset, error) {
	extractor := vocab.Extractor{Order: vocab.FirstSeen, Normalize: normalize}

	perDataset := make([]*vocab.Charset, 0, len(datasets))
	for _, name := range datasets {
		set := vocab.NewCharset()
		if err := extractor.ExtractFile(LabelPath(trainData, name), set); err != nil {
			return nil, err
		}
		perDataset = append(perDataset, set)
	}

	return vocab.Union(perDataset...).Sorted(), nil
}
