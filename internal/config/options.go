package config

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration keys
const (
	KeyExperimentName   = "experiment_name"
	KeyTrainData        = "train_data"
	KeyValidData        = "valid_data"
	KeySelectData       = "select_data"
	KeyLangChar         = "lang_char"
	KeyNumber           = "number"
	KeySymbol           = "symbol"
	KeyCharacter        = "character"
	KeyNormalizeUnicode = "normalize_unicode"
	KeySavedModel       = "saved_model"
	KeyNumIter          = "num_iter"
	KeyValInterval      = "valInterval"
)

// SelectDataSeparator joins dataset names in a select_data string
const SelectDataSeparator = "-"

// Options is the validated experiment configuration
type Options struct {
	ExperimentName string
	TrainData      string
	ValidData      string
	SelectData     []string
	Vocabulary     VocabularySource

	NormalizeUnicode bool
	SavedModel       string
	NumIter          int
	ValInterval      int

	// Raw holds the configuration document as written, for pass-through
	Raw map[string]any
}

// Resolved is a configuration whose character set is final
type Resolved struct {
	*Options
	Character string
	ModelDir  string
}

// Load validates the configuration held by v. Nothing is read from disk
// apart from the config file itself.
func Load(v *viper.Viper) (*Options, error) {
	opts := &Options{
		ExperimentName:   v.GetString(KeyExperimentName),
		TrainData:        v.GetString(KeyTrainData),
		ValidData:        v.GetString(KeyValidData),
		NormalizeUnicode: v.GetBool(KeyNormalizeUnicode),
		SavedModel:       v.GetString(KeySavedModel),
		NumIter:          v.GetInt(KeyNumIter),
		ValInterval:      v.GetInt(KeyValInterval),
	}

	if !v.IsSet(KeyExperimentName) {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, KeyExperimentName)
	}
	if err := ValidateExperimentName(opts.ExperimentName); err != nil {
		return nil, err
	}

	doc := &document{raw: map[string]any{}}
	if file := v.ConfigFileUsed(); file != "" {
		var err error
		if doc, err = readDocument(file); err != nil {
			return nil, err
		}
	}

	source, err := vocabularySource(v, doc)
	if err != nil {
		return nil, err
	}
	opts.Vocabulary = source

	_, auto := source.(Auto)
	if auto && !v.IsSet(KeyTrainData) {
		return nil, fmt.Errorf("%w: %s (required when %s is %q)", ErrMissingField, KeyTrainData, KeyLangChar, AutoSentinel)
	}
	if v.IsSet(KeySelectData) {
		opts.SelectData, err = ParseSelectData(v.Get(KeySelectData))
		if err != nil {
			return nil, err
		}
	} else if auto {
		return nil, fmt.Errorf("%w: %s (required when %s is %q)", ErrMissingField, KeySelectData, KeyLangChar, AutoSentinel)
	}

	opts.Raw = doc.raw
	return opts, nil
}

func vocabularySource(v *viper.Viper, doc *document) (VocabularySource, error) {
	if !v.IsSet(KeyLangChar) {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, KeyLangChar)
	}

	langChar, err := doc.text(v, KeyLangChar)
	if err != nil {
		return nil, err
	}
	if langChar == AutoSentinel {
		return Auto{}, nil
	}

	for _, key := range []string{KeyNumber, KeySymbol} {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s (required when %s is set)", ErrMissingField, key, KeyLangChar)
		}
	}

	number, err := doc.text(v, KeyNumber)
	if err != nil {
		return nil, err
	}
	symbol, err := doc.text(v, KeySymbol)
	if err != nil {
		return nil, err
	}

	return Explicit{
		Number:   number,
		Symbol:   symbol,
		LangChar: langChar,
	}, nil
}

// ParseSelectData splits a select_data value into dataset names. Both a
// hyphen-joined string and a YAML list are accepted.
func ParseSelectData(value any) ([]string, error) {
	var names []string
	switch val := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: %s", ErrMissingField, KeySelectData)
	case string:
		names = strings.Split(val, SelectDataSeparator)
	default:
		list, err := cast.ToStringSliceE(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSelectData, err)
		}
		names = list
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: empty dataset name in %v", ErrMalformedSelectData, value)
		}
		out = append(out, name)
	}
	return out, nil
}

// ValidateExperimentName checks that name can be used as a single directory name
func ValidateExperimentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, KeyExperimentName)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, os.PathSeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidExperimentName, name)
	}
	return nil
}

// ReadRaw decodes the YAML document at path keeping keys as written
func ReadRaw(path string) (map[string]any, error) {
	doc, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.raw, nil
}

// document is a decoded config file together with the source text of its
// top-level scalars
type document struct {
	raw     map[string]any
	scalars map[string]string
}

func readDocument(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	doc := &document{raw: map[string]any{}, scalars: map[string]string{}}
	if len(root.Content) == 0 {
		return doc, nil
	}

	mapping := root.Content[0]
	if err := mapping.Decode(&doc.raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if mapping.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			key, value := mapping.Content[i], mapping.Content[i+1]
			if value.Kind == yaml.ScalarNode && value.Tag != "!!null" {
				doc.scalars[strings.ToLower(key.Value)] = value.Value
			}
		}
	}

	// Character groups are text even when YAML reads them as numbers
	for _, key := range []string{KeyNumber, KeySymbol, KeyLangChar} {
		if _, isString := doc.raw[key].(string); !isString {
			if text, ok := doc.scalars[key]; ok {
				doc.raw[key] = text
			}
		}
	}

	return doc, nil
}

// text returns key as written. Values YAML decoded as numbers or booleans
// (number: 0123456789) are taken from the scalar's source text.
func (d *document) text(v *viper.Viper, key string) (string, error) {
	value := v.Get(key)
	if s, ok := value.(string); ok {
		return s, nil
	}
	if text, ok := d.scalars[key]; ok {
		return text, nil
	}
	return "", fmt.Errorf("%w: %s must be a string, got %T", ErrMalformedField, key, value)
}

// Settings returns the configuration as handed to the trainer: the raw
// document with the resolved and overridden fields written back.
func (r *Resolved) Settings() map[string]any {
	settings := maps.Clone(r.Raw)
	if settings == nil {
		settings = map[string]any{}
	}

	settings[KeyExperimentName] = r.ExperimentName
	settings[KeyCharacter] = r.Character

	if r.TrainData != "" {
		settings[KeyTrainData] = r.TrainData
	}
	if r.ValidData != "" {
		settings[KeyValidData] = r.ValidData
	}
	if len(r.SelectData) > 0 {
		settings[KeySelectData] = strings.Join(r.SelectData, SelectDataSeparator)
	}
	if r.SavedModel != "" {
		settings[KeySavedModel] = r.SavedModel
	}
	if r.NumIter > 0 {
		settings[KeyNumIter] = r.NumIter
	}
	if r.ValInterval > 0 {
		settings[KeyValInterval] = r.ValInterval
	}

	switch src := r.Vocabulary.(type) {
	case Auto:
		settings[KeyLangChar] = AutoSentinel
	case Explicit:
		settings[KeyNumber] = src.Number
		settings[KeySymbol] = src.Symbol
		settings[KeyLangChar] = src.LangChar
	}

	return settings
}
