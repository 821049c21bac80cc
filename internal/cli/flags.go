package cli

import "codeberg.org/snonux/ocrtrain/internal/resolve"

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	EnvFile   string
	ModelsDir string

	// Train flags
	AMP            bool
	DryRun         bool
	Quick          bool
	TrainerCmd     string
	ExperimentName string
	NumIter        int
	ValInterval    int

	// Vocab flags
	Root      string
	Sorted    bool
	Separator string
	Normalize bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		EnvFile:    ".env",
		ModelsDir:  resolve.DefaultModelsRoot,
		TrainerCmd: "python train.py",
		Root:       ".",
		Separator:  " ",
	}
}
