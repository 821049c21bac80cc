package config

import "errors"

var (
	// ErrMissingField is returned when a required key is absent
	ErrMissingField = errors.New("missing required configuration field")
	// ErrMalformedSelectData is returned when select_data names an empty dataset
	ErrMalformedSelectData = errors.New("malformed select_data")
	// ErrInvalidExperimentName is returned when experiment_name cannot name a directory
	ErrInvalidExperimentName = errors.New("invalid experiment_name")
	// ErrMalformedField is returned when a character group is not a string
	ErrMalformedField = errors.New("malformed configuration field")
)
