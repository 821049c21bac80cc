package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"EnvFile", flags.EnvFile, ".env"},
		{"ModelsDir", flags.ModelsDir, "saved_models"},
		{"TrainerCmd", flags.TrainerCmd, "python train.py"},
		{"Root", flags.Root, "."},
		{"Separator", flags.Separator, " "},
		{"NumIter", flags.NumIter, 0},
		{"ValInterval", flags.ValInterval, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	boolTests := []struct {
		name  string
		value bool
	}{
		{"AMP", flags.AMP},
		{"DryRun", flags.DryRun},
		{"Quick", flags.Quick},
		{"Sorted", flags.Sorted},
		{"Normalize", flags.Normalize},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != false {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	// Test string defaults (should be empty)
	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"ExperimentName", flags.ExperimentName},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}
