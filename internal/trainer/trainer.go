package trainer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/ocrtrain/internal/config"
)

// Trainer runs training for a resolved configuration
type Trainer interface {
	Train(ctx context.Context, resolved *config.Resolved, amp bool) error
}

// AMPFlag is appended to the trainer command when mixed precision is enabled
const AMPFlag = "--amp"

// ExecTrainer runs the trainer as a child process. The resolved settings
// are written to its stdin as a single YAML document.
type ExecTrainer struct {
	Command []string
	Dir     string
	Stdout  io.Writer
	Stderr  io.Writer
}

// NewExecTrainer creates a trainer running command with the process's stdout and stderr
func NewExecTrainer(command []string) *ExecTrainer {
	return &ExecTrainer{
		Command: command,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Train blocks until the trainer process exits
func (e *ExecTrainer) Train(ctx context.Context, resolved *config.Resolved, amp bool) error {
	if len(e.Command) == 0 {
		return errors.New("no trainer command configured")
	}
	if resolved == nil {
		return errors.New("trainer needs a resolved configuration")
	}

	doc, err := Marshal(resolved)
	if err != nil {
		return err
	}

	args := append([]string{}, e.Command[1:]...)
	if amp {
		args = append(args, AMPFlag)
	}

	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Dir = e.Dir
	cmd.Stdin = bytes.NewReader(doc)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("trainer %s failed: %w", e.Command[0], err)
	}
	return nil
}

// Marshal renders the resolved settings as YAML
func Marshal(resolved *config.Resolved) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(resolved.Settings()); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode configuration: %w", err)
	}
	return buf.Bytes(), nil
}
