package trainer

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/ocrtrain/internal/config"
)

func testResolved() *config.Resolved {
	return &config.Resolved{
		Options: &config.Options{
			ExperimentName: "ja_custom",
			TrainData:      "all_data",
			SelectData:     []string{"train"},
			Vocabulary:     config.Auto{},
			Raw:            map[string]any{"batch_size": 32, "lang_char": "None"},
		},
		Character: "あいう",
		ModelDir:  "saved_models/ja_custom",
	}
}

func requireCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func TestMarshal(t *testing.T) {
	doc, err := Marshal(testResolved())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(doc, &got))

	assert.Equal(t, "あいう", got["character"])
	assert.Equal(t, "ja_custom", got["experiment_name"])
	assert.Equal(t, "train", got["select_data"])
	assert.Equal(t, 32, got["batch_size"])
}

func TestExecTrainerWritesConfigToStdin(t *testing.T) {
	requireCommand(t, "cat")

	var stdout bytes.Buffer
	tr := &ExecTrainer{Command: []string{"cat"}, Stdout: &stdout}

	require.NoError(t, tr.Train(context.Background(), testResolved(), false))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, "あいう", got["character"])
}

func TestExecTrainerAMPFlag(t *testing.T) {
	requireCommand(t, "echo")

	tests := []struct {
		name string
		amp  bool
		want string
	}{
		{name: "amp on", amp: true, want: "train.py --amp"},
		{name: "amp off", amp: false, want: "train.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			tr := &ExecTrainer{Command: []string{"echo", "train.py"}, Stdout: &stdout}

			require.NoError(t, tr.Train(context.Background(), testResolved(), tt.amp))
			assert.Equal(t, tt.want, strings.TrimSpace(stdout.String()))
		})
	}
}

func TestExecTrainerFailure(t *testing.T) {
	requireCommand(t, "false")

	tr := &ExecTrainer{Command: []string{"false"}}
	err := tr.Train(context.Background(), testResolved(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trainer false failed")
}

func TestExecTrainerNoCommand(t *testing.T) {
	tr := NewExecTrainer(nil)
	assert.Error(t, tr.Train(context.Background(), testResolved(), false))
}

func TestExecTrainerNilConfig(t *testing.T) {
	tr := NewExecTrainer([]string{"true"})
	assert.Error(t, tr.Train(context.Background(), nil, false))
}
