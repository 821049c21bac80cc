package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateLabelFile writes rows as a CSV label file at path, with a
// "filename,words" header when header is true
func CreateLabelFile(t *testing.T, path string, header bool, rows ...[]string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for label file: %v", err)
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create label file %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header {
		if err := w.Write([]string{"filename", "words"}); err != nil {
			t.Fatalf("Failed to write header: %v", err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("Failed to write label rows: %v", err)
	}
}

// CreateDataset writes <root>/<name>/labels.csv with one row per
// transcription and returns the label file path
func CreateDataset(t *testing.T, root, name string, transcriptions ...string) string {
	t.Helper()

	rows := make([][]string, len(transcriptions))
	for i, text := range transcriptions {
		rows[i] = []string{filepath.Join(name, "img"+string(rune('a'+i%26))+".png"), text}
	}

	path := filepath.Join(root, name, "labels.csv")
	CreateLabelFile(t, path, true, rows...)
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertDirExists checks that path exists and is a directory
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("Expected directory to exist: %s (%v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory", path)
	}
}
