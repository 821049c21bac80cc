package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestArchiveExperiment(t *testing.T) {
	// Create temp models root
	modelsRoot := t.TempDir()

	// Create experiment directory with some test files
	experimentDir := filepath.Join(modelsRoot, "ja_custom")
	if err := os.MkdirAll(experimentDir, 0755); err != nil {
		t.Fatalf("Failed to create experiment directory: %v", err)
	}

	testFile := filepath.Join(experimentDir, "best_accuracy.pth")
	if err := os.WriteFile(testFile, []byte("weights"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	// Create a subdirectory with a file
	subDir := filepath.Join(experimentDir, "logs")
	if err := os.MkdirAll(subDir, 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}
	subFile := filepath.Join(subDir, "log_train.txt")
	if err := os.WriteFile(subFile, []byte("iter 1"), 0644); err != nil {
		t.Fatalf("Failed to create sub file: %v", err)
	}

	archivedPath, err := ArchiveExperiment(modelsRoot, "ja_custom")
	if err != nil {
		t.Fatalf("ArchiveExperiment failed: %v", err)
	}

	// Check that experiment directory no longer exists
	if _, err := os.Stat(experimentDir); !os.IsNotExist(err) {
		t.Error("Experiment directory still exists after archiving")
	}

	archiveDir := filepath.Join(modelsRoot, "archive")
	if filepath.Dir(archivedPath) != archiveDir {
		t.Errorf("Archived to %s, expected a path inside %s", archivedPath, archiveDir)
	}

	entries, err := os.ReadDir(archiveDir)
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry in archive directory, got %d", len(entries))
	}

	// Verify the archived directory name is ja_custom-YYYYMMDD-HHMMSS
	archivedName := entries[0].Name()
	if !strings.HasPrefix(archivedName, "ja_custom-") {
		t.Errorf("Archived directory name doesn't start with 'ja_custom-': %s", archivedName)
	}
	parts := strings.Split(strings.TrimPrefix(archivedName, "ja_custom-"), "-")
	if len(parts) != 2 || len(parts[0]) != 8 || len(parts[1]) != 6 {
		t.Errorf("Invalid archive name format: %s", archivedName)
	}

	if _, err := os.Stat(filepath.Join(archivedPath, "best_accuracy.pth")); os.IsNotExist(err) {
		t.Error("Model file not found in archive")
	}
	if _, err := os.Stat(filepath.Join(archivedPath, "logs", "log_train.txt")); os.IsNotExist(err) {
		t.Error("Log file not found in archive")
	}
}

func TestArchiveExperiment_NonExistentDirectory(t *testing.T) {
	_, err := ArchiveExperiment(t.TempDir(), "nonexistent")
	if err == nil {
		t.Fatal("Expected error for non-existent directory")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveExperiment_ArchiveDirItself(t *testing.T) {
	modelsRoot := t.TempDir()
	if err := os.MkdirAll(filepath.Join(modelsRoot, "archive"), 0755); err != nil {
		t.Fatalf("Failed to create archive directory: %v", err)
	}

	if _, err := ArchiveExperiment(modelsRoot, "archive"); err == nil {
		t.Error("Expected error when archiving the archive directory")
	}
}

func TestArchiveExperiment_MultipleArchives(t *testing.T) {
	modelsRoot := t.TempDir()

	// Archive twice to ensure unique names
	for i := 0; i < 2; i++ {
		experimentDir := filepath.Join(modelsRoot, "exp")
		if err := os.MkdirAll(experimentDir, 0755); err != nil {
			t.Fatalf("Failed to create experiment directory: %v", err)
		}

		testFile := filepath.Join(experimentDir, "test.txt")
		content := []byte("test content " + string(rune('0'+i)))
		if err := os.WriteFile(testFile, content, 0644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}

		// Small delay to ensure different timestamps
		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if _, err := ArchiveExperiment(modelsRoot, "exp"); err != nil {
			t.Fatalf("ArchiveExperiment failed on iteration %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(modelsRoot, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}
