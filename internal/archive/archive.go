package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DirName is the archive directory inside the models root
const DirName = "archive"

// ArchiveExperiment moves <modelsRoot>/<name> to
// <modelsRoot>/archive/<name>-<timestamp> and returns the new path
func ArchiveExperiment(modelsRoot, name string) (string, error) {
	if name == DirName {
		return "", fmt.Errorf("cannot archive the archive directory itself")
	}

	experimentDir := filepath.Join(modelsRoot, name)

	// Check if experiment directory exists
	if _, err := os.Stat(experimentDir); os.IsNotExist(err) {
		return "", fmt.Errorf("experiment directory does not exist: %s", experimentDir)
	}

	archiveDir := filepath.Join(modelsRoot, DirName)

	// Create archive directory if it doesn't exist
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, timestamp))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, timestamp))
	}

	// Rename experiment directory to archive
	if err := os.Rename(experimentDir, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive experiment directory: %w", err)
	}

	return archivePath, nil
}
