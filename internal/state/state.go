package state

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager tracks which date has already been ingested, so a rerun on the
// same day does not append duplicate history rows.
type Manager interface {
	GetLastIngestedDate() (string, error)
	SetLastIngestedDate(date string) error
}

type fileStateManager struct {
	path string
}

// NewFileStateManager returns a Manager persisting the last ingested date
// in a single-line file at path.
func NewFileStateManager(path string) Manager {
	return &fileStateManager{path: path}
}

func (s *fileStateManager) GetLastIngestedDate() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // no run recorded yet
		}
		return "", fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *fileStateManager) SetLastIngestedDate(date string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(date + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", s.path, err)
	}
	return nil
}
