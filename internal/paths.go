package internal

import (
	"fmt"
	"os"
	"path/filepath"
)

// ProjectsDirError reports a missing or unusable projects directory
type ProjectsDirError struct {
	Path string
	Err  error
}

func (e *ProjectsDirError) Error() string {
	return fmt.Sprintf("Claude Code directory not found at %s", e.Path)
}

func (e *ProjectsDirError) Unwrap() error {
	return e.Err
}

// ProjectsDir returns the Claude Code projects directory (~/.claude/projects)
func ProjectsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "projects"), nil
}

// CheckProjectsDir verifies that the projects directory exists. A missing
// directory is fatal at startup; everything below it is best-effort.
func CheckProjectsDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return &ProjectsDirError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return &ProjectsDirError{Path: dir}
	}
	return nil
}
