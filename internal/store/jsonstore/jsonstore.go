package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"undone/internal/todo"
)

// JSON-backed session storage. Single file, human-readable, portable.
// No locking; fine for a local single-user tool.

const (
	dataFileName = "todos.json"
	dataDirName  = ".undone"

	// EnvFile overrides the data file location.
	EnvFile = "UNDONE_FILE"
)

func dataPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvFile)); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, dataDirName, dataFileName), nil
}

// Load reads the saved list. A missing file is an empty list, not an error.
func Load() ([]todo.Todo, error) {
	p, err := dataPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []todo.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []todo.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

// Save writes the list, creating the data directory on first use.
func Save(items []todo.Todo) error {
	p, err := dataPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
