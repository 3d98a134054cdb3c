// Package config provides infrastructure for loading recipe files.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultMaxRecipeSize bounds how much of a recipe file is read (4MB).
const DefaultMaxRecipeSize = 4 * 1024 * 1024

// RecipeLoader reads recipe files from disk.
type RecipeLoader struct {
	maxSize int64
}

// NewRecipeLoader creates a new recipe loader.
func NewRecipeLoader() *RecipeLoader {
	return &RecipeLoader{maxSize: DefaultMaxRecipeSize}
}

// Load reads the raw contents of the recipe at path.
func (l *RecipeLoader) Load(path string) ([]byte, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a recipe from an io.Reader.
func (l *RecipeLoader) LoadFromReader(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe: %w", err)
	}
	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("recipe exceeds %d bytes", l.maxSize)
	}
	return data, nil
}
