// Package discovery locates recipe files on disk.
package discovery

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Defaults for the recipes layout.
const (
	DefaultRecipesDir = "recipes"
	DefaultPattern    = "**/*.soustack.json"
)

// Finder discovers recipe files with doublestar glob patterns.
// ** matches zero or more directories, so files directly under the
// recipes directory are found too.
type Finder struct{}

// NewFinder creates a new recipe finder.
func NewFinder() *Finder {
	return &Finder{}
}

// Find returns regular files under root/recipesDir matching pattern.
// Paths are joined with root and sorted component by component.
func (f *Finder) Find(ctx context.Context, root, recipesDir, pattern string) ([]string, error) {
	if root == "" {
		root = "."
	}
	if recipesDir == "" {
		recipesDir = DefaultRecipesDir
	}
	if pattern == "" {
		pattern = DefaultPattern
	}

	full := path.Join(filepath.ToSlash(recipesDir), pattern)
	if !doublestar.ValidatePattern(full) {
		return nil, fmt.Errorf("invalid recipe pattern %q", full)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Missing directories are not an error: Glob ignores fs.ErrNotExist
	matches, err := doublestar.Glob(os.DirFS(root), full, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", full, err)
	}

	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, filepath.Join(root, filepath.FromSlash(m)))
	}
	slices.SortFunc(paths, comparePaths)

	return paths, nil
}

// comparePaths orders paths component by component, so "base/x" sorts
// before "base.old/y" even though '.' < '/'.
func comparePaths(a, b string) int {
	return slices.Compare(
		strings.Split(filepath.ToSlash(a), "/"),
		strings.Split(filepath.ToSlash(b), "/"),
	)
}
