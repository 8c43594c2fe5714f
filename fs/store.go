// Package fs provides file-based export of the recipe collection.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/kspala/recipeclip"
)

// Ensure Store implements recipeclip.RecipeStore at compile time.
var _ recipeclip.RecipeStore = (*Store)(nil)

// Store implements recipeclip.RecipeStore with atomic update semantics.
// Recipes are saved as JSON files in a temporary directory, then moved
// atomically into place on Commit.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes a recipe as a pretty-printed JSON file in the pending
// export directory.
func (s *Store) Save(ctx context.Context, recipe *recipeclip.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	payload, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), RecipeFileName(recipe))
	return os.WriteFile(fullPath, payload, 0644)
}

// Commit atomically replaces the export directory with the pending one.
func (s *Store) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards the pending export directory.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// RecipeFileName derives a stable file name from the recipe's name and ID.
// Example: "Winter Minestrone!" with ID "3f2a..." → "winter-minestrone-3f2a0c1d.json"
func RecipeFileName(recipe *recipeclip.Recipe) string {
	slug := slugify(recipe.Name)
	id := recipe.ID
	if len(id) > 8 {
		id = id[:8]
	}
	if id == "" {
		return slug + ".json"
	}
	return slug + "-" + id + ".json"
}

// slugify lowercases a name and replaces runs of non-alphanumerics with a
// single hyphen.
func slugify(name string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if !prevHyphen && sb.Len() > 0 {
			sb.WriteRune('-')
			prevHyphen = true
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
