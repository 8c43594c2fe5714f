package recipeclip

import (
	"context"
	"strings"
	"time"
)

// DefaultRecipeName is used when a recipe's metadata carries no name.
const DefaultRecipeName = "New Recipe"

// Recipe represents a normalized recipe record.
//
// Sequence fields are never nil and string fields are never "absent":
// extraction defaults every field so downstream rendering and editing code
// does not have to null-check.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`

	// DateCreated and DateModified are opaque date strings passed through
	// from the source metadata.
	DateCreated  string `json:"dateCreated"`
	DateModified string `json:"dateModified"`

	ImageURL  string `json:"imageUrl"`
	SourceURL string `json:"sourceUrl"`

	// PrepTime, CookTime and TotalTime are PT-duration strings
	// (e.g. "PT1H30M00S") or empty when unspecified.
	PrepTime  string `json:"prepTime"`
	CookTime  string `json:"cookTime"`
	TotalTime string `json:"totalTime"`

	// Yield is the number of servings; 0 means unspecified.
	Yield int `json:"yield"`

	Ingredients  []string          `json:"ingredients"`
	Instructions []string          `json:"instructions"`
	Tools        []string          `json:"tools"`
	Nutrition    map[string]string `json:"nutrition"`

	// ContentHash and ImportedAt are set by the storage layer.
	ContentHash string    `json:"contentHash"`
	ImportedAt  time.Time `json:"importedAt"`
}

// NewRecipe returns a Recipe with every field at its documented default.
func NewRecipe() *Recipe {
	return &Recipe{
		Name:         DefaultRecipeName,
		Keywords:     []string{},
		Ingredients:  []string{},
		Instructions: []string{},
		Tools:        []string{},
		Nutrition:    map[string]string{},
	}
}

// KeywordsText returns the keywords joined into a single comma-separated
// string, the form used by recipe metadata and editing UIs. The ", "
// separator mirrors the trim-on-split in extraction, so a keywords string
// like "soup, winter" survives a split-and-rejoin unchanged.
func (r *Recipe) KeywordsText() string {
	return strings.Join(r.Keywords, ", ")
}

// Validate returns an error if the recipe contains invalid fields.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "recipe name required")
	}
	if r.Yield < 0 {
		return Errorf(EINVALID, "recipe yield cannot be negative")
	}
	return nil
}

// RecipeService represents a service for managing imported recipes.
type RecipeService interface {
	// CreateRecipe creates a new recipe.
	CreateRecipe(ctx context.Context, recipe *Recipe) error

	// FindRecipeByID retrieves a recipe by ID.
	// Returns ENOTFOUND if the recipe does not exist.
	FindRecipeByID(ctx context.Context, id string) (*Recipe, error)

	// FindRecipes retrieves recipes matching the filter.
	FindRecipes(ctx context.Context, filter RecipeFilter) ([]*Recipe, error)

	// UpdateRecipe applies an update to an existing recipe.
	// Returns ENOTFOUND if the recipe does not exist.
	UpdateRecipe(ctx context.Context, id string, upd RecipeUpdate) (*Recipe, error)

	// DeleteRecipe permanently removes a recipe.
	// Returns ENOTFOUND if the recipe does not exist.
	DeleteRecipe(ctx context.Context, id string) error
}

// RecipeFilter represents a filter for FindRecipes.
type RecipeFilter struct {
	ID        *string `json:"id"`
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecipeUpdate represents a partial update to a recipe. Nil fields are
// left unchanged.
type RecipeUpdate struct {
	Name         *string   `json:"name"`
	Category     *string   `json:"category"`
	Keywords     *[]string `json:"keywords"`
	Description  *string   `json:"description"`
	PrepTime     *string   `json:"prepTime"`
	CookTime     *string   `json:"cookTime"`
	TotalTime    *string   `json:"totalTime"`
	Yield        *int      `json:"yield"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Tools        *[]string `json:"tools"`
}
