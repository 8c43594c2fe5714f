package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/kspala/recipeclip"
)

// Compile-time interface verification.
var _ recipeclip.RecipeService = (*RecipeService)(nil)

// RecipeService implements recipeclip.RecipeService using SQLite.
type RecipeService struct {
	db *DB
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(db *DB) *RecipeService {
	return &RecipeService{db: db}
}

// hashRecipe computes an xxHash over the recipe's content fields and
// returns it as a hex string. The hash excludes ID, the hash itself and
// the import timestamp so a re-imported, unchanged recipe hashes equal.
func hashRecipe(recipe *recipeclip.Recipe) string {
	c := *recipe
	c.ID = ""
	c.ContentHash = ""
	c.ImportedAt = time.Time{}

	payload, _ := json.Marshal(&c)
	h := xxhash.Sum64(payload)

	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h)
	return hex.EncodeToString(b)
}

const recipeColumns = `id, name, category, keywords, description, date_created, date_modified,
	image_url, source_url, prep_time, cook_time, total_time, yield,
	ingredients, instructions, tools, nutrition, content_hash, imported_at`

// CreateRecipe creates a new recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *recipeclip.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return err
	}

	recipe.ID = uuid.New().String()
	recipe.ImportedAt = time.Now().UTC()
	recipe.ContentHash = hashRecipe(recipe)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO recipes (`+recipeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, recipe.ID, recipe.Name, recipe.Category, encodeStrings(recipe.Keywords),
		recipe.Description, recipe.DateCreated, recipe.DateModified,
		recipe.ImageURL, recipe.SourceURL,
		recipe.PrepTime, recipe.CookTime, recipe.TotalTime, recipe.Yield,
		encodeStrings(recipe.Ingredients), encodeStrings(recipe.Instructions),
		encodeStrings(recipe.Tools), encodeStringMap(recipe.Nutrition),
		recipe.ContentHash, recipe.ImportedAt.Format(time.RFC3339))

	return err
}

// FindRecipeByID retrieves a recipe by ID.
func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*recipeclip.Recipe, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+recipeColumns+`
		FROM recipes
		WHERE id = ?
	`, id)

	recipe, err := scanRecipe(row)
	if err == sql.ErrNoRows {
		return nil, recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
	}
	if err != nil {
		return nil, err
	}

	return recipe, nil
}

// FindRecipes retrieves recipes matching the filter, newest import first.
func (s *RecipeService) FindRecipes(ctx context.Context, filter recipeclip.RecipeFilter) ([]*recipeclip.Recipe, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recipeColumns + " FROM recipes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Category != nil {
		query.WriteString(" AND category = ?")
		args = append(args, *filter.Category)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY imported_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []*recipeclip.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}

	return recipes, rows.Err()
}

// UpdateRecipe applies an update to an existing recipe.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, upd recipeclip.RecipeUpdate) (*recipeclip.Recipe, error) {
	recipe, err := s.FindRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		recipe.Name = *upd.Name
	}
	if upd.Category != nil {
		recipe.Category = *upd.Category
	}
	if upd.Keywords != nil {
		recipe.Keywords = *upd.Keywords
	}
	if upd.Description != nil {
		recipe.Description = *upd.Description
	}
	if upd.PrepTime != nil {
		recipe.PrepTime = *upd.PrepTime
	}
	if upd.CookTime != nil {
		recipe.CookTime = *upd.CookTime
	}
	if upd.TotalTime != nil {
		recipe.TotalTime = *upd.TotalTime
	}
	if upd.Yield != nil {
		recipe.Yield = *upd.Yield
	}
	if upd.Ingredients != nil {
		recipe.Ingredients = *upd.Ingredients
	}
	if upd.Instructions != nil {
		recipe.Instructions = *upd.Instructions
	}
	if upd.Tools != nil {
		recipe.Tools = *upd.Tools
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	recipe.ContentHash = hashRecipe(recipe)

	_, err = s.db.ExecContext(ctx, `
		UPDATE recipes
		SET name = ?, category = ?, keywords = ?, description = ?,
			prep_time = ?, cook_time = ?, total_time = ?, yield = ?,
			ingredients = ?, instructions = ?, tools = ?, content_hash = ?
		WHERE id = ?
	`, recipe.Name, recipe.Category, encodeStrings(recipe.Keywords), recipe.Description,
		recipe.PrepTime, recipe.CookTime, recipe.TotalTime, recipe.Yield,
		encodeStrings(recipe.Ingredients), encodeStrings(recipe.Instructions),
		encodeStrings(recipe.Tools), recipe.ContentHash, id)

	if err != nil {
		return nil, err
	}

	return recipe, nil
}

// DeleteRecipe permanently removes a recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return recipeclip.Errorf(recipeclip.ENOTFOUND, "recipe not found")
	}

	return nil
}

// scanner abstracts sql.Row and sql.Rows for scanRecipe.
type scanner interface {
	Scan(dest ...any) error
}

// scanRecipe reads one recipe row, decoding the JSON-encoded columns.
func scanRecipe(row scanner) (*recipeclip.Recipe, error) {
	var recipe recipeclip.Recipe
	var keywords, ingredients, instructions, tools, nutrition, importedAt string

	err := row.Scan(&recipe.ID, &recipe.Name, &recipe.Category, &keywords,
		&recipe.Description, &recipe.DateCreated, &recipe.DateModified,
		&recipe.ImageURL, &recipe.SourceURL,
		&recipe.PrepTime, &recipe.CookTime, &recipe.TotalTime, &recipe.Yield,
		&ingredients, &instructions, &tools, &nutrition,
		&recipe.ContentHash, &importedAt)
	if err != nil {
		return nil, err
	}

	if recipe.Keywords, err = decodeStrings(keywords, "keywords"); err != nil {
		return nil, err
	}
	if recipe.Ingredients, err = decodeStrings(ingredients, "ingredients"); err != nil {
		return nil, err
	}
	if recipe.Instructions, err = decodeStrings(instructions, "instructions"); err != nil {
		return nil, err
	}
	if recipe.Tools, err = decodeStrings(tools, "tools"); err != nil {
		return nil, err
	}
	if recipe.Nutrition, err = decodeStringMap(nutrition, "nutrition"); err != nil {
		return nil, err
	}
	if recipe.ImportedAt, err = parseRFC3339(importedAt, "imported_at"); err != nil {
		return nil, err
	}

	return &recipe, nil
}
