package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/kspala/recipeclip"
	main "github.com/kspala/recipeclip/cmd/recipeclip"
	"github.com/kspala/recipeclip/importer"
	"github.com/kspala/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRecipePage = `<html><head><script type="application/ld+json">
{"@context":"https://schema.org","@type":"Recipe","name":"Minestrone"}
</script></head><body></body></html>`

func testImporter(recipes recipeclip.RecipeService) *importer.Importer {
	return &importer.Importer{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return testRecipePage, nil
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(_ string) (*recipeclip.Recipe, error) {
				r := recipeclip.NewRecipe()
				r.Name = "Minestrone"
				return r, nil
			},
		},
		Recipes:     recipes,
		Concurrency: 2,
	}
}

func TestImportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("imports a single URL", func(t *testing.T) {
		t.Parallel()

		var saved *recipeclip.Recipe
		recipes := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, recipe *recipeclip.Recipe) error {
				recipe.ID = "rec-123"
				saved = recipe
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Importer: testImporter(recipes),
		}

		cmd := &main.ImportCmd{URLs: []string{"https://example.com/recipes/minestrone"}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Minestrone", saved.Name)
		assert.Contains(t, stdout.String(), `Imported "Minestrone" (rec-123)`)
	})

	t.Run("imports a batch with summary", func(t *testing.T) {
		t.Parallel()

		recipes := &mock.RecipeService{
			CreateRecipeFn: func(_ context.Context, _ *recipeclip.Recipe) error {
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Importer: testImporter(recipes),
		}

		cmd := &main.ImportCmd{URLs: []string{
			"https://example.com/recipes/1",
			"https://example.com/recipes/2",
		}}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Importing 2 recipes")
		assert.Contains(t, output, "Imported 2 recipes (0 skipped, 0 failed)")
	})

	t.Run("rejects bad URLs before fetching anything", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Importer: testImporter(nil),
		}

		cmd := &main.ImportCmd{URLs: []string{
			"https://example.com/recipes/1",
			"ftp://example.com/recipes/2",
		}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, recipeclip.EBADURL, recipeclip.ErrorCode(err))
	})
}
