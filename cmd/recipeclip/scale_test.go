package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/kspala/recipeclip"
	main "github.com/kspala/recipeclip/cmd/recipeclip"
	"github.com/kspala/recipeclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleCmd_Run(t *testing.T) {
	t.Parallel()

	recipes := &mock.RecipeService{
		FindRecipeByIDFn: func(_ context.Context, id string) (*recipeclip.Recipe, error) {
			return &recipeclip.Recipe{
				ID:   id,
				Name: "Minestrone",
				Ingredients: []string{
					"2 cups vegetable broth",
					"1/2 cup diced carrots",
					"salt to taste",
				},
			}, nil
		},
	}

	t.Run("scales ingredient quantities", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Recipes: recipes,
		}

		cmd := &main.ScaleCmd{ID: "rec-123", Factor: 2, Locale: "en"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Minestrone (x2)")
		assert.Contains(t, output, "- 4 cups vegetable broth")
		assert.Contains(t, output, "- 1 cup diced carrots")
		// Lines without a leading quantity are flagged, not scaled
		assert.Contains(t, output, "* salt to taste")
	})

	t.Run("formats quantities for the requested locale", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Recipes: recipes,
		}

		cmd := &main.ScaleCmd{ID: "rec-123", Factor: 0.25, Locale: "de"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		// German locale uses a decimal comma
		assert.Contains(t, stdout.String(), "0,5 cups vegetable broth")
	})

	t.Run("rejects non-positive factors", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ScaleCmd{ID: "rec-123", Factor: 0, Locale: "en"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})

	t.Run("rejects unknown locales", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.ScaleCmd{ID: "rec-123", Factor: 2, Locale: "not-a-locale!!"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})
}
