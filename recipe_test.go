package recipeclip_test

import (
	"testing"

	"github.com/kspala/recipeclip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecipe(t *testing.T) {
	t.Parallel()

	r := recipeclip.NewRecipe()

	assert.Equal(t, recipeclip.DefaultRecipeName, r.Name)
	assert.NotNil(t, r.Keywords)
	assert.NotNil(t, r.Ingredients)
	assert.NotNil(t, r.Instructions)
	assert.NotNil(t, r.Tools)
	assert.NotNil(t, r.Nutrition)
	assert.Zero(t, r.Yield)
}

func TestRecipe_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid recipe passes", func(t *testing.T) {
		t.Parallel()

		r := recipeclip.NewRecipe()
		r.Name = "Soup"

		require.NoError(t, r.Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		t.Parallel()

		r := recipeclip.NewRecipe()
		r.Name = ""

		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})

	t.Run("negative yield fails", func(t *testing.T) {
		t.Parallel()

		r := recipeclip.NewRecipe()
		r.Yield = -1

		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, recipeclip.EINVALID, recipeclip.ErrorCode(err))
	})
}

func TestRecipe_KeywordsText(t *testing.T) {
	t.Parallel()

	r := recipeclip.NewRecipe()
	assert.Empty(t, r.KeywordsText())

	r.Keywords = []string{"vegan", "soup", "winter"}
	assert.Equal(t, "vegan, soup, winter", r.KeywordsText())
}
