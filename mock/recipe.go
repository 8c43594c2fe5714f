package mock

import (
	"context"

	"github.com/kspala/recipeclip"
)

var _ recipeclip.RecipeService = (*RecipeService)(nil)

// RecipeService is a mock implementation of recipeclip.RecipeService.
type RecipeService struct {
	CreateRecipeFn   func(ctx context.Context, recipe *recipeclip.Recipe) error
	FindRecipeByIDFn func(ctx context.Context, id string) (*recipeclip.Recipe, error)
	FindRecipesFn    func(ctx context.Context, filter recipeclip.RecipeFilter) ([]*recipeclip.Recipe, error)
	UpdateRecipeFn   func(ctx context.Context, id string, upd recipeclip.RecipeUpdate) (*recipeclip.Recipe, error)
	DeleteRecipeFn   func(ctx context.Context, id string) error
}

func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *recipeclip.Recipe) error {
	return s.CreateRecipeFn(ctx, recipe)
}

func (s *RecipeService) FindRecipeByID(ctx context.Context, id string) (*recipeclip.Recipe, error) {
	return s.FindRecipeByIDFn(ctx, id)
}

func (s *RecipeService) FindRecipes(ctx context.Context, filter recipeclip.RecipeFilter) ([]*recipeclip.Recipe, error) {
	return s.FindRecipesFn(ctx, filter)
}

func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, upd recipeclip.RecipeUpdate) (*recipeclip.Recipe, error) {
	return s.UpdateRecipeFn(ctx, id, upd)
}

func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	return s.DeleteRecipeFn(ctx, id)
}
