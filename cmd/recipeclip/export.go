package main

import (
	"fmt"

	"github.com/kspala/recipeclip"
	"github.com/kspala/recipeclip/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, recipeclip.RecipeFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes to export.")
		return nil
	}

	store := fs.NewStore(c.Dir, "recipes")
	for _, r := range recipes {
		if err := store.Save(deps.Ctx, r); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
			return err
		}
	}

	if err := store.Commit(); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d recipes to %s/recipes\n", len(recipes), c.Dir)
	return nil
}
