package main

import (
	"fmt"

	"github.com/kspala/recipeclip"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := recipeclip.RecipeFilter{
		Offset: c.Offset,
		Limit:  c.Limit,
	}
	if c.Name != "" {
		filter.Name = &c.Name
	}
	if c.Category != "" {
		filter.Category = &c.Category
	}

	recipes, err := deps.Recipes.FindRecipes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(recipes) == 0 {
		fmt.Fprintln(deps.Stdout, "No recipes found. Use 'recipeclip import' to add one.")
		return nil
	}

	for _, r := range recipes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.Name, r.SourceURL)
	}

	return nil
}
