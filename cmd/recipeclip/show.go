package main

import (
	"fmt"

	"github.com/kspala/recipeclip"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s\n", recipe.Name)
	if recipe.Description != "" {
		fmt.Fprintf(deps.Stdout, "%s\n", recipe.Description)
	}
	if recipe.Category != "" {
		fmt.Fprintf(deps.Stdout, "Category: %s\n", recipe.Category)
	}
	if len(recipe.Keywords) > 0 {
		fmt.Fprintf(deps.Stdout, "Keywords: %s\n", recipe.KeywordsText())
	}
	if recipe.Yield > 0 {
		fmt.Fprintf(deps.Stdout, "Servings: %d\n", recipe.Yield)
	}

	printDuration(deps, "Prep", recipe.PrepTime)
	printDuration(deps, "Cook", recipe.CookTime)
	printDuration(deps, "Total", recipe.TotalTime)

	if len(recipe.Ingredients) > 0 {
		fmt.Fprintln(deps.Stdout, "\nIngredients:")
		for _, ing := range recipe.Ingredients {
			fmt.Fprintf(deps.Stdout, "  - %s\n", ing)
		}
	}

	if len(recipe.Tools) > 0 {
		fmt.Fprintln(deps.Stdout, "\nTools:")
		for _, tool := range recipe.Tools {
			fmt.Fprintf(deps.Stdout, "  - %s\n", tool)
		}
	}

	if len(recipe.Instructions) > 0 {
		fmt.Fprintln(deps.Stdout, "\nInstructions:")
		for i, step := range recipe.Instructions {
			fmt.Fprintf(deps.Stdout, "  %d. %s\n", i+1, step)
		}
	}

	if len(recipe.Nutrition) > 0 {
		fmt.Fprintln(deps.Stdout, "\nNutrition:")
		for k, v := range recipe.Nutrition {
			fmt.Fprintf(deps.Stdout, "  %s: %s\n", k, v)
		}
	}

	if recipe.SourceURL != "" {
		fmt.Fprintf(deps.Stdout, "\nSource: %s\n", recipe.SourceURL)
	}

	return nil
}

// printDuration prints a labeled duration line unless the duration is zero.
func printDuration(deps *Dependencies, label, pt string) {
	d := recipeclip.DurationFromPT(pt)
	if d.IsZero() {
		return
	}
	fmt.Fprintf(deps.Stdout, "%s: %s\n", label, d.DisplayText())
}
