package main

import (
	"fmt"

	"github.com/kspala/recipeclip"
	"golang.org/x/text/language"
)

// Run executes the scale command.
func (c *ScaleCmd) Run(deps *Dependencies) error {
	if c.Factor <= 0 {
		fmt.Fprintf(deps.Stderr, "error: factor must be positive\n")
		return recipeclip.Errorf(recipeclip.EINVALID, "factor must be positive, got %g", c.Factor)
	}

	tag, err := language.Parse(c.Locale)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: unknown locale %q\n", c.Locale)
		return recipeclip.Errorf(recipeclip.EINVALID, "unknown locale %q", c.Locale)
	}

	recipe, err := deps.Recipes.FindRecipeByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	if len(recipe.Ingredients) == 0 {
		fmt.Fprintf(deps.Stdout, "%q has no ingredients to scale\n", recipe.Name)
		return nil
	}

	scaler := recipeclip.NewScaler(tag)
	scaled, unscaled := scaler.ScaleAll(recipe.Ingredients, c.Factor)

	fmt.Fprintf(deps.Stdout, "%s (x%g)\n", recipe.Name, c.Factor)
	for i, line := range scaled {
		if unscaled[i] {
			// No leading quantity to rescale; flag so cooks adjust by eye.
			fmt.Fprintf(deps.Stdout, "  * %s\n", line)
			continue
		}
		fmt.Fprintf(deps.Stdout, "  - %s\n", line)
	}

	return nil
}
