package main

import (
	"fmt"

	"github.com/kspala/recipeclip"
	"github.com/kspala/recipeclip/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	// Validate all URLs up front so one typo doesn't waste a batch.
	for _, rawURL := range c.URLs {
		if _, err := importer.ValidateURL(rawURL); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
			return err
		}
	}

	if len(c.URLs) == 1 {
		recipe, err := deps.Importer.Import(deps.Ctx, c.URLs[0])
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
			return err
		}
		if c.DryRun {
			fmt.Fprintf(deps.Stdout, "Extracted %q (not saved)\n", recipe.Name)
		} else {
			fmt.Fprintf(deps.Stdout, "Imported %q (%s)\n", recipe.Name, recipe.ID)
		}
		return nil
	}

	progress := func(event importer.ProgressEvent) {
		switch event.Type {
		case importer.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Importing %d recipes\n", event.Total)
		case importer.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", event.Completed, event.Total, event.URL)
		case importer.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  duplicate %s\n", event.URL)
		case importer.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, recipeclip.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Importer.ImportAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recipeclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d recipes (%d skipped, %d failed)\n",
		result.Imported, result.Skipped, result.Failed)
	return nil
}
