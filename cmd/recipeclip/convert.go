package main

import (
	"fmt"
	"strconv"

	"github.com/kspala/recipeclip"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	from, ok := recipeclip.ParseUnit(c.From)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown unit %q\n", c.From)
		return recipeclip.Errorf(recipeclip.EINVALID, "unknown unit %q", c.From)
	}

	to, ok := recipeclip.ParseUnit(c.To)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: unknown unit %q\n", c.To)
		return recipeclip.Errorf(recipeclip.EINVALID, "unknown unit %q", c.To)
	}

	converted, ok := recipeclip.Convert(c.Value, from, to)
	if !ok {
		fmt.Fprintf(deps.Stderr, "error: cannot convert %s to %s\n", from, to)
		return recipeclip.Errorf(recipeclip.EINVALID, "cannot convert %s to %s", from, to)
	}

	fmt.Fprintf(deps.Stdout, "%s %s = %s %s\n",
		formatAmount(c.Value), from, formatAmount(converted), to)
	return nil
}

// formatAmount trims trailing zeros while keeping kitchen-scale precision.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
