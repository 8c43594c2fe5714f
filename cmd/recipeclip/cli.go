package main

import (
	"context"
	"io"

	"github.com/kspala/recipeclip"
	"github.com/kspala/recipeclip/importer"
	"github.com/kspala/recipeclip/jsonld"
	"github.com/kspala/recipeclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Recipes  recipeclip.RecipeService
	Importer *importer.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Import  ImportCmd  `cmd:"" help:"Import recipes from URLs"`
	List    ListCmd    `cmd:"" help:"List saved recipes"`
	Show    ShowCmd    `cmd:"" help:"Show a saved recipe"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved recipe"`
	Scale   ScaleCmd   `cmd:"" help:"Scale a recipe's ingredient quantities"`
	Convert ConvertCmd `cmd:"" help:"Convert between measurement units"`
	Export  ExportCmd  `cmd:"" help:"Export saved recipes as JSON files"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URLs        []string `arg:"" help:"Recipe page URLs"`
	DryRun      bool     `short:"n" help:"Extract without saving"`
	Plain       bool     `help:"Fetch over plain HTTP instead of a headless browser"`
	Rate        float64  `short:"r" default:"1.0" help:"Requests per second per domain"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Verbose     bool     `short:"v" help:"Log each fetch and extraction"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Name     string `help:"Filter by recipe name"`
	Category string `help:"Filter by category"`
	Limit    int    `default:"50" help:"Maximum number of recipes to list"`
	Offset   int    `help:"Number of recipes to skip"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Recipe ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Recipe ID"`
	Force bool   `help:"Confirm deletion"`
}

// ScaleCmd is the "scale" subcommand.
type ScaleCmd struct {
	ID     string  `arg:"" help:"Recipe ID"`
	Factor float64 `arg:"" help:"Scaling factor, e.g. 0.5 or 2"`
	Locale string  `default:"en" help:"Locale for quantity formatting"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Value float64 `arg:"" help:"Quantity to convert"`
	From  string  `arg:"" help:"Source unit, e.g. cup"`
	To    string  `arg:"" help:"Target unit, e.g. ml"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Directory to export into"`
}

// newExtractor returns the extractor used for imports.
func newExtractor() recipeclip.Extractor {
	return jsonld.NewExtractor()
}
