package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/kspala/recipeclip"
	rchttp "github.com/kspala/recipeclip/http"
	"github.com/kspala/recipeclip/importer"
	"github.com/kspala/recipeclip/rod"
	rcslog "github.com/kspala/recipeclip/slog"
	"github.com/kspala/recipeclip/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	RecipeService recipeclip.RecipeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("recipeclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'recipeclip --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// The convert command is pure arithmetic and needs no database.
	if cmd == "convert" {
		return kongCtx.Run(deps)
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RECIPECLIP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecipeService = sqlite.NewRecipeService(m.DB)
	deps.DB = m.DB
	deps.Recipes = m.RecipeService

	if cmd == "import" {
		logLevel := slog.LevelWarn
		if cli.Import.Verbose {
			logLevel = slog.LevelInfo
		}
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

		var fetcher recipeclip.Fetcher
		if cli.Import.Plain {
			fetcher = rchttp.NewFetcher()
		} else {
			browserFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --plain for a plain HTTP fetch")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browserFetcher
		}
		defer fetcher.Close()

		recipes := m.RecipeService
		if cli.Import.DryRun {
			recipes = nil
		}

		deps.Importer = &importer.Importer{
			Fetcher:     rcslog.NewLoggingFetcher(fetcher, logger),
			Extractor:   rcslog.NewLoggingExtractor(newExtractor(), logger),
			Recipes:     recipes,
			RateLimiter: importer.NewDomainLimiter(cli.Import.Rate),
			Concurrency: cli.Import.Concurrency,
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("RECIPECLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "recipeclip.db"
	}
	dir := filepath.Join(home, ".recipeclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "recipeclip.db")
}
