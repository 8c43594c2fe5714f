package slog

import (
	"log/slog"
	"time"

	"github.com/kspala/recipeclip"
)

// Ensure LoggingExtractor implements recipeclip.Extractor.
var _ recipeclip.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of each
// extraction.
type LoggingExtractor struct {
	next   recipeclip.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next recipeclip.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*recipeclip.Recipe, error) {
	begin := time.Now()
	recipe, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("extract",
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	e.logger.Info("extract",
		"recipe", recipe.Name,
		"ingredients", len(recipe.Ingredients),
		"duration", time.Since(begin),
	)
	return recipe, nil
}
