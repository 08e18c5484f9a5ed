package slog

import (
	"log/slog"
	"time"

	"github.com/akarwowski/frontpage"
)

// Ensure LoggingExtractor implements frontpage.HeadlineExtractor.
var _ frontpage.HeadlineExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a HeadlineExtractor with debug logging.
type LoggingExtractor struct {
	next   frontpage.HeadlineExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next frontpage.HeadlineExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, limit int) (headlines []string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("headline extraction",
			"limit", limit,
			"count", len(headlines),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, limit)
}
