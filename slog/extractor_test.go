package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/akarwowski/frontpage/mock"
	fpslog "github.com/akarwowski/frontpage/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.HeadlineExtractor{
			ExtractFn: func(html string, limit int) ([]string, error) {
				return []string{"India wins the match today", "Markets rally on policy news"}, nil
			},
		}

		extractor := fpslog.NewLoggingExtractor(inner, logger)
		headlines, err := extractor.Extract("<html></html>", 10)

		require.NoError(t, err)
		assert.Len(t, headlines, 2)
		output := buf.String()
		assert.Contains(t, output, "headline extraction")
		assert.Contains(t, output, "limit=10")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})
}
