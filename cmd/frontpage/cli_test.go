package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/akarwowski/frontpage"
	"github.com/akarwowski/frontpage/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *Dependencies {
	return &Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Robots: &mock.RobotsPolicy{
			CheckFn: func(ctx context.Context, pageURL string) frontpage.RobotsVerdict {
				return frontpage.RobotsVerdict{Allowed: true, Message: "path is allowed by robots.txt"}
			},
		},
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		},
		Extractor: &mock.HeadlineExtractor{
			ExtractFn: func(html string, limit int) ([]string, error) {
				return []string{"India wins the match today in style"}, nil
			},
		},
	}
}

func sportsGenre(t *testing.T) *frontpage.Genre {
	t.Helper()

	genre, err := frontpage.GenreByKey("sports")
	require.NoError(t, err)
	return genre
}

func TestTopCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints headlines and returns nil on success", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)

		cmd := &TopCmd{Genre: sportsGenre(t), Limit: 10}
		err := cmd.Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Times of India - Sports (Top 1 Headlines)")
		assert.Contains(t, output, " 1. India wins the match today in style")
	})

	t.Run("aborts when robots.txt disallows the path", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		fetchCalled := false
		deps.Robots = &mock.RobotsPolicy{
			CheckFn: func(ctx context.Context, pageURL string) frontpage.RobotsVerdict {
				return frontpage.RobotsVerdict{Allowed: false, Message: `path "/sports/" is disallowed by robots.txt`}
			},
		}
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				fetchCalled = true
				return "", nil
			},
		}

		cmd := &TopCmd{Genre: sportsGenre(t), Limit: 10}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.False(t, fetchCalled)
		assert.Contains(t, stdout.String(), "disallowed by robots.txt")
	})

	t.Run("reports fetch failure", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", frontpage.Errorf(frontpage.ETIMEOUT, "request to %s timed out after 10s", url)
			},
		}

		cmd := &TopCmd{Genre: sportsGenre(t), Limit: 10}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, frontpage.ETIMEOUT, frontpage.ErrorCode(err))
		assert.Contains(t, stderr.String(), "timed out")
	})

	t.Run("treats empty extraction as ENOTFOUND with a warning", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		deps.Extractor = &mock.HeadlineExtractor{
			ExtractFn: func(html string, limit int) ([]string, error) {
				return nil, nil
			},
		}

		cmd := &TopCmd{Genre: sportsGenre(t), Limit: 10}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, frontpage.ENOTFOUND, frontpage.ErrorCode(err))
		assert.Contains(t, stdout.String(), "No headlines found")
	})

	t.Run("passes the configured limit to the extractor", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		deps := testDeps(&stdout, &stderr)
		var gotLimit int
		deps.Extractor = &mock.HeadlineExtractor{
			ExtractFn: func(html string, limit int) ([]string, error) {
				gotLimit = limit
				return []string{"India wins the match today in style"}, nil
			},
		}

		cmd := &TopCmd{Genre: sportsGenre(t), Limit: 5}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 5, gotLimit)
	})
}
