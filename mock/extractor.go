package mock

import "github.com/akarwowski/frontpage"

var _ frontpage.HeadlineExtractor = (*HeadlineExtractor)(nil)

// HeadlineExtractor is a mock implementation of frontpage.HeadlineExtractor.
type HeadlineExtractor struct {
	ExtractFn func(html string, limit int) ([]string, error)
}

func (e *HeadlineExtractor) Extract(html string, limit int) ([]string, error) {
	return e.ExtractFn(html, limit)
}
