package mock

import (
	"context"

	"github.com/akarwowski/frontpage"
)

var _ frontpage.RobotsPolicy = (*RobotsPolicy)(nil)

// RobotsPolicy is a mock implementation of frontpage.RobotsPolicy.
type RobotsPolicy struct {
	CheckFn func(ctx context.Context, pageURL string) frontpage.RobotsVerdict
}

func (p *RobotsPolicy) Check(ctx context.Context, pageURL string) frontpage.RobotsVerdict {
	return p.CheckFn(ctx, pageURL)
}
