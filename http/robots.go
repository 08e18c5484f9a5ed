package http

import (
	"context"
	"fmt"
	"net/url"

	"github.com/akarwowski/frontpage"
	"github.com/temoto/robotstxt"
)

// Ensure RobotsAdvisor implements frontpage.RobotsPolicy.
var _ frontpage.RobotsPolicy = (*RobotsAdvisor)(nil)

// RobotsAdvisor checks a page URL against the site's robots.txt wildcard
// group. The check is advisory: any failure to fetch or parse the robots
// document yields an allowed verdict with an explanatory message.
type RobotsAdvisor struct {
	fetcher frontpage.Fetcher
}

// NewRobotsAdvisor creates a RobotsAdvisor that retrieves robots.txt
// through the given fetcher, so the robots request shares the fetcher's
// headers, timeout, and politeness limiter.
func NewRobotsAdvisor(fetcher frontpage.Fetcher) *RobotsAdvisor {
	return &RobotsAdvisor{fetcher: fetcher}
}

// Check tests the page path against the wildcard user-agent rules of the
// host's robots.txt.
func (a *RobotsAdvisor) Check(ctx context.Context, pageURL string) frontpage.RobotsVerdict {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return failOpen(fmt.Sprintf("could not resolve robots.txt location for %q", pageURL))
	}

	robotsURL := parsed.Scheme + "://" + parsed.Host + "/robots.txt"

	body, err := a.fetcher.Fetch(ctx, robotsURL)
	if err != nil {
		return failOpen(fmt.Sprintf("could not verify robots.txt: %s", frontpage.ErrorMessage(err)))
	}

	data, err := robotstxt.FromString(body)
	if err != nil {
		return failOpen(fmt.Sprintf("could not parse robots.txt: %v", err))
	}

	group := data.FindGroup("*")
	if group == nil || group.Test(parsed.Path) {
		return frontpage.RobotsVerdict{
			Allowed: true,
			Message: fmt.Sprintf("path %q is allowed by robots.txt", parsed.Path),
		}
	}

	return frontpage.RobotsVerdict{
		Allowed: false,
		Message: fmt.Sprintf("path %q is disallowed by robots.txt", parsed.Path),
	}
}

// failOpen builds the advisory verdict used when the robots document
// cannot be checked at all.
func failOpen(reason string) frontpage.RobotsVerdict {
	return frontpage.RobotsVerdict{
		Allowed: true,
		Message: reason + " (proceeding cautiously)",
	}
}
