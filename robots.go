package frontpage

import "context"

// RobotsVerdict is the outcome of an advisory robots.txt check.
type RobotsVerdict struct {
	Allowed bool
	Message string
}

// RobotsPolicy checks whether fetching a page is permitted by the site's
// robots exclusion rules. The check is advisory, not enforced: when the
// robots document itself cannot be fetched or parsed, implementations
// fail open and report the page as allowed with an explanatory message.
type RobotsPolicy interface {
	Check(ctx context.Context, pageURL string) RobotsVerdict
}
