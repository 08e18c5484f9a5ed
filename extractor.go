package frontpage

// DefaultHeadlineLimit caps how many headlines one extraction returns.
const DefaultHeadlineLimit = 10

// Selector identifies a class of markup nodes likely to contain an article
// headline. Extractors walk an ordered list of selectors as a ranked
// fallback chain: the source site's markup is unstable across category
// pages, so earlier entries are higher-confidence article markers and
// later entries are progressively looser.
type Selector struct {
	Pattern string // CSS selector
	Source  string // short label for logging, e.g. "data-test"
}

// HeadlineSelectors is the ranked fallback chain, most reliable first.
// Appending a new selector requires no extractor changes.
var HeadlineSelectors = []Selector{
	{Pattern: "a[data-test='headline_link']", Source: "data-test"},
	{Pattern: "h2.eachStory a", Source: "each-story"},
	{Pattern: "h2 a[href*='articleshow']", Source: "h2-articleshow"},
	{Pattern: "a.news_link", Source: "news-link"},
	{Pattern: "a[href*='/articleshow/']", Source: "articleshow"},
	{Pattern: ".topstories a", Source: "topstories"},
	{Pattern: "a[itemprop='url']", Source: "itemprop"},
	{Pattern: ".list-item h2 a", Source: "list-item"},
}

// HeadlineExtractor extracts cleaned, deduplicated article headlines from
// raw HTML.
type HeadlineExtractor interface {
	// Extract returns up to limit headlines in selector-priority order
	// (document order within a selector). A document-level parse failure
	// returns EINVALID; per-selector and per-node failures are recovered
	// locally and never surface. A limit <= 0 yields an empty result.
	Extract(html string, limit int) ([]string, error)
}
