package frontpage

import (
	"regexp"
	"strings"
)

// Headline length bounds, applied after normalization. Anything shorter is
// a fragment or label; anything longer is a spliced teaser block.
const (
	MinHeadlineLen = 15
	MaxHeadlineLen = 300
)

// MORE-splice fragment bounds: when a harvested string contains "MORE"
// concatenation artifacts, only fragments strictly inside these bounds
// survive the split.
const (
	minFragmentLen = 10
	maxFragmentLen = 250
)

var (
	dateSuffixRe    = regexp.MustCompile(`/\s*[A-Za-z]+\s+\d{1,2},\s*\d{4}`)
	genrePrefixRe   = regexp.MustCompile(`^[A-Za-z\s]+/\s*`)
	moreTokenRe     = regexp.MustCompile(`(?i)MORE`)
	newsSuffixRe    = regexp.MustCompile(`(?i)\s+NEWS\s*$`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// CleanHeadline normalizes raw text harvested from a headline node.
// It strips slash-dated suffixes ("/ Dec 16, 2025"), leading category
// prefixes ("Sports / "), "MORE" splice artifacts, and trailing "NEWS"
// labels, then collapses whitespace runs. The transform is idempotent:
// cleaning an already-clean headline returns it unchanged.
func CleanHeadline(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return text
	}

	text = strings.TrimSpace(dateSuffixRe.ReplaceAllString(text, ""))
	text = strings.TrimSpace(genrePrefixRe.ReplaceAllString(text, ""))

	// Category pages splice teasers together as "teaser MORE next teaser".
	// Split on the marker and keep the longest plausible fragment, ties
	// broken by first occurrence.
	if strings.Contains(strings.ToUpper(text), "MORE") {
		var best string
		for _, part := range strings.Split(moreTokenRe.ReplaceAllString(text, "|"), "|") {
			part = strings.TrimSpace(part)
			if len(part) <= minFragmentLen || len(part) >= maxFragmentLen {
				continue
			}
			if len(part) > len(best) {
				best = part
			}
		}
		if best != "" {
			text = best
		}
	}

	text = strings.TrimSpace(newsSuffixRe.ReplaceAllString(text, ""))
	text = strings.TrimSpace(whitespaceRunRe.ReplaceAllString(text, " "))

	return text
}

// ValidHeadlineLength reports whether a normalized headline falls within
// the accepted length bounds.
func ValidHeadlineLength(text string) bool {
	return len(text) >= MinHeadlineLen && len(text) <= MaxHeadlineLen
}
