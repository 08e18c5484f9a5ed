package frontpage

import "strings"

// sectionLabels are known category/section headers that resemble headlines
// but never are one. Matched against the upper-cased, trimmed text.
var sectionLabels = map[string]struct{}{
	"METRO CITIES":                        {},
	"ENTERTAINMENT":                       {},
	"LIFE & STYLE":                        {},
	"MOST POPULAR":                        {},
	"TOP PHOTOSTORIES":                    {},
	"PHOTO GALLERY":                       {},
	"FROM OUR NETWORK":                    {},
	"TOI TIMESPOINTS":                     {},
	"VISIT TOI DAILY & EARN TIMES POINTS": {},
	"CITIES":                              {},
	"INDIA":                               {},
	"WORLD":                               {},
	"BUSINESS":                            {},
	"SPORTS":                              {},
	"HEALTH":                              {},
	"TV":                                  {},
	"WEB STORIES":                         {},
	"VIRAL":                               {},
	"TRENDING":                            {},
	"INTERNATIONAL BUSINESS":              {},
	"LATEST BUSINESS VIDEOS":              {},
	"PERSONAL FINANCE":                    {},
	"BANKING SERVICES":                    {},
	"POPULAR BANKS IFSC CODES":            {},
	"STOCK MARKET TODAY":                  {},
	"TOP STOCKS TODAY":                    {},
	"POPULAR SPORTS STORIES":              {},
	"POPULAR INDIA STORIES":               {},
	"POPULAR WORLD STORIES":               {},
}

// promoPhrases mark promotional blocks (case-insensitive substring match).
var promoPhrases = []string{"earn times points", "daily &", "follow us", "see more"}

// navPhrases mark navigation links (case-insensitive substring match).
var navPhrases = []string{"subscribe", "sign in", "log in", "download app"}

// IsNoise reports whether text is a category header, promotional block, or
// navigation link rather than a genuine article headline. It is a pure
// predicate over the package-level constant sets.
//
// Short all-caps strings with few tokens are treated as section headers;
// this can misclassify legitimately all-caps acronym titles, matching the
// source site's observed markup conventions.
func IsNoise(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))

	if _, ok := sectionLabels[upper]; ok {
		return true
	}

	if upper == text && len(text) < 50 && len(strings.Fields(text)) <= 4 {
		return true
	}

	lower := strings.ToLower(text)
	for _, phrase := range promoPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, phrase := range navPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}

	return false
}
