// Package goquery provides a frontpage.HeadlineExtractor built on CSS
// selector matching over parsed HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/akarwowski/frontpage"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Ensure Extractor implements frontpage.HeadlineExtractor at compile time.
var _ frontpage.HeadlineExtractor = (*Extractor)(nil)

// matcher pairs a pre-compiled selector with its source label.
type matcher struct {
	sel    cascadia.Selector
	source string
}

// Extractor harvests article headlines from raw HTML by walking an ordered
// selector fallback chain. Candidates are normalized, classified, bounded
// by length, and deduplicated; extraction stops as soon as the limit is
// reached.
type Extractor struct {
	matchers []matcher
}

// NewExtractor creates an Extractor for the given selector chain, in
// priority order. With no arguments it uses frontpage.HeadlineSelectors.
// Selectors that fail to compile are skipped rather than rejected, so one
// malformed pattern never disables the rest of the chain.
func NewExtractor(selectors ...frontpage.Selector) *Extractor {
	if len(selectors) == 0 {
		selectors = frontpage.HeadlineSelectors
	}

	e := &Extractor{matchers: make([]matcher, 0, len(selectors))}
	for _, s := range selectors {
		sel, err := cascadia.Compile(s.Pattern)
		if err != nil {
			continue
		}
		e.matchers = append(e.matchers, matcher{sel: sel, source: s.Source})
	}
	return e
}

// Extract returns up to limit cleaned, unique headlines in selector
// priority order (document order within a selector). A document that
// cannot be parsed returns EINVALID; failures scoped to a single selector
// or node are recovered and skipped.
func (e *Extractor) Extract(rawHTML string, limit int) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "failed to parse HTML: %v", err)
	}

	if limit <= 0 {
		return nil, nil
	}

	headlines := make([]string, 0, limit)
	seen := make(map[string]struct{})

	for _, m := range e.matchers {
		if len(headlines) >= limit {
			break
		}
		e.harvest(doc, m, limit, &headlines, seen)
	}

	// Step loops above already stop at the limit; truncate defensively.
	if len(headlines) > limit {
		headlines = headlines[:limit]
	}
	return headlines, nil
}

// harvest collects candidates for one selector. It is the recovery
// boundary: a panic while matching or reading nodes abandons this selector
// only, and the chain moves on.
func (e *Extractor) harvest(doc *goquery.Document, m matcher, limit int, headlines *[]string, seen map[string]struct{}) {
	defer func() {
		_ = recover()
	}()

	doc.FindMatcher(m.sel).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(*headlines) >= limit {
			return false
		}

		text, err := nodeText(sel)
		if err != nil {
			return true // skip the node, keep iterating
		}

		text = frontpage.CleanHeadline(text)
		if frontpage.IsNoise(text) {
			return true
		}
		if !frontpage.ValidHeadlineLength(text) {
			return true
		}
		if _, ok := seen[text]; ok {
			return true
		}

		seen[text] = struct{}{}
		*headlines = append(*headlines, text)
		return true
	})
}

// nodeText returns the node's visible text: descendant text nodes trimmed
// and joined with single spaces.
func nodeText(sel *goquery.Selection) (string, error) {
	if len(sel.Nodes) == 0 {
		return "", frontpage.Errorf(frontpage.EINVALID, "selection has no nodes")
	}

	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " "), nil
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
