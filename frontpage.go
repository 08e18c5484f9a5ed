// Package frontpage provides a CLI tool that fetches a news portal
// category page and extracts the top article headlines from its HTML.
// Extraction walks a prioritized chain of CSS selectors, filters out
// section headers and promotional noise, and normalizes residual text
// artifacts before presenting a deduplicated top-N list.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, slog/).
package frontpage
