package main

import (
	"context"
	"fmt"
	"io"

	"github.com/akarwowski/frontpage"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   frontpage.Fetcher
	Robots    frontpage.RobotsPolicy
	Extractor frontpage.HeadlineExtractor
}

// TopCmd fetches a genre page and prints the top headlines.
type TopCmd struct {
	Genre *frontpage.Genre
	Limit int
}

// Run executes the command: advisory robots check, single page fetch,
// headline extraction, presentation.
func (c *TopCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Selected genre: %s\n", c.Genre.Name)
	fmt.Fprintf(deps.Stdout, "Target: %s\n\n", c.Genre.URL)

	verdict := deps.Robots.Check(deps.Ctx, c.Genre.URL)
	fmt.Fprintf(deps.Stdout, "robots.txt: %s\n\n", verdict.Message)
	if !verdict.Allowed {
		return frontpage.Errorf(frontpage.EINVALID, "fetching disallowed by robots.txt, aborting")
	}

	html, err := deps.Fetcher.Fetch(deps.Ctx, c.Genre.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	headlines, err := deps.Extractor.Extract(html, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	if len(headlines) == 0 {
		fmt.Fprintln(deps.Stdout, "No headlines found. The website structure may have changed.")
		return frontpage.Errorf(frontpage.ENOTFOUND, "no headlines found for %s", c.Genre.Name)
	}

	PrintHeadlines(deps.Stdout, c.Genre.Name, headlines)
	return nil
}
