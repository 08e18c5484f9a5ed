package main

import (
	"fmt"
	"io"
)

// PrintHeadlines writes the numbered headline list under a banner naming
// the genre. It carries no business logic; headlines arrive cleaned and
// deduplicated.
func PrintHeadlines(w io.Writer, genreName string, headlines []string) {
	fmt.Fprintln(w, divider)
	fmt.Fprintf(w, "Times of India - %s (Top %d Headlines)\n", genreName, len(headlines))
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)

	for i, headline := range headlines {
		fmt.Fprintf(w, "%2d. %s\n", i+1, headline)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, divider)
}
