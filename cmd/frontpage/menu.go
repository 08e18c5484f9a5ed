package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/akarwowski/frontpage"
)

const divider = "================================================================================"

// DisplayGenres prints the numbered genre menu.
func DisplayGenres(w io.Writer) {
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Available genres:")
	fmt.Fprintln(w, divider)
	for i, genre := range frontpage.Genres {
		fmt.Fprintf(w, "%2d. %-25s ('%s')\n", i+1, genre.Name, genre.Key)
	}
	fmt.Fprintln(w, divider)
}

// PromptGenre shows the genre menu and reads a selection from r, accepting
// either a 1-based number or a genre key. Invalid input reprompts; end of
// input without a valid selection returns EINVALID.
func PromptGenre(r io.Reader, w io.Writer) (*frontpage.Genre, error) {
	DisplayGenres(w)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Enter genre name or number (e.g. 'sports' or '1'): ")

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, frontpage.Errorf(frontpage.EINVALID, "no genre selected")
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if input == "" {
			continue
		}

		if num, err := strconv.Atoi(input); err == nil {
			if num >= 1 && num <= len(frontpage.Genres) {
				return &frontpage.Genres[num-1], nil
			}
			fmt.Fprintf(w, "Invalid number. Enter a number between 1 and %d.\n", len(frontpage.Genres))
			continue
		}

		if genre, err := frontpage.GenreByKey(input); err == nil {
			return genre, nil
		}
		fmt.Fprintf(w, "Invalid genre %q. Valid genres: %s\n", input, strings.Join(genreKeys(), ", "))
	}
}

func genreKeys() []string {
	keys := make([]string, 0, len(frontpage.Genres))
	for _, genre := range frontpage.Genres {
		keys = append(keys, genre.Key)
	}
	return keys
}
