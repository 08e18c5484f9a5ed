package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/akarwowski/frontpage"
	fpgoquery "github.com/akarwowski/frontpage/goquery"
	fphttp "github.com/akarwowski/frontpage/http"
	fpslog "github.com/akarwowski/frontpage/slog"
	"golang.org/x/time/rate"
)

func main() {
	// An interrupt cancels the context, which aborts an in-flight fetch.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. It returns nil only when
// at least one headline was extracted and printed; every other outcome
// (fetch failure, robots disallowed, empty result, invalid input) is an
// error and maps to exit code 1.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("frontpage"),
		kong.Description("Fetch top news headlines for a chosen genre"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Resolve the genre: positional argument if given, interactive menu
	// otherwise.
	var genre *frontpage.Genre
	if cli.Genre != "" {
		genre, err = frontpage.GenreByKey(strings.ToLower(strings.TrimSpace(cli.Genre)))
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", frontpage.ErrorMessage(err))
			return err
		}
	} else {
		genre, err = PromptGenre(stdin, stdout)
		if err != nil {
			return err
		}
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = fphttp.DefaultFetchTimeout
	}

	// One limiter shared by the robots check and the page fetch keeps the
	// two requests of a run at least a second apart.
	limiter := rate.NewLimiter(rate.Limit(1), 1)
	httpFetcher := fphttp.NewFetcher(
		fphttp.WithTimeout(timeout),
		fphttp.WithLimiter(limiter),
	)
	defer httpFetcher.Close()

	fetcher := fpslog.NewLoggingFetcher(httpFetcher, logger)
	extractor := fpslog.NewLoggingExtractor(fpgoquery.NewExtractor(), logger)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   fetcher,
		Robots:    fphttp.NewRobotsAdvisor(fetcher),
		Extractor: extractor,
	}

	cmd := &TopCmd{
		Genre: genre,
		Limit: cli.Limit,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Genre   string        `arg:"" optional:"" help:"Genre key (e.g. sports). Prompts interactively when omitted."`
	Limit   int           `short:"n" default:"10" help:"Maximum number of headlines"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Verbose bool          `short:"v" help:"Log fetch and extraction details to stderr"`
}
