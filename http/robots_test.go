package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akarwowski/frontpage"
	fphttp "github.com/akarwowski/frontpage/http"
	"github.com/stretchr/testify/assert"
)

func robotsServer(t *testing.T, robots string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(robots))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRobotsAdvisor_Check(t *testing.T) {
	t.Parallel()

	t.Run("allows path not covered by wildcard rules", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, "User-agent: *\nDisallow: /private/\n")

		advisor := fphttp.NewRobotsAdvisor(fphttp.NewFetcher())
		verdict := advisor.Check(context.Background(), server.URL+"/sports/")

		assert.True(t, verdict.Allowed)
		assert.Contains(t, verdict.Message, "allowed")
	})

	t.Run("disallows path matching wildcard prefix", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, "User-agent: *\nDisallow: /sports/\n")

		advisor := fphttp.NewRobotsAdvisor(fphttp.NewFetcher())
		verdict := advisor.Check(context.Background(), server.URL+"/sports/cricket")

		assert.False(t, verdict.Allowed)
		assert.Contains(t, verdict.Message, "disallowed")
	})

	t.Run("ignores rules for specific other agents", func(t *testing.T) {
		t.Parallel()

		server := robotsServer(t, "User-agent: Googlebot\nDisallow: /sports/\n\nUser-agent: *\nDisallow: /admin/\n")

		advisor := fphttp.NewRobotsAdvisor(fphttp.NewFetcher())
		verdict := advisor.Check(context.Background(), server.URL+"/sports/")

		assert.True(t, verdict.Allowed)
	})

	t.Run("fails open when robots.txt cannot be fetched", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := server.URL
		server.Close()

		advisor := fphttp.NewRobotsAdvisor(fphttp.NewFetcher())
		verdict := advisor.Check(context.Background(), addr+"/sports/")

		assert.True(t, verdict.Allowed)
		assert.Contains(t, verdict.Message, "could not verify robots.txt")
	})

	t.Run("fails open when robots.txt is missing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		t.Cleanup(server.Close)

		advisor := fphttp.NewRobotsAdvisor(fphttp.NewFetcher())
		verdict := advisor.Check(context.Background(), server.URL+"/sports/")

		assert.True(t, verdict.Allowed)
	})

	t.Run("fails open for unparseable page URL", func(t *testing.T) {
		t.Parallel()

		advisor := fphttp.NewRobotsAdvisor(fphttp.NewFetcher())
		verdict := advisor.Check(context.Background(), "not a url")

		assert.True(t, verdict.Allowed)
	})
}

// Compile-time verification that RobotsAdvisor implements frontpage.RobotsPolicy.
var _ frontpage.RobotsPolicy = (*fphttp.RobotsAdvisor)(nil)
