package orchestrator

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/report"
)

func apiError(method string, status int) error {
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    httptest.NewRequest(method, "https://api.github.com/orgs/org", nil),
		},
		Message: http.StatusText(status),
	}
}

func newOutput() (*report.Printer, *bytes.Buffer, *exitcode.Tracker) {
	var buf bytes.Buffer
	return report.New(&buf), &buf, &exitcode.Tracker{}
}

// fakeClock advances only when slept on.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(_ context.Context, d time.Duration) error {
	c.t = c.t.Add(d)
	return nil
}
