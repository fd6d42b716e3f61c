package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tracker-tv/github-admin-bots/internal/config"
	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/github"
	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/models"
)

func newTestApplication(t *testing.T, client github.Client) (*Application, *bytes.Buffer) {
	t.Setenv("GITHUB_TOKEN", "secret")
	var out bytes.Buffer
	app := NewApplication(&out, strings.NewReader(""))
	app.newClient = func(token string) github.Client {
		assert.Equal(t, "secret", token)
		return client
	}
	return app, &out
}

func writeFile(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestApplication_Commands(t *testing.T) {
	app := NewApplication(&bytes.Buffer{}, strings.NewReader(""))

	var names []string
	for _, cmd := range app.rootCommand.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Subset(t, names, []string{
		"coc", "2fa", "enforce-2fa", "members", "invitations", "close-prs",
		"hooks", "audit-hooks", "org-info", "old-repos", "remove-member", "billing",
	})
}

func TestApplication_OrgInfo(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	app, out := newTestApplication(t, mockClient)

	mockClient.EXPECT().GetOrganization(mock.Anything, "acme").Once().
		Return(models.Organization{ID: 1, Login: "acme", Name: "Acme", Type: "Organization"}, nil)

	err := app.Execute(ctx, []string{"org-info", "acme", "--log-level", "error"})

	assert.NoError(t, err)
	assert.Contains(t, out.String(), "           Name: Acme (acme)\n")
	assert.Contains(t, out.String(), "      API v3 id: 1\n")
}

func TestApplication_ExitCodeOnPermissionError(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	app, _ := newTestApplication(t, mockClient)

	forbidden := &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: http.StatusForbidden,
			Request:    httptest.NewRequest(http.MethodGet, "https://api.github.com/orgs/acme", nil),
		},
		Message: "Forbidden",
	}
	mockClient.EXPECT().GetOrganization(mock.Anything, "acme").Once().Return(models.Organization{}, forbidden)

	err := app.Execute(ctx, []string{"org-info", "acme", "--log-level", "error"})

	assert.Equal(t, exitcode.Failure, exitcode.FromError(err))
}

func TestApplication_MissingToken(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApplication(t, nil)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "missing"))

	err := app.Execute(ctx, []string{"members", "acme", "--log-level", "error"})

	assert.ErrorIs(t, err, config.ErrMissingToken)
}

func TestApplication_InvalidLogLevel(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApplication(t, nil)

	err := app.Execute(ctx, []string{"audit-hooks", "x.json", "--log-level", "loud"})

	assert.ErrorContains(t, err, "unable to create logger")
}

func TestApplication_AuditHooks(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApplication(t, nil)

	first := writeFile(t, "a.json", `[
		{"type": "hook.create", "what": "installed travis for org/a", "when": "2019-03-01T10:00:00Z"},
		{"type": "hook.create", "what": "installed travis for org/b", "when": "2019-03-01T10:01:00Z"},
		{"type": "repo.create", "what": "created org/c", "when": "2019-03-01T10:02:00Z"}
	]`)
	second := writeFile(t, "b.json", `[
		{"type": "hook.create", "what": "installed slack for org/a", "when": "2019-03-01T09:00:00Z"}
	]`)

	err := app.Execute(ctx, []string{"audit-hooks", first, second, "--log-level", "error"})

	assert.NoError(t, err)
	assert.Equal(t, "travis: 2\nslack: 1\n", out.String())
}

func TestApplication_CoCRequiresTargets(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApplication(t, nil)

	err := app.Execute(ctx, []string{"coc", "--log-level", "error"})

	assert.ErrorIs(t, err, errNoTargets)
}

func TestApplication_CoCTargetsFromConfig(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	app, out := newTestApplication(t, mockClient)
	cfg := writeFile(t, "config.yaml", "coc:\n  targets:\n    - acme\n")

	mockClient.EXPECT().Me(mock.Anything).Once().Return("mozilla-github-standards", nil)
	mockClient.EXPECT().ListOrgRepos(mock.Anything, "acme").Once().Return(nil, nil)

	err := app.Execute(ctx, []string{"coc", "--config", cfg, "--log-level", "error"})

	assert.NoError(t, err)
	assert.Empty(t, out.String())
}

func TestApplication_CoCLiveRejectsUnapprovedIdentity(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	app, _ := newTestApplication(t, mockClient)

	mockClient.EXPECT().Me(mock.Anything).Once().Return("someone-else", nil)

	err := app.Execute(ctx, []string{"coc", "acme", "--live", "--log-level", "error"})

	assert.ErrorIs(t, err, orchestrator.ErrUnapprovedIdentity)
}

func TestApplication_EnforceTwoFactorNeedsTracker(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApplication(t, nil)

	err := app.Execute(ctx, []string{"enforce-2fa", "acme", "--log-level", "error"})

	assert.ErrorIs(t, err, errNoTracker)
}

func TestApplication_ClosePullRequestsOnly(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	app, out := newTestApplication(t, mockClient)

	mockClient.EXPECT().ListOpenPullRequests(mock.Anything, "acme", "site").Once().
		Return([]models.PullRequest{{Number: 9}}, nil)

	err := app.Execute(ctx, []string{"close-prs", "--only", "acme/site", "--close", "--dry-run", "--log-level", "error"})

	assert.NoError(t, err)
	assert.Equal(t, "PR 9 open for acme/site at: https://github.com/acme/site/pull/9\n", out.String())
}
