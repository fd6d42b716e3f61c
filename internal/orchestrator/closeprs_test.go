package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	serviceMocks "github.com/tracker-tv/github-admin-bots/internal/service/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func TestPullRequestCloser_Lists(t *testing.T) {
	ctx := context.Background()
	prs := serviceMocks.NewMockPullRequestService(t)
	out, buf, exit := newOutput()
	c := NewPullRequestCloser(prs, out, exit, zap.NewNop())

	prs.EXPECT().ListOpen(mock.Anything, "org", "repo").Once().
		Return([]models.PullRequest{{Number: 3}, {Number: 7}}, nil)

	c.Run(ctx, []models.CloseTarget{{Organization: "org", Repository: "repo"}}, false)

	assert.Equal(t, "PR 3 open for org/repo at: https://github.com/org/repo/pull/3\n"+
		"PR 7 open for org/repo at: https://github.com/org/repo/pull/7\n", buf.String())
	assert.Equal(t, 0, exit.Code())
}

func TestPullRequestCloser_Closes(t *testing.T) {
	ctx := context.Background()
	prs := serviceMocks.NewMockPullRequestService(t)
	out, buf, exit := newOutput()
	c := NewPullRequestCloser(prs, out, exit, zap.NewNop())

	pr := models.PullRequest{Number: 3}
	prs.EXPECT().ListOpen(mock.Anything, "org", "repo").Once().Return([]models.PullRequest{pr}, nil)
	prs.EXPECT().Close(mock.Anything, "org", "repo", pr, "read the docs", true).Once().Return(nil)

	c.Run(ctx, []models.CloseTarget{{Organization: "org", Repository: "repo", Message: "read the docs", Close: true, Lock: true}}, false)

	assert.Empty(t, buf.String())
	assert.Equal(t, 0, exit.Code())
}

func TestPullRequestCloser_DryRunOnlyLists(t *testing.T) {
	ctx := context.Background()
	prs := serviceMocks.NewMockPullRequestService(t)
	out, buf, exit := newOutput()
	c := NewPullRequestCloser(prs, out, exit, zap.NewNop())

	prs.EXPECT().ListOpen(mock.Anything, "org", "repo").Once().Return([]models.PullRequest{{Number: 3}}, nil)

	c.Run(ctx, []models.CloseTarget{{Organization: "org", Repository: "repo", Close: true, Lock: true}}, true)

	assert.Equal(t, "PR 3 open for org/repo at: https://github.com/org/repo/pull/3\n", buf.String())
}

func TestPullRequestCloser_Failures(t *testing.T) {
	ctx := context.Background()
	prs := serviceMocks.NewMockPullRequestService(t)
	out, _, exit := newOutput()
	c := NewPullRequestCloser(prs, out, exit, zap.NewNop())

	pr := models.PullRequest{Number: 1}
	prs.EXPECT().ListOpen(mock.Anything, "org", "gone").Once().Return(nil, apiError("GET", 404))
	prs.EXPECT().ListOpen(mock.Anything, "org", "repo").Once().Return([]models.PullRequest{pr}, nil)
	prs.EXPECT().Close(mock.Anything, "org", "repo", pr, "", false).Once().Return(apiError("PATCH", 403))

	c.Run(ctx, []models.CloseTarget{
		{Organization: "org", Repository: "gone", Close: true},
		{Organization: "org", Repository: "repo", Close: true},
	}, false)

	assert.Equal(t, 1, exit.Code())
}
