package orchestrator

import (
	"context"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/service"
	"github.com/tracker-tv/github-admin-bots/models"
)

// PullRequestCloser closes pull requests on repositories that do not accept them.
type PullRequestCloser struct {
	prs    service.PullRequestService
	out    *report.Printer
	exit   *exitcode.Tracker
	logger *zap.Logger
}

func NewPullRequestCloser(prs service.PullRequestService, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *PullRequestCloser {
	return &PullRequestCloser{prs: prs, out: out, exit: exit, logger: logger}
}

// Run handles each target. dryRun only lists, whatever the targets ask for.
func (c *PullRequestCloser) Run(ctx context.Context, targets []models.CloseTarget, dryRun bool) {
	for _, target := range targets {
		if dryRun {
			target.Close = false
			target.Lock = false
		}
		c.process(ctx, target)
	}
}

func (c *PullRequestCloser) process(ctx context.Context, t models.CloseTarget) {
	prs, err := c.prs.ListOpen(ctx, t.Organization, t.Repository)
	if err != nil {
		c.logger.Error("no access to repository", zap.String("repository", t.FullName()), zap.Error(err))
		c.exit.Raise(exitcode.Failure)
		return
	}
	if len(prs) == 0 {
		c.logger.Debug("no open pull requests", zap.String("repository", t.FullName()))
		return
	}

	for _, pr := range prs {
		if !t.Close {
			c.out.Line("PR %d open for %s at: https://github.com/%s/pull/%d", pr.Number, t.FullName(), t.FullName(), pr.Number)
			continue
		}

		if err := c.prs.Close(ctx, t.Organization, t.Repository, pr, t.Message, t.Lock); err != nil {
			c.logger.Error("closing pull request failed", zap.String("repository", t.FullName()), zap.Int("number", pr.Number), zap.Error(err))
			c.exit.Raise(exitcode.Failure)
			continue
		}
		c.logger.Info("closed pull request", zap.String("repository", t.FullName()), zap.Int("number", pr.Number), zap.Bool("locked", t.Lock))
	}
}
