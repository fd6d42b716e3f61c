// Package orchestrator runs the administrative tools over their targets and prints their
// reports.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/retry"
	"github.com/tracker-tv/github-admin-bots/internal/service"
	"github.com/tracker-tv/github-admin-bots/models"
)

var ErrUnapprovedIdentity = errors.New("unapproved user, no changes allowed")

// CheckIdentity compares the authenticated login with the account approved to make
// changes. A mismatch is only fatal when changes would be made.
func CheckIdentity(identity, approved string, live bool, logger *zap.Logger) error {
	if strings.EqualFold(identity, approved) {
		return nil
	}
	logger.Warn("unapproved user, no changes allowed", zap.String("login", identity), zap.String("approved", approved))
	if live {
		return fmt.Errorf("terminating update run as %s: %w", identity, ErrUnapprovedIdentity)
	}
	return nil
}

// CoCBot evaluates repositories against the code of conduct policy. In live mode it also
// carries out the plan and retries transient failures once every target was processed.
type CoCBot struct {
	repos       service.RepositoryService
	evaluator   service.ComplianceService
	dispatcher  service.DispatchService
	quota       service.QuotaGuard
	queue       *retry.Queue
	maxAttempts int
	live        bool
	out         *report.Printer
	exit        *exitcode.Tracker
	logger      *zap.Logger
}

type CoCBotConfig struct {
	Repos       service.RepositoryService
	Evaluator   service.ComplianceService
	Dispatcher  service.DispatchService
	Quota       service.QuotaGuard
	Queue       *retry.Queue
	MaxAttempts int
	Live        bool
}

func NewCoCBot(cfg CoCBotConfig, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *CoCBot {
	return &CoCBot{
		repos:       cfg.Repos,
		evaluator:   cfg.Evaluator,
		dispatcher:  cfg.Dispatcher,
		quota:       cfg.Quota,
		queue:       cfg.Queue,
		maxAttempts: cfg.MaxAttempts,
		live:        cfg.Live,
		out:         out,
		exit:        exit,
		logger:      logger,
	}
}

// Run processes each target, an "owner/repo" or an organization name, in order.
func (b *CoCBot) Run(ctx context.Context, targets []string) error {
	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}
		if strings.Contains(target, "/") {
			b.processRepository(ctx, target)
		} else {
			b.processOrganization(ctx, target)
		}
	}

	if b.queue.Len() > 0 {
		summary := b.queue.Drain(ctx, b.retry)
		b.logger.Info("retries finished",
			zap.Int("passes", summary.Passes),
			zap.Int("succeeded", summary.Succeeded),
			zap.Int("exhausted", summary.Exhausted),
		)
	}
	return ctx.Err()
}

func (b *CoCBot) processRepository(ctx context.Context, fullName string) {
	if err := b.quota.Wait(ctx); err != nil {
		b.fail("waiting for quota", fullName, err)
		return
	}

	repo, err := b.repos.Get(ctx, fullName)
	if err != nil {
		if github.IsNotFound(err) {
			b.logger.Error("no such repository", zap.String("repository", fullName))
			return
		}
		b.fail("getting repository", fullName, err)
		return
	}
	b.process(ctx, repo)
}

func (b *CoCBot) processOrganization(ctx context.Context, org string) {
	repos, err := b.repos.ListAll(ctx, org)
	if err != nil {
		b.fail("listing repositories", org, err)
		return
	}
	for _, repo := range repos {
		if ctx.Err() != nil {
			return
		}
		b.process(ctx, repo)
	}
}

func (b *CoCBot) process(ctx context.Context, repo models.Repository) {
	if err := b.quota.Wait(ctx); err != nil {
		b.fail("waiting for quota", repo.FullName, err)
		return
	}

	record, err := b.evaluator.Evaluate(ctx, repo)
	if err != nil {
		b.fail("evaluating repository", repo.FullName, err)
		return
	}

	b.out.Line("Plan for %s:", repo.FullName)
	if !b.live || len(record.Actions) == 0 {
		b.out.Indented(4, record.PlanLines()...)
		return
	}

	for _, action := range record.Actions {
		text, err := b.dispatcher.Dispatch(ctx, record, action)
		b.out.Indented(4, action.Summary+text)
		if err == nil {
			continue
		}

		switch {
		case service.IsRetryable(err):
			b.logger.Info("queued for retry", zap.String("repository", repo.FullName), zap.String("action", action.Summary), zap.Error(err))
			b.queue.Enqueue(record, action, b.maxAttempts)
		case github.IsPermission(err):
			b.fail("dispatching "+string(action.Code), repo.FullName, err)
		default:
			b.logger.Warn("action failed", zap.String("repository", repo.FullName), zap.String("action", action.Summary), zap.Error(err))
		}
	}
}

// retry dispatches a queued action. Permission failures raise the exit code as they do
// on the first attempt.
func (b *CoCBot) retry(ctx context.Context, record *models.ComplianceRecord, action models.Action) (string, error) {
	text, err := b.dispatcher.Dispatch(ctx, record, action)
	if github.IsPermission(err) {
		b.fail("retrying "+string(action.Code), record.Repository.FullName, err)
	}
	return text, err
}

func (b *CoCBot) fail(step, target string, err error) {
	b.logger.Error(step+" failed", zap.String("target", target), zap.Error(err))
	b.exit.Raise(exitcode.Failure)
}
