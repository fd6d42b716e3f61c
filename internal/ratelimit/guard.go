// Package ratelimit blocks the run until the GitHub API quota allows it to continue.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/models"
)

const (
	DefaultMinRemaining = 500
	minNap              = time.Second
)

type QuotaSource interface {
	RateLimit(ctx context.Context) (models.Quota, error)
}

// Guard polls the core quota. It is called before each unit of work and never runs
// concurrently with itself.
type Guard struct {
	source       QuotaSource
	minRemaining int
	logger       *zap.Logger
	now          func() time.Time
	sleep        func(ctx context.Context, d time.Duration) error
}

func NewGuard(source QuotaSource, minRemaining int, logger *zap.Logger) *Guard {
	if minRemaining <= 0 {
		minRemaining = DefaultMinRemaining
	}
	return &Guard{
		source:       source,
		minRemaining: minRemaining,
		logger:       logger,
		now:          time.Now,
		sleep:        sleepContext,
	}
}

// Wait returns once at least the minimum quota remains. Until then it sleeps until one
// second past the reset time, and never less than one second, then polls again.
func (g *Guard) Wait(ctx context.Context) error {
	for {
		quota, err := g.source.RateLimit(ctx)
		if err != nil {
			return fmt.Errorf("reading rate limit: %w", err)
		}
		if quota.Remaining >= g.minRemaining {
			return nil
		}

		nap := max(quota.Reset.Sub(g.now())+time.Second, minNap)
		g.logger.Info("waiting for API quota",
			zap.Int("remaining", quota.Remaining),
			zap.Int("minimum", g.minRemaining),
			zap.Duration("nap", nap),
		)
		if err := g.sleep(ctx, nap); err != nil {
			return err
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
