// Package retry replays code of conduct dispatches that failed for transient reasons.
package retry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/models"
)

// DefaultBackoff is multiplied by the pass number to space retries of an entry.
const DefaultBackoff = 5 * time.Second

type DispatchFunc func(ctx context.Context, record *models.ComplianceRecord, action models.Action) (string, error)

type Entry struct {
	Record      *models.ComplianceRecord
	Action      models.Action
	MaxAttempts int
	Attempts    int
	LastAttempt time.Time
}

type Summary struct {
	Passes    int
	Succeeded int
	Exhausted int
}

// Queue holds pending entries. It is not safe for concurrent use.
type Queue struct {
	entries   []*Entry
	backoff   time.Duration
	retryable func(error) bool
	logger    *zap.Logger
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) error
}

type Option func(*Queue)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(q *Queue) {
		q.now = now
		q.sleep = sleep
	}
}

// New returns an empty queue. retryable decides whether a failed attempt may be retried.
func New(backoff time.Duration, retryable func(error) bool, logger *zap.Logger, opts ...Option) *Queue {
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	q := &Queue{
		backoff:   backoff,
		retryable: retryable,
		logger:    logger,
		now:       time.Now,
		sleep:     sleepContext,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue records a failed dispatch. The failure that caused it does not count as an
// attempt.
func (q *Queue) Enqueue(record *models.ComplianceRecord, action models.Action, maxAttempts int) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	q.entries = append(q.entries, &Entry{
		Record:      record,
		Action:      action,
		MaxAttempts: maxAttempts,
		LastAttempt: q.now(),
	})
}

func (q *Queue) Len() int {
	return len(q.entries)
}

// Drain sweeps the queue in passes until it is empty. In pass p an entry is retried no
// sooner than backoff*p after its last attempt. A cancelled context abandons the remaining
// entries, which count as exhausted.
func (q *Queue) Drain(ctx context.Context, dispatch DispatchFunc) Summary {
	var summary Summary

	for len(q.entries) > 0 {
		summary.Passes++
		pass := summary.Passes
		q.logger.Info("starting retry pass", zap.Int("pass", pass), zap.Int("pending", len(q.entries)))

		pending := q.entries
		q.entries = nil
		for i, entry := range pending {
			notBefore := entry.LastAttempt.Add(q.backoff * time.Duration(pass))
			if wait := notBefore.Sub(q.now()); wait > 0 {
				if err := q.sleep(ctx, wait); err != nil {
					q.logger.Warn("retry abandoned", zap.Int("remaining", len(pending)-i), zap.Error(err))
					summary.Exhausted += len(pending) - i
					return summary
				}
			}

			q.attempt(ctx, entry, dispatch, &summary)
		}
	}
	return summary
}

func (q *Queue) attempt(ctx context.Context, entry *Entry, dispatch DispatchFunc, summary *Summary) {
	fullName := entry.Record.Repository.FullName
	_, err := dispatch(ctx, entry.Record, entry.Action)
	entry.Attempts++
	entry.LastAttempt = q.now()

	switch {
	case err == nil:
		summary.Succeeded++
		q.logger.Info("retry succeeded",
			zap.String("action", entry.Action.Summary),
			zap.Int("issue", entry.Record.IssueNumber),
			zap.String("repository", fullName),
			zap.Int("attempts", entry.Attempts),
		)
	case q.retryable(err) && entry.Attempts < entry.MaxAttempts:
		q.entries = append(q.entries, entry)
	default:
		summary.Exhausted++
		q.logger.Warn("giving up",
			zap.String("action", entry.Action.Summary),
			zap.Int("issue", entry.Record.IssueNumber),
			zap.String("repository", fullName),
			zap.Int("attempts", entry.Attempts),
			zap.Error(err),
		)
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
