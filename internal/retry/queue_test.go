package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/models"
)

var errTransient = errors.New("transient")

type fakeClock struct {
	now    time.Time
	slept  []time.Duration
	cancel bool
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if c.cancel {
		return context.Canceled
	}
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
	return nil
}

func newTestQueue(clock *fakeClock) *Queue {
	return New(5*time.Second, func(err error) bool { return errors.Is(err, errTransient) }, zap.NewNop(), WithClock(clock.Now, clock.Sleep))
}

func record(name string) *models.ComplianceRecord {
	return &models.ComplianceRecord{Repository: models.Repository{FullName: "org/" + name}}
}

var prAction = models.Action{Code: models.ActionMissingPR, MessageID: "COC002", Summary: "Create PR for boilerplate CoC"}

func TestDrain_SucceedsOnThirdAttempt(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	q := newTestQueue(clock)
	q.Enqueue(record("repo"), prAction, 5)

	calls := 0
	summary := q.Drain(ctx, func(ctx context.Context, r *models.ComplianceRecord, a models.Action) (string, error) {
		calls++
		if calls < 3 {
			return "", errTransient
		}
		return " Created PR #1 (url)", nil
	})

	assert.Equal(t, 3, calls)
	assert.Equal(t, Summary{Passes: 3, Succeeded: 1}, summary)
	assert.Equal(t, 0, q.Len())
	// pass p waits backoff*p after the previous attempt
	assert.Equal(t, []time.Duration{5 * time.Second, 10 * time.Second, 15 * time.Second}, clock.slept)
}

func TestDrain_ExhaustsAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	q := newTestQueue(clock)
	q.Enqueue(record("repo"), prAction, 4)

	calls := 0
	summary := q.Drain(ctx, func(ctx context.Context, r *models.ComplianceRecord, a models.Action) (string, error) {
		calls++
		return "", errTransient
	})

	assert.Equal(t, 4, calls)
	assert.Equal(t, Summary{Passes: 4, Exhausted: 1}, summary)
	assert.Equal(t, 0, q.Len())
}

func TestDrain_NonRetryableIsTerminal(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	q := newTestQueue(clock)
	q.Enqueue(record("repo"), prAction, 5)

	calls := 0
	summary := q.Drain(ctx, func(ctx context.Context, r *models.ComplianceRecord, a models.Action) (string, error) {
		calls++
		return "", errors.New("forbidden")
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, Summary{Passes: 1, Exhausted: 1}, summary)
}

func TestDrain_MixedEntries(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	q := newTestQueue(clock)
	q.Enqueue(record("quick"), prAction, 5)
	q.Enqueue(record("slow"), prAction, 2)
	assert.Equal(t, 2, q.Len())

	attempts := map[string]int{}
	summary := q.Drain(ctx, func(ctx context.Context, r *models.ComplianceRecord, a models.Action) (string, error) {
		attempts[r.Repository.FullName]++
		if r.Repository.FullName == "org/quick" {
			return "", nil
		}
		return "", errTransient
	})

	assert.Equal(t, map[string]int{"org/quick": 1, "org/slow": 2}, attempts)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Exhausted)
	assert.Equal(t, 2, summary.Passes)
}

func TestDrain_NoWaitWhenAlreadyDue(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1000, 0)}
	q := newTestQueue(clock)
	q.Enqueue(record("repo"), prAction, 1)
	clock.now = clock.now.Add(time.Minute)

	summary := q.Drain(ctx, func(ctx context.Context, r *models.ComplianceRecord, a models.Action) (string, error) {
		return "", nil
	})

	assert.Empty(t, clock.slept)
	assert.Equal(t, 1, summary.Succeeded)
}

func TestDrain_CancelledWhileWaiting(t *testing.T) {
	ctx := context.Background()
	clock := &fakeClock{now: time.Unix(1000, 0), cancel: true}
	q := newTestQueue(clock)
	q.Enqueue(record("a"), prAction, 3)
	q.Enqueue(record("b"), prAction, 3)

	summary := q.Drain(ctx, func(ctx context.Context, r *models.ComplianceRecord, a models.Action) (string, error) {
		t.Fatal("dispatch must not run")
		return "", nil
	})

	assert.Equal(t, Summary{Passes: 1, Exhausted: 2}, summary)
}

func TestEnqueue_ClampsMaxAttempts(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	q := newTestQueue(clock)

	q.Enqueue(record("repo"), prAction, 0)

	assert.Equal(t, 1, q.entries[0].MaxAttempts)
	assert.Equal(t, clock.now, q.entries[0].LastAttempt)
}
