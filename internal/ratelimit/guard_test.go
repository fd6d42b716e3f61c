package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func newTestGuard(t *testing.T, min int) (*Guard, *githubMocks.MockClient, *[]time.Duration) {
	client := githubMocks.NewMockClient(t)
	g := NewGuard(client, min, zap.NewNop())

	now := time.Unix(10000, 0)
	var naps []time.Duration
	g.now = func() time.Time { return now }
	g.sleep = func(ctx context.Context, d time.Duration) error {
		naps = append(naps, d)
		now = now.Add(d)
		return nil
	}
	return g, client, &naps
}

func TestWait_EnoughQuota(t *testing.T) {
	ctx := context.Background()
	g, client, naps := newTestGuard(t, 500)

	client.
		EXPECT().
		RateLimit(mock.Anything).
		Once().
		Return(models.Quota{Limit: 5000, Remaining: 500}, nil)

	err := g.Wait(ctx)

	assert.NoError(t, err)
	assert.Empty(t, *naps)
}

func TestWait_SleepsUntilReset(t *testing.T) {
	ctx := context.Background()
	g, client, naps := newTestGuard(t, 500)

	client.
		EXPECT().
		RateLimit(mock.Anything).
		Once().
		Return(models.Quota{Remaining: 12, Reset: time.Unix(10030, 0)}, nil)
	client.
		EXPECT().
		RateLimit(mock.Anything).
		Once().
		Return(models.Quota{Remaining: 5000}, nil)

	err := g.Wait(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []time.Duration{31 * time.Second}, *naps)
}

func TestWait_ResetInThePast(t *testing.T) {
	ctx := context.Background()
	g, client, naps := newTestGuard(t, 500)

	client.
		EXPECT().
		RateLimit(mock.Anything).
		Once().
		Return(models.Quota{Remaining: 0, Reset: time.Unix(9000, 0)}, nil)
	client.
		EXPECT().
		RateLimit(mock.Anything).
		Once().
		Return(models.Quota{Remaining: 4999}, nil)

	assert.NoError(t, g.Wait(ctx))
	assert.Equal(t, []time.Duration{time.Second}, *naps)
}

func TestWait_RateLimitError(t *testing.T) {
	ctx := context.Background()
	g, client, _ := newTestGuard(t, 500)

	client.
		EXPECT().
		RateLimit(mock.Anything).
		Once().
		Return(models.Quota{}, errors.New("boom"))

	err := g.Wait(ctx)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "reading rate limit")
}

func TestNewGuard_DefaultMinimum(t *testing.T) {
	g := NewGuard(githubMocks.NewMockClient(t), 0, zap.NewNop())

	assert.Equal(t, DefaultMinRemaining, g.minRemaining)
}
