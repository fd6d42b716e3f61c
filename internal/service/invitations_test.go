package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func TestInvitationService_Stale(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewInvitationService(mockClient)
	cutoff := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	old := models.Invitation{ID: 1, Login: "alice", CreatedAt: cutoff.Add(-time.Hour)}
	fresh := models.Invitation{ID: 2, Login: "bob", CreatedAt: cutoff.Add(time.Hour)}
	mockClient.EXPECT().ListInvitations(mock.Anything, "org").Once().Return([]models.Invitation{old, fresh}, nil)

	stale, err := svc.Stale(ctx, "org", cutoff)

	require.NoError(t, err)
	assert.Equal(t, []models.Invitation{old}, stale)
}

func TestInvitationService_Stale_OldestFirst(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewInvitationService(mockClient)
	cutoff := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	recent := models.Invitation{ID: 1, Login: "alice", CreatedAt: cutoff.Add(-time.Hour)}
	oldest := models.Invitation{ID: 2, Login: "bob", CreatedAt: cutoff.Add(-30 * 24 * time.Hour)}
	middle := models.Invitation{ID: 3, Login: "carol", CreatedAt: cutoff.Add(-24 * time.Hour)}
	mockClient.EXPECT().ListInvitations(mock.Anything, "org").Once().Return([]models.Invitation{recent, oldest, middle}, nil)

	stale, err := svc.Stale(ctx, "org", cutoff)

	require.NoError(t, err)
	assert.Equal(t, []models.Invitation{oldest, middle, recent}, stale)
}

func TestInvitationService_Cancel(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewInvitationService(mockClient)

	mockClient.EXPECT().CancelInvitation(mock.Anything, "org", int64(1)).Once().Return(nil)
	mockClient.EXPECT().CancelInvitation(mock.Anything, "org", int64(2)).Once().Return(apiError("DELETE", 404))

	assert.NoError(t, svc.Cancel(ctx, "org", models.Invitation{ID: 1, Login: "alice"}))
	assert.ErrorContains(t, svc.Cancel(ctx, "org", models.Invitation{ID: 2, Login: "bob"}), "bob")
}
