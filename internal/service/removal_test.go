package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func TestRemovalService_Member(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewRemovalService(mockClient, zap.NewNop())

	mockClient.EXPECT().GetMembership(mock.Anything, "org", "alice").Once().Return(models.Membership{Login: "alice", Role: "member"}, nil)
	mockClient.EXPECT().RemoveOrgMember(mock.Anything, "org", "alice").Once().Return(nil)
	mockClient.EXPECT().RemoveOutsideCollaborator(mock.Anything, "org", "alice").Once().Return(apiError("DELETE", 404))

	result, err := svc.Remove(ctx, "org", "alice", false)

	require.NoError(t, err)
	assert.Equal(t, models.RemovalResult{Login: "alice", Role: "member", RemovedMembership: true}, result)
}

func TestRemovalService_OwnerIsKept(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewRemovalService(mockClient, zap.NewNop())

	mockClient.EXPECT().GetMembership(mock.Anything, "org", "boss").Once().Return(models.Membership{Login: "boss", Role: "admin"}, nil)
	mockClient.EXPECT().RemoveOutsideCollaborator(mock.Anything, "org", "boss").Once().Return(apiError("DELETE", 422))

	result, err := svc.Remove(ctx, "org", "boss", false)

	require.NoError(t, err)
	assert.True(t, result.IsOwner)
	assert.False(t, result.RemovedMembership)
}

func TestRemovalService_OutsideCollaborator(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewRemovalService(mockClient, zap.NewNop())

	mockClient.EXPECT().GetMembership(mock.Anything, "org", "guest").Once().Return(models.Membership{}, apiError("GET", 404))
	mockClient.EXPECT().RemoveOutsideCollaborator(mock.Anything, "org", "guest").Once().Return(nil)

	result, err := svc.Remove(ctx, "org", "guest", false)

	require.NoError(t, err)
	assert.Equal(t, models.RemovalResult{Login: "guest", RemovedCollaborator: true}, result)
}

func TestRemovalService_DryRun(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewRemovalService(mockClient, zap.NewNop())

	mockClient.EXPECT().GetMembership(mock.Anything, "org", "alice").Once().Return(models.Membership{Login: "alice", Role: "member"}, nil)

	result, err := svc.Remove(ctx, "org", "alice", true)

	require.NoError(t, err)
	assert.Equal(t, "member", result.Role)
	assert.False(t, result.RemovedMembership)
	assert.False(t, result.RemovedCollaborator)
}

func TestRemovalService_MembershipError(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewRemovalService(mockClient, zap.NewNop())

	mockClient.EXPECT().GetMembership(mock.Anything, "org", "alice").Once().Return(models.Membership{}, apiError("GET", 403))

	_, err := svc.Remove(ctx, "org", "alice", false)

	assert.Error(t, err)
}
