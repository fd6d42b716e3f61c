package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func TestOrganizationService_Info(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewOrganizationService(mockClient)

	mockClient.EXPECT().GetOrganization(mock.Anything, "org").Once().
		Return(models.Organization{ID: 131524, Name: "Org", Type: "Organization"}, nil)

	org, err := svc.Info(ctx, "org")

	require.NoError(t, err)
	assert.Equal(t, "org", org.Login)
	assert.Equal(t, int64(131524), org.ID)
}

func TestOrganizationService_Owners(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewOrganizationService(mockClient)

	mockClient.EXPECT().ListMembers(mock.Anything, "org", "admin", "all").Once().
		Return([]models.Member{{Login: "alice"}, {Login: "bob"}}, nil)
	mockClient.EXPECT().GetUser(mock.Anything, "alice").Once().Return(models.Member{Login: "alice", Name: "Alice", Email: "a@example.org"}, nil)
	mockClient.EXPECT().GetUser(mock.Anything, "bob").Once().Return(models.Member{Login: "bob"}, nil)

	owners, err := svc.Owners(ctx, "org")

	require.NoError(t, err)
	assert.Equal(t, []models.Member{
		{Login: "alice", Name: "Alice", Email: "a@example.org"},
		{Login: "bob"},
	}, owners)
}
