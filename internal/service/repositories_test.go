package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func TestNewRepositoriesService(t *testing.T) {
	mockClient := githubMocks.NewMockClient(t)

	svc := NewRepositoriesService(mockClient)

	assert.NotNil(t, svc)
	assert.Implements(t, (*RepositoryService)(nil), svc)
}

func TestListAll_Success(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	repos := []models.Repository{
		{Name: "repo1", FullName: "org/repo1"},
		{Name: "repo2", FullName: "org/repo2", Private: true, Archived: true},
	}

	mockClient.
		EXPECT().
		ListOrgRepos(mock.Anything, "org").
		Once().
		Return(repos, nil)

	svc := NewRepositoriesService(mockClient)
	result, err := svc.ListAll(ctx, "org")

	assert.NoError(t, err)
	assert.Equal(t, repos, result)
}

func TestListAll_Error(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		ListOrgRepos(mock.Anything, "org").
		Once().
		Return(nil, errors.New("API error"))

	svc := NewRepositoriesService(mockClient)
	result, err := svc.ListAll(ctx, "org")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "API error")
}

func TestGet_Success(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	mockClient.
		EXPECT().
		GetRepository(mock.Anything, "org", "repo").
		Once().
		Return(models.Repository{Owner: "org", Name: "repo", FullName: "org/repo"}, nil)

	svc := NewRepositoriesService(mockClient)
	repo, err := svc.Get(ctx, "org/repo")

	assert.NoError(t, err)
	assert.Equal(t, "org/repo", repo.FullName)
}

func TestGet_InvalidName(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)

	svc := NewRepositoriesService(mockClient)
	_, err := svc.Get(ctx, "just-a-name")

	assert.ErrorContains(t, err, "expected owner/repo")
}

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		in      string
		owner   string
		name    string
		wantErr bool
	}{
		{in: "org/repo", owner: "org", name: "repo"},
		{in: "org/", wantErr: true},
		{in: "/repo", wantErr: true},
		{in: "org/repo/extra", wantErr: true},
		{in: "org", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, name, err := SplitFullName(tt.in)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.name, name)
		})
	}
}
