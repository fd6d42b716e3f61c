package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	serviceMocks "github.com/tracker-tv/github-admin-bots/internal/service/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

var inventoryNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func inventory() []models.Repository {
	return []models.Repository{
		{Name: "tiny-old", Size: 10, UpdatedAt: inventoryNow.AddDate(0, -2, 0)},
		{Name: "ancient", Size: 5000, UpdatedAt: inventoryNow.AddDate(-3, 0, 0)},
		{Name: "tiny-recent", Size: 10, UpdatedAt: inventoryNow.AddDate(0, 0, -3)},
		{Name: "tiny-with-issues", Size: 10, OpenIssuesCount: 2, UpdatedAt: inventoryNow.AddDate(0, -2, 0)},
		{Name: "big-active", Size: 5000, UpdatedAt: inventoryNow.AddDate(0, 0, -1)},
		{Name: "abandoned-empty", Size: 0, UpdatedAt: inventoryNow.AddDate(-5, 0, 0)},
	}
}

func names(repos []models.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}

func TestSmallRepos(t *testing.T) {
	assert.Equal(t, []string{"abandoned-empty", "tiny-old"}, names(SmallRepos(inventory(), inventoryNow)))
}

func TestUntouchedRepos(t *testing.T) {
	assert.Equal(t, []string{"abandoned-empty", "ancient"}, names(UntouchedRepos(inventory(), inventoryNow)))
}

func TestInventoryService_Repositories_CachesListing(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	cache := serviceMocks.NewMockCache(t)
	svc := NewInventoryService(mockClient, cache, zap.NewNop())
	repos := inventory()[:2]

	cache.EXPECT().Keys("repos/org").Once().Return(nil, nil)
	mockClient.EXPECT().ListOrgRepos(mock.Anything, "org").Once().Return(repos, nil)
	cache.EXPECT().Put("repos/org", "tiny-old", repos[0]).Once().Return(nil)
	cache.EXPECT().Put("repos/org", "ancient", repos[1]).Once().Return(nil)

	got, cached, err := svc.Repositories(ctx, "org")

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, repos, got)
}

func TestInventoryService_Repositories_FromCache(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	cache := serviceMocks.NewMockCache(t)
	svc := NewInventoryService(mockClient, cache, zap.NewNop())
	repos := inventory()

	cache.EXPECT().Keys("repos/org").Once().Return([]string{"ancient"}, nil)
	cache.EXPECT().Get("repos/org", "ancient", mock.Anything).
		Run(func(bucket string, key string, v interface{}) {
			*v.(*models.Repository) = repos[1]
		}).
		Once().
		Return(true, nil)

	got, cached, err := svc.Repositories(ctx, "org")

	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, []models.Repository{repos[1]}, got)
}

func TestInventoryService_Repositories_NoCache(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	svc := NewInventoryService(mockClient, nil, zap.NewNop())

	mockClient.EXPECT().ListOrgRepos(mock.Anything, "org").Once().Return(inventory(), nil)

	got, cached, err := svc.Repositories(ctx, "org")

	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, got, 6)
}
