package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

const (
	SmallRepoMaxSize    = 50
	SmallRepoMinAge     = 31 * 24 * time.Hour
	UntouchedRepoMinAge = 2 * 365 * 24 * time.Hour
	reposBucketPrefix   = "repos/"
)

// InventoryService finds repositories that are candidates for archiving.
type InventoryService interface {
	// Repositories lists the organization repositories. The second result reports whether
	// they came from the cache.
	Repositories(ctx context.Context, org string) ([]models.Repository, bool, error)
}

type inventoryService struct {
	gh     github.Client
	cache  Cache
	logger *zap.Logger
}

// NewInventoryService builds an inventory service. cache may be nil.
func NewInventoryService(gh github.Client, cache Cache, logger *zap.Logger) InventoryService {
	return &inventoryService{gh: gh, cache: cache, logger: logger}
}

func (s *inventoryService) Repositories(ctx context.Context, org string) ([]models.Repository, bool, error) {
	bucket := reposBucketPrefix + org
	if s.cache != nil {
		repos, err := s.cached(bucket)
		if err != nil {
			s.logger.Warn("reading repository cache", zap.String("organization", org), zap.Error(err))
		} else if len(repos) > 0 {
			return repos, true, nil
		}
	}

	repos, err := s.gh.ListOrgRepos(ctx, org)
	if err != nil {
		return nil, false, fmt.Errorf("listing repositories of %s: %w", org, err)
	}

	if s.cache != nil {
		for _, repo := range repos {
			if err := s.cache.Put(bucket, repo.Name, repo); err != nil {
				s.logger.Warn("writing repository cache", zap.String("repository", repo.FullName), zap.Error(err))
				break
			}
		}
	}
	return repos, false, nil
}

func (s *inventoryService) cached(bucket string) ([]models.Repository, error) {
	keys, err := s.cache.Keys(bucket)
	if err != nil {
		return nil, err
	}

	repos := make([]models.Repository, 0, len(keys))
	for _, key := range keys {
		var repo models.Repository
		if _, err := s.cache.Get(bucket, key, &repo); err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// SmallRepos returns repositories under SmallRepoMaxSize KB without open issues and not
// updated for SmallRepoMinAge, sorted by name.
func SmallRepos(repos []models.Repository, now time.Time) []models.Repository {
	return selectRepos(repos, func(r models.Repository) bool {
		return r.Size < SmallRepoMaxSize &&
			r.OpenIssuesCount == 0 &&
			r.UpdatedAt.Add(SmallRepoMinAge).Before(now)
	})
}

// UntouchedRepos returns repositories not updated for UntouchedRepoMinAge, sorted by name.
func UntouchedRepos(repos []models.Repository, now time.Time) []models.Repository {
	return selectRepos(repos, func(r models.Repository) bool {
		return r.UpdatedAt.Add(UntouchedRepoMinAge).Before(now)
	})
}

func selectRepos(repos []models.Repository, keep func(models.Repository) bool) []models.Repository {
	var out []models.Repository
	for _, r := range repos {
		if keep(r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b models.Repository) int { return strings.Compare(a.Name, b.Name) })
	return out
}
