package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

const hooksBucket = "hooks"

type HookService interface {
	// List returns the hooks of one repository, from the cache when one is configured and
	// already holds the repository.
	List(ctx context.Context, owner, repo string) ([]models.HookInfo, error)
	Ping(ctx context.Context, owner string, hook models.HookInfo) error
}

type hookService struct {
	gh     github.Client
	cache  Cache
	logger *zap.Logger
}

// NewHookService builds a hook service. cache may be nil.
func NewHookService(gh github.Client, cache Cache, logger *zap.Logger) HookService {
	return &hookService{gh: gh, cache: cache, logger: logger}
}

func (s *hookService) List(ctx context.Context, owner, repo string) ([]models.HookInfo, error) {
	key := owner + "/" + repo
	if s.cache != nil {
		var cached []models.HookInfo
		found, err := s.cache.Get(hooksBucket, key, &cached)
		if err != nil {
			s.logger.Warn("reading hook cache", zap.String("repository", key), zap.Error(err))
		} else if found {
			return cached, nil
		}
	}

	hooks, err := s.gh.ListHooks(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("listing hooks of %s: %w", key, err)
	}

	if s.cache != nil {
		if err := s.cache.Put(hooksBucket, key, hooks); err != nil {
			s.logger.Warn("writing hook cache", zap.String("repository", key), zap.Error(err))
		}
	}
	return hooks, nil
}

func (s *hookService) Ping(ctx context.Context, owner string, hook models.HookInfo) error {
	if err := s.gh.PingHook(ctx, owner, hook.Repository, hook.ID); err != nil {
		return fmt.Errorf("pinging hook %d of %s/%s: %w", hook.ID, owner, hook.Repository, err)
	}
	return nil
}
