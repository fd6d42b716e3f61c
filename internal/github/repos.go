package github

import (
	"context"
	"encoding/json"
	"errors"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

func (c *client) ListOrgRepos(ctx context.Context, org string) ([]models.Repository, error) {
	repos, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.Repository, *gh.Response, error) {
		return c.repositories.ListByOrg(ctx, org, &gh.RepositoryListByOrgOptions{ListOptions: opts})
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if repo == nil {
			continue
		}
		result = append(result, toRepository(repo))
	}
	return result, nil
}

func (c *client) GetRepository(ctx context.Context, owner, repo string) (models.Repository, error) {
	r, _, err := withRetry(ctx, func() (*gh.Repository, *gh.Response, error) {
		return c.repositories.Get(ctx, owner, repo)
	})
	if err != nil {
		return models.Repository{}, err
	}
	return toRepository(r), nil
}

// CreateFork asks GitHub to fork owner/repo into the authenticated account. GitHub answers
// 202 while the fork is provisioned; the repository in that response is still returned
// together with the AcceptedError so callers can decide whether to wait.
func (c *client) CreateFork(ctx context.Context, owner, repo string) (models.Repository, error) {
	fork, _, err := c.repositories.CreateFork(ctx, owner, repo, &gh.RepositoryCreateForkOptions{})
	if err != nil {
		var accepted *gh.AcceptedError
		if errors.As(err, &accepted) && len(accepted.Raw) > 0 {
			var pending gh.Repository
			if jsonErr := json.Unmarshal(accepted.Raw, &pending); jsonErr == nil {
				return toRepository(&pending), err
			}
		}
		return models.Repository{}, err
	}
	return toRepository(fork), nil
}

func (c *client) RenameRepository(ctx context.Context, owner, repo, newName string) (models.Repository, error) {
	renamed, _, err := c.repositories.Edit(ctx, owner, repo, &gh.Repository{Name: gh.Ptr(newName)})
	if err != nil {
		return models.Repository{}, err
	}
	return toRepository(renamed), nil
}
