package service

import (
	"context"
	"fmt"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

// DefaultCloseMessage is posted on pull requests closed without a configured message.
const DefaultCloseMessage = "We do not use Pull Requests on this repo. Please see CONTRIBUTING or ReadMe file."

type PullRequestService interface {
	ListOpen(ctx context.Context, owner, repo string) ([]models.PullRequest, error)
	// Close comments message on the pull request, closes it and optionally locks the
	// conversation.
	Close(ctx context.Context, owner, repo string, pr models.PullRequest, message string, lock bool) error
}

type pullRequestService struct {
	gh github.Client
}

func NewPullRequestService(gh github.Client) PullRequestService {
	return &pullRequestService{gh: gh}
}

func (s *pullRequestService) ListOpen(ctx context.Context, owner, repo string) ([]models.PullRequest, error) {
	prs, err := s.gh.ListOpenPullRequests(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("listing pull requests of %s/%s: %w", owner, repo, err)
	}
	return prs, nil
}

func (s *pullRequestService) Close(ctx context.Context, owner, repo string, pr models.PullRequest, message string, lock bool) error {
	if message == "" {
		message = DefaultCloseMessage
	}

	if err := s.gh.CommentOnIssue(ctx, owner, repo, pr.Number, message); err != nil {
		return fmt.Errorf("commenting on %s/%s#%d: %w", owner, repo, pr.Number, err)
	}
	if err := s.gh.ClosePullRequest(ctx, owner, repo, pr.Number); err != nil {
		return fmt.Errorf("closing %s/%s#%d: %w", owner, repo, pr.Number, err)
	}
	if lock {
		if err := s.gh.LockIssue(ctx, owner, repo, pr.Number); err != nil {
			return fmt.Errorf("locking %s/%s#%d: %w", owner, repo, pr.Number, err)
		}
	}
	return nil
}
