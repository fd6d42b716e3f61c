package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

func (c *client) ListOpenPullRequests(ctx context.Context, owner, repo string) ([]models.PullRequest, error) {
	prs, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.PullRequest, *gh.Response, error) {
		return c.pullRequests.List(ctx, owner, repo, &gh.PullRequestListOptions{State: "open", ListOptions: opts})
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr == nil {
			continue
		}
		result = append(result, toPullRequest(pr))
	}
	return result, nil
}

func (c *client) CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (models.PullRequest, error) {
	pr := &gh.NewPullRequest{
		Title:               gh.Ptr(title),
		Body:                gh.Ptr(body),
		Head:                gh.Ptr(head),
		Base:                gh.Ptr(base),
		MaintainerCanModify: gh.Ptr(true),
	}
	created, _, err := c.pullRequests.Create(ctx, owner, repo, pr)
	if err != nil {
		return models.PullRequest{}, err
	}
	return toPullRequest(created), nil
}

func (c *client) ClosePullRequest(ctx context.Context, owner, repo string, number int) error {
	_, _, err := c.pullRequests.Edit(ctx, owner, repo, number, &gh.PullRequest{State: gh.Ptr("closed")})
	return err
}
