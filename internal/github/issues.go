package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

// ListOpenIssues lists open issues only; the issues endpoint also returns pull requests,
// which are filtered out here.
func (c *client) ListOpenIssues(ctx context.Context, owner, repo string) ([]models.Issue, error) {
	issues, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.Issue, *gh.Response, error) {
		return c.issues.ListByRepo(ctx, owner, repo, &gh.IssueListByRepoOptions{State: "open", ListOptions: opts})
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue == nil || issue.IsPullRequest() {
			continue
		}
		result = append(result, toIssue(issue))
	}
	return result, nil
}

func (c *client) GetIssue(ctx context.Context, owner, repo string, number int) (models.Issue, error) {
	issue, _, err := c.issues.Get(ctx, owner, repo, number)
	if err != nil {
		return models.Issue{}, err
	}
	return toIssue(issue), nil
}

func (c *client) CreateIssue(ctx context.Context, owner, repo, title, body string) (models.Issue, error) {
	issue, _, err := c.issues.Create(ctx, owner, repo, &gh.IssueRequest{
		Title: gh.Ptr(title),
		Body:  gh.Ptr(body),
	})
	if err != nil {
		return models.Issue{}, err
	}
	return toIssue(issue), nil
}

func (c *client) CommentOnIssue(ctx context.Context, owner, repo string, number int, body string) error {
	_, _, err := c.issues.CreateComment(ctx, owner, repo, number, &gh.IssueComment{Body: gh.Ptr(body)})
	return err
}

func (c *client) LockIssue(ctx context.Context, owner, repo string, number int) error {
	_, err := c.issues.Lock(ctx, owner, repo, number, nil)
	return err
}
