package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

// CreateFile commits a new file. An empty branch commits to the default branch.
func (c *client) CreateFile(ctx context.Context, owner, repo, path, branch, message, content string) error {
	opts := &gh.RepositoryContentFileOptions{
		Message: gh.Ptr(message),
		Content: []byte(content),
	}
	if branch != "" {
		opts.Branch = gh.Ptr(branch)
	}

	_, _, err := c.repositories.CreateFile(ctx, owner, repo, path, opts)
	return err
}
