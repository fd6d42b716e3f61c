package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

// GetTree returns the root level entries of the tree at ref.
func (c *client) GetTree(ctx context.Context, owner, repo, ref string) ([]models.TreeEntry, error) {
	tree, _, err := withRetry(ctx, func() (*gh.Tree, *gh.Response, error) {
		return c.git.GetTree(ctx, owner, repo, ref, false)
	})
	if err != nil {
		return nil, err
	}

	entries := make([]models.TreeEntry, 0, len(tree.Entries))
	for _, e := range tree.Entries {
		if e == nil {
			continue
		}
		entries = append(entries, models.TreeEntry{
			Path: e.GetPath(),
			Type: e.GetType(),
			SHA:  e.GetSHA(),
		})
	}
	return entries, nil
}

func (c *client) GetBlob(ctx context.Context, owner, repo, sha string) (string, error) {
	raw, _, err := withRetry(ctx, func() ([]byte, *gh.Response, error) {
		return c.git.GetBlobRaw(ctx, owner, repo, sha)
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
