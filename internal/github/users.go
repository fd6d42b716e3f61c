package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

// Me returns the login of the authenticated identity.
func (c *client) Me(ctx context.Context) (string, error) {
	u, _, err := c.users.Get(ctx, "")
	if err != nil {
		return "", err
	}
	return u.GetLogin(), nil
}

func (c *client) GetUser(ctx context.Context, login string) (models.Member, error) {
	u, _, err := withRetry(ctx, func() (*gh.User, *gh.Response, error) {
		return c.users.Get(ctx, login)
	})
	if err != nil {
		return models.Member{}, err
	}
	return toMember(u), nil
}

func (c *client) RateLimit(ctx context.Context) (models.Quota, error) {
	limits, _, err := c.rateLimit.Get(ctx)
	if err != nil {
		return models.Quota{}, err
	}

	core := limits.GetCore()
	if core == nil {
		return models.Quota{}, fmt.Errorf("rate limit response has no core quota")
	}
	return models.Quota{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		Reset:     core.Reset.Time,
	}, nil
}
