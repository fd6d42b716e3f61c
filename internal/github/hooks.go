package github

import (
	"context"
	"fmt"
	"net/url"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

func (c *client) ListHooks(ctx context.Context, owner, repo string) ([]models.HookInfo, error) {
	hooks, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.Hook, *gh.Response, error) {
		return c.repositories.ListHooks(ctx, owner, repo, &opts)
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.HookInfo, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		result = append(result, models.HookInfo{
			ID:         hook.GetID(),
			Repository: repo,
			Name:       hook.GetName(),
			URL:        hookEndpoint(hook.GetConfig().GetURL()),
			Active:     hook.GetActive(),
		})
	}
	return result, nil
}

func (c *client) PingHook(ctx context.Context, owner, repo string, id int64) error {
	_, err := c.repositories.PingHook(ctx, owner, repo, id)
	return err
}

// hookEndpoint keeps scheme, host and port only. Hook URLs may embed credentials or
// tokens in userinfo, path or query.
func hookEndpoint(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s://%s:%s", u.Scheme, u.Hostname(), u.Port())
}
