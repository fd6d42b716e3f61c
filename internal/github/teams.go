package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

func (c *client) ListTeams(ctx context.Context, org string) ([]models.Team, error) {
	teams, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.Team, *gh.Response, error) {
		return c.teams.ListTeams(ctx, org, &opts)
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.Team, 0, len(teams))
	for _, t := range teams {
		if t == nil {
			continue
		}
		result = append(result, models.Team{ID: t.GetID(), Name: t.GetName(), Slug: t.GetSlug()})
	}
	return result, nil
}

func (c *client) ListTeamMembers(ctx context.Context, org, slug string) ([]string, error) {
	users, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.User, *gh.Response, error) {
		return c.teams.ListTeamMembersBySlug(ctx, org, slug, &gh.TeamListTeamMembersOptions{ListOptions: opts})
	})
	if err != nil {
		return nil, err
	}

	logins := make([]string, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		logins = append(logins, u.GetLogin())
	}
	return logins, nil
}

func (c *client) AddTeamMember(ctx context.Context, org, slug, login string) error {
	_, _, err := c.teams.AddTeamMembershipBySlug(ctx, org, slug, login, nil)
	return err
}

func (c *client) RemoveTeamMember(ctx context.Context, org, slug, login string) error {
	_, err := c.teams.RemoveTeamMembershipBySlug(ctx, org, slug, login)
	return err
}
