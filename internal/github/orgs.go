package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

func (c *client) GetOrganization(ctx context.Context, org string) (models.Organization, error) {
	o, _, err := withRetry(ctx, func() (*gh.Organization, *gh.Response, error) {
		return c.organizations.Get(ctx, org)
	})
	if err != nil {
		return models.Organization{}, err
	}

	return models.Organization{
		ID:                o.GetID(),
		Login:             o.GetLogin(),
		Name:              o.GetName(),
		Type:              o.GetType(),
		Email:             o.GetEmail(),
		BillingEmail:      o.GetBillingEmail(),
		OwnedPrivateRepos: o.GetOwnedPrivateRepos(),
		PlanName:          o.GetPlan().GetName(),
		FilledSeats:       o.GetPlan().GetFilledSeats(),
	}, nil
}

// ListMembers lists organization members. role is "all", "admin" or "member"; filter is
// "all" or "2fa_disabled".
func (c *client) ListMembers(ctx context.Context, org, role, filter string) ([]models.Member, error) {
	users, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.User, *gh.Response, error) {
		return c.organizations.ListMembers(ctx, org, &gh.ListMembersOptions{
			Role:        role,
			Filter:      filter,
			ListOptions: opts,
		})
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.Member, 0, len(users))
	for _, u := range users {
		if u == nil {
			continue
		}
		result = append(result, toMember(u))
	}
	return result, nil
}

func (c *client) GetMembership(ctx context.Context, org, login string) (models.Membership, error) {
	m, _, err := c.organizations.GetOrgMembership(ctx, login, org)
	if err != nil {
		return models.Membership{}, err
	}
	return models.Membership{
		Login: m.GetUser().GetLogin(),
		Role:  m.GetRole(),
		State: m.GetState(),
	}, nil
}

func (c *client) RemoveOrgMember(ctx context.Context, org, login string) error {
	_, err := c.organizations.RemoveOrgMembership(ctx, login, org)
	return err
}

func (c *client) RemoveOutsideCollaborator(ctx context.Context, org, login string) error {
	_, err := c.organizations.RemoveOutsideCollaborator(ctx, org, login)
	return err
}

func (c *client) ListInvitations(ctx context.Context, org string) ([]models.Invitation, error) {
	invitations, err := listAll(ctx, func(opts gh.ListOptions) ([]*gh.Invitation, *gh.Response, error) {
		return c.organizations.ListPendingOrgInvitations(ctx, org, &opts)
	})
	if err != nil {
		return nil, err
	}

	result := make([]models.Invitation, 0, len(invitations))
	for _, inv := range invitations {
		if inv == nil {
			continue
		}
		result = append(result, models.Invitation{
			ID:        inv.GetID(),
			Login:     inv.GetLogin(),
			Email:     inv.GetEmail(),
			Inviter:   inv.GetInviter().GetLogin(),
			CreatedAt: inv.GetCreatedAt().Time,
		})
	}
	return result, nil
}

func (c *client) CancelInvitation(ctx context.Context, org string, id int64) error {
	_, err := c.organizations.CancelInvite(ctx, org, id)
	return err
}
