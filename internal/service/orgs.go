package service

import (
	"context"
	"fmt"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

type OrganizationService interface {
	Info(ctx context.Context, org string) (models.Organization, error)
	// Owners returns the organization owners with their profile name and public email.
	Owners(ctx context.Context, org string) ([]models.Member, error)
}

type organizationService struct {
	gh github.Client
}

func NewOrganizationService(gh github.Client) OrganizationService {
	return &organizationService{gh: gh}
}

func (s *organizationService) Info(ctx context.Context, org string) (models.Organization, error) {
	o, err := s.gh.GetOrganization(ctx, org)
	if err != nil {
		return models.Organization{}, fmt.Errorf("getting organization %s: %w", org, err)
	}
	if o.Login == "" {
		o.Login = org
	}
	return o, nil
}

func (s *organizationService) Owners(ctx context.Context, org string) ([]models.Member, error) {
	owners, err := s.gh.ListMembers(ctx, org, roleAdmin, filterAll)
	if err != nil {
		return nil, fmt.Errorf("listing owners of %s: %w", org, err)
	}

	result := make([]models.Member, 0, len(owners))
	for _, owner := range owners {
		profile, err := s.gh.GetUser(ctx, owner.Login)
		if err != nil {
			return nil, fmt.Errorf("getting user %s: %w", owner.Login, err)
		}
		result = append(result, profile)
	}
	return result, nil
}
