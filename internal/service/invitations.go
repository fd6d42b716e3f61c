package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

type InvitationService interface {
	// Stale returns pending invitations extended before cutoff, oldest first.
	Stale(ctx context.Context, org string, cutoff time.Time) ([]models.Invitation, error)
	Cancel(ctx context.Context, org string, invitation models.Invitation) error
}

type invitationService struct {
	gh github.Client
}

func NewInvitationService(gh github.Client) InvitationService {
	return &invitationService{gh: gh}
}

func (s *invitationService) Stale(ctx context.Context, org string, cutoff time.Time) ([]models.Invitation, error) {
	invitations, err := s.gh.ListInvitations(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("listing invitations of %s: %w", org, err)
	}

	var stale []models.Invitation
	for _, inv := range invitations {
		if inv.CreatedAt.Before(cutoff) {
			stale = append(stale, inv)
		}
	}
	slices.SortStableFunc(stale, func(a, b models.Invitation) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return stale, nil
}

func (s *invitationService) Cancel(ctx context.Context, org string, invitation models.Invitation) error {
	if err := s.gh.CancelInvitation(ctx, org, invitation.ID); err != nil {
		return fmt.Errorf("cancelling invitation of %s to %s: %w", invitation.Login, org, err)
	}
	return nil
}
