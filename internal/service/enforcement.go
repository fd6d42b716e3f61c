package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

const trackerComment = "To: @%s/%s - please enable 2FA for your GitHub account. " +
	"Failure to do so will result in removal from the organization.\n" +
	"See [these instructions](https://docs.github.com/en/authentication/securing-your-account-with-two-factor-authentication-2fa) " +
	"for additional information."

var (
	ErrNoWarningTeams    = errors.New("no warning teams")
	ErrInconsistentState = errors.New("inconsistent state, check manually")
)

// Tracker is the issue whose comments notify warned teams.
type Tracker struct {
	Owner      string
	Repository string
	Issue      int
}

// EnforcementService moves members without 2FA down a ladder of warning teams until they
// are removed from the organization.
type EnforcementService interface {
	Plan(ctx context.Context, org string, offenders []string) (models.LadderPlan, error)
	Apply(ctx context.Context, plan models.LadderPlan) error
}

type enforcementService struct {
	gh         github.Client
	teamPrefix string
	tracker    Tracker
	logger     *zap.Logger
}

func NewEnforcementService(gh github.Client, teamPrefix string, tracker Tracker, logger *zap.Logger) EnforcementService {
	return &enforcementService{gh: gh, teamPrefix: teamPrefix, tracker: tracker, logger: logger}
}

// Plan reads the warning teams, sorted by name with the final warning first, and works
// out who leaves, who moves and who is removed. It makes no changes.
func (s *enforcementService) Plan(ctx context.Context, org string, offenders []string) (models.LadderPlan, error) {
	teams, err := s.gh.ListTeams(ctx, org)
	if err != nil {
		return models.LadderPlan{}, fmt.Errorf("listing teams of %s: %w", org, err)
	}

	var ladder []models.Team
	for _, team := range teams {
		if strings.HasPrefix(team.Name, s.teamPrefix) {
			ladder = append(ladder, team)
		}
	}
	if len(ladder) == 0 {
		return models.LadderPlan{}, fmt.Errorf("%s in %s: %w", s.teamPrefix, org, ErrNoWarningTeams)
	}
	slices.SortFunc(ladder, func(a, b models.Team) int { return strings.Compare(a.Name, b.Name) })

	remaining := slices.Clone(offenders)
	plan := models.LadderPlan{Organization: org, Entry: ladder[len(ladder)-1]}
	for i, team := range ladder {
		current, err := s.gh.ListTeamMembers(ctx, org, team.Slug)
		if err != nil {
			return models.LadderPlan{}, fmt.Errorf("listing members of team %s: %w", team.Name, err)
		}

		tier := models.Tier{
			Team:      team,
			Compliant: difference(current, remaining),
			Offenders: intersection(remaining, current),
		}
		if i > 0 {
			dest := ladder[i-1]
			tier.Destination = &dest
		}
		plan.Tiers = append(plan.Tiers, tier)
		remaining = difference(remaining, tier.Offenders)
	}
	plan.Newcomers = remaining

	return plan, nil
}

// Apply executes plan. A destination tier must be empty before it receives members.
func (s *enforcementService) Apply(ctx context.Context, plan models.LadderPlan) error {
	org := plan.Organization

	for _, tier := range plan.Tiers {
		for _, login := range tier.Compliant {
			if err := s.gh.RemoveTeamMember(ctx, org, tier.Team.Slug, login); err != nil {
				return fmt.Errorf("removing %s from team %s: %w", login, tier.Team.Name, err)
			}
		}

		if tier.Destination == nil {
			for _, login := range tier.Offenders {
				if err := s.gh.RemoveOrgMember(ctx, org, login); err != nil {
					return fmt.Errorf("removing %s from %s: %w", login, org, err)
				}
				// Leaving the organization usually drops the team membership already.
				if err := s.gh.RemoveTeamMember(ctx, org, tier.Team.Slug, login); err != nil && !github.IsNotFound(err) {
					return fmt.Errorf("removing %s from team %s: %w", login, tier.Team.Name, err)
				}
				s.logger.Info("removed member without 2FA", zap.String("organization", org), zap.String("login", login))
			}
			continue
		}

		if err := s.ensureEmpty(ctx, org, *tier.Destination); err != nil {
			return err
		}
		for _, login := range tier.Offenders {
			if err := s.gh.AddTeamMember(ctx, org, tier.Destination.Slug, login); err != nil {
				return fmt.Errorf("adding %s to team %s: %w", login, tier.Destination.Name, err)
			}
			if err := s.gh.RemoveTeamMember(ctx, org, tier.Team.Slug, login); err != nil {
				return fmt.Errorf("removing %s from team %s: %w", login, tier.Team.Name, err)
			}
		}
		if len(tier.Offenders) > 0 {
			if err := s.notify(ctx, org, *tier.Destination); err != nil {
				return err
			}
		}
	}

	if err := s.ensureEmpty(ctx, org, plan.Entry); err != nil {
		return err
	}
	for _, login := range plan.Newcomers {
		if err := s.gh.AddTeamMember(ctx, org, plan.Entry.Slug, login); err != nil {
			return fmt.Errorf("adding %s to team %s: %w", login, plan.Entry.Name, err)
		}
	}
	if len(plan.Newcomers) > 0 {
		return s.notify(ctx, org, plan.Entry)
	}
	return nil
}

func (s *enforcementService) ensureEmpty(ctx context.Context, org string, team models.Team) error {
	members, err := s.gh.ListTeamMembers(ctx, org, team.Slug)
	if err != nil {
		return fmt.Errorf("listing members of team %s: %w", team.Name, err)
	}
	if len(members) > 0 {
		return fmt.Errorf("team %s still has %d members: %w", team.Name, len(members), ErrInconsistentState)
	}
	return nil
}

// notify mentions the team on the tracker issue so GitHub emails its members.
func (s *enforcementService) notify(ctx context.Context, org string, team models.Team) error {
	body := fmt.Sprintf(trackerComment, org, team.Slug)
	if err := s.gh.CommentOnIssue(ctx, s.tracker.Owner, s.tracker.Repository, s.tracker.Issue, body); err != nil {
		return fmt.Errorf("commenting on %s/%s#%d: %w", s.tracker.Owner, s.tracker.Repository, s.tracker.Issue, err)
	}
	return nil
}
