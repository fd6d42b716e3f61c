package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

const (
	roleAll            = "all"
	roleAdmin          = "admin"
	filterAll          = "all"
	filterTwoFADisable = "2fa_disabled"
	noPublicEmail      = "no public email address"
)

var ErrTeamNotFound = errors.New("team not found")

type MemberService interface {
	// List returns the organization owners, or every member when ownersOnly is false.
	List(ctx context.Context, org string, ownersOnly bool) ([]models.Member, error)
	// WithoutTwoFactor returns the members, or only the owners, that have 2FA disabled.
	WithoutTwoFactor(ctx context.Context, org string, ownersOnly bool) ([]models.Member, error)
	// Contact returns the public email of login, or a placeholder when there is none.
	Contact(ctx context.Context, login string) (string, error)
	// Profile fills in name and public email.
	Profile(ctx context.Context, login string) (models.Member, error)
	// SyncTeam makes the roster of the team named teamName exactly logins. Changes stop at
	// the first failure; the partial outcome is returned with the error.
	SyncTeam(ctx context.Context, org, teamName string, logins []string) (models.TeamSync, error)
}

type memberService struct {
	gh github.Client
}

func NewMemberService(gh github.Client) MemberService {
	return &memberService{gh: gh}
}

func (s *memberService) List(ctx context.Context, org string, ownersOnly bool) ([]models.Member, error) {
	members, err := s.gh.ListMembers(ctx, org, role(ownersOnly), filterAll)
	if err != nil {
		return nil, fmt.Errorf("listing members of %s: %w", org, err)
	}
	return members, nil
}

func (s *memberService) WithoutTwoFactor(ctx context.Context, org string, ownersOnly bool) ([]models.Member, error) {
	members, err := s.gh.ListMembers(ctx, org, role(ownersOnly), filterTwoFADisable)
	if err != nil {
		return nil, fmt.Errorf("listing members of %s without 2FA: %w", org, err)
	}
	return members, nil
}

func (s *memberService) Contact(ctx context.Context, login string) (string, error) {
	member, err := s.Profile(ctx, login)
	if err != nil {
		return "", err
	}
	if member.Email == "" {
		return noPublicEmail, nil
	}
	return member.Email, nil
}

func (s *memberService) Profile(ctx context.Context, login string) (models.Member, error) {
	member, err := s.gh.GetUser(ctx, login)
	if err != nil {
		return models.Member{}, fmt.Errorf("getting user %s: %w", login, err)
	}
	return member, nil
}

func (s *memberService) SyncTeam(ctx context.Context, org, teamName string, logins []string) (models.TeamSync, error) {
	team, err := FindTeam(ctx, s.gh, org, teamName)
	if err != nil {
		return models.TeamSync{}, err
	}

	current, err := s.gh.ListTeamMembers(ctx, org, team.Slug)
	if err != nil {
		return models.TeamSync{}, fmt.Errorf("listing members of team %s: %w", team.Name, err)
	}

	sync := models.TeamSync{Team: team}
	toRemove := difference(current, logins)
	toAdd := difference(logins, current)
	sync.Unchanged = intersection(logins, current)

	for _, login := range toRemove {
		if err := s.gh.RemoveTeamMember(ctx, org, team.Slug, login); err != nil {
			return sync, fmt.Errorf("removing %s from team %s: %w", login, team.Name, err)
		}
		sync.Removed = append(sync.Removed, login)
	}
	for _, login := range toAdd {
		if err := s.gh.AddTeamMember(ctx, org, team.Slug, login); err != nil {
			return sync, fmt.Errorf("adding %s to team %s: %w", login, team.Name, err)
		}
		sync.Added = append(sync.Added, login)
	}
	return sync, nil
}

// FindTeam looks a team up by its display name.
func FindTeam(ctx context.Context, gh github.Client, org, name string) (models.Team, error) {
	teams, err := gh.ListTeams(ctx, org)
	if err != nil {
		return models.Team{}, fmt.Errorf("listing teams of %s: %w", org, err)
	}
	for _, team := range teams {
		if team.Name == name {
			return team, nil
		}
	}
	return models.Team{}, fmt.Errorf("%s in %s: %w", name, org, ErrTeamNotFound)
}

// Logins extracts the logins of members.
func Logins(members []models.Member) []string {
	logins := make([]string, 0, len(members))
	for _, m := range members {
		logins = append(logins, m.Login)
	}
	return logins
}

func role(ownersOnly bool) string {
	if ownersOnly {
		return roleAdmin
	}
	return roleAll
}

// difference returns the sorted logins of a not in b.
func difference(a, b []string) []string {
	var out []string
	for _, login := range a {
		if !slices.Contains(b, login) && !slices.Contains(out, login) {
			out = append(out, login)
		}
	}
	slices.Sort(out)
	return out
}

// intersection returns the sorted logins present in both a and b.
func intersection(a, b []string) []string {
	var out []string
	for _, login := range a {
		if slices.Contains(b, login) && !slices.Contains(out, login) {
			out = append(out, login)
		}
	}
	slices.Sort(out)
	return out
}
