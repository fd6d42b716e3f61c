package orchestrator

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/service"
	"github.com/tracker-tv/github-admin-bots/models"
)

// MemberReport prints organization rosters and keeps the teams mirroring them up to date.
type MemberReport struct {
	members service.MemberService
	out     *report.Printer
	exit    *exitcode.Tracker
	logger  *zap.Logger
}

func NewMemberReport(members service.MemberService, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *MemberReport {
	return &MemberReport{members: members, out: out, exit: exit, logger: logger}
}

// MissingTwoFactor lists members, or owners, without 2FA with their contact address. With
// team set, the team is synced to exactly those members instead.
func (r *MemberReport) MissingTwoFactor(ctx context.Context, org string, ownersOnly bool, team string) error {
	userType := "members"
	if ownersOnly {
		userType = "admins"
	}

	offenders, err := r.members.WithoutTwoFactor(ctx, org, ownersOnly)
	if err != nil {
		return err
	}

	switch {
	case len(offenders) == 0:
		r.out.Line("Congrats! All %s have 2FA enabled in %s!", userType, org)
	case team != "":
		r.out.Line("There are %d %s that DO NOT HAVE 2FA for org %s:", len(offenders), userType, org)
	default:
		r.out.Line("The following %d %s DO NOT HAVE 2FA for org %s:", len(offenders), userType, org)
		for _, m := range offenders {
			contact, err := r.members.Contact(ctx, m.Login)
			if err != nil {
				r.logger.Warn("looking up contact", zap.String("login", m.Login), zap.Error(err))
				contact = "?"
			}
			r.out.Line("%s %s", m.Login, contact)
		}
	}

	if team != "" {
		r.sync(ctx, org, team, service.Logins(offenders), false)
	}
	return nil
}

// Roster counts owners or members. With teamPrefix set, the team named teamPrefix
// followed by "owners" or "members" is synced to the roster.
func (r *MemberReport) Roster(ctx context.Context, org string, ownersOnly bool, teamPrefix string, verbose bool) error {
	userType := "members"
	if ownersOnly {
		userType = "owners"
	}

	members, err := r.members.List(ctx, org, ownersOnly)
	if err != nil {
		return err
	}
	if len(members) > 0 {
		r.out.Line("There are %d %s for org %s:", len(members), userType, org)
	} else {
		r.out.Line("Error: no %s found for %s", userType, org)
	}

	if teamPrefix != "" {
		r.sync(ctx, org, teamPrefix+userType, service.Logins(members), verbose)
	}
	return nil
}

func (r *MemberReport) sync(ctx context.Context, org, team string, logins []string, verbose bool) {
	result, err := r.members.SyncTeam(ctx, org, team, logins)
	printSync(r.out, result, verbose)
	if err != nil {
		r.logger.Warn("team update failed", zap.String("organization", org), zap.String("team", team), zap.Error(err))
		printPermissionHint(r.out, team, org)
		r.exit.Raise(exitcode.Failure)
	}
}

func printSync(out *report.Printer, sync models.TeamSync, verbose bool) {
	out.Count(len(sync.Removed), "alumni")
	if verbose {
		for _, login := range sync.Removed {
			out.Indented(4, login+" has departed")
		}
	}
	out.Count(len(sync.Added), "new")
	for _, login := range sync.Added {
		out.Indented(4, login+" is new")
	}
	out.Count(len(sync.Unchanged), "no change")
}

func printPermissionHint(out *report.Printer, team, org string) {
	out.Warning("Updates were not made to team '%s' in '%s'.", team, org)
	out.Warning("Make sure your API token has 'admin:org' permissions for that organization.")
}

// TwoFactorEnforcer walks members without 2FA down the warning ladder.
type TwoFactorEnforcer struct {
	members     service.MemberService
	enforcement service.EnforcementService
	out         *report.Printer
	exit        *exitcode.Tracker
	logger      *zap.Logger
}

func NewTwoFactorEnforcer(members service.MemberService, enforcement service.EnforcementService, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *TwoFactorEnforcer {
	return &TwoFactorEnforcer{members: members, enforcement: enforcement, out: out, exit: exit, logger: logger}
}

// Run prints the ladder moves for org and, unless dryRun, applies them.
func (e *TwoFactorEnforcer) Run(ctx context.Context, org string, ownersOnly, dryRun bool) error {
	userType := "members"
	if ownersOnly {
		userType = "admins"
	}

	offenders, err := e.members.WithoutTwoFactor(ctx, org, ownersOnly)
	if err != nil {
		return err
	}
	if len(offenders) == 0 {
		e.out.Line("Congrats! All %s have 2FA enabled in %s!", userType, org)
	} else {
		e.out.Line("There are %d %s that DO NOT HAVE 2FA for org %s:", len(offenders), userType, org)
	}

	plan, err := e.enforcement.Plan(ctx, org, service.Logins(offenders))
	if err != nil {
		return err
	}

	for _, tier := range plan.Tiers {
		e.out.Count(len(tier.Compliant), "alumni")
		if tier.Destination == nil {
			e.out.Count(len(tier.Offenders), "being removed from org "+org)
			for _, login := range tier.Offenders {
				e.out.Indented(4, login+" is being removed")
			}
			continue
		}
		e.out.Count(len(tier.Offenders), "being moved from team "+tier.Team.Name)
	}
	e.out.Count(len(plan.Newcomers), "being added to team "+plan.Entry.Name)
	for _, login := range plan.Newcomers {
		e.out.Indented(4, login+" is new")
	}

	if dryRun {
		return nil
	}
	if err := e.enforcement.Apply(ctx, plan); err != nil {
		printPermissionHint(e.out, plan.Entry.Name, org)
		return fmt.Errorf("enforcing 2FA in %s: %w", org, err)
	}
	return nil
}
