package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

var errNoTracker = errors.New("members.tracker_repository and members.tracker_issue must be set to enforce 2FA")

func (app *Application) newTwoFactorCommand() *cobra.Command {
	var admins, updateTeam bool

	cmd := &cobra.Command{
		Use:   "2fa ORG",
		Short: "List members without two factor authentication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}

			var team string
			if updateTeam {
				team = app.settings.Members.WarningTeamPrefix
			}
			exit := &exitcode.Tracker{}
			r := orchestrator.NewMemberReport(service.NewMemberService(client), app.printer(), exit, app.logger)
			if err := r.MissingTwoFactor(cmd.Context(), args[0], admins, team); err != nil {
				return err
			}
			return exit.Err()
		},
	}

	cmd.Flags().BoolVar(&admins, "admins", false, "only check organization owners")
	cmd.Flags().BoolVar(&updateTeam, "update-team", false, "make the 2FA warning team contain exactly these members")
	return cmd
}

func (app *Application) newEnforceTwoFactorCommand() *cobra.Command {
	var admins, dryRun bool

	cmd := &cobra.Command{
		Use:   "enforce-2fa ORG",
		Short: "Move members without two factor authentication down the warning ladder",
		Long: "Members still without 2FA move one warning team closer to the final one. Those already on the " +
			"final warning team are removed from the organization.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := app.tracker(dryRun)
			if err != nil {
				return err
			}
			client, err := app.client()
			if err != nil {
				return err
			}

			enforcement := service.NewEnforcementService(client, app.settings.Members.WarningTeamPrefix, tracker, app.logger)
			e := orchestrator.NewTwoFactorEnforcer(service.NewMemberService(client), enforcement, app.printer(), &exitcode.Tracker{}, app.logger)
			return e.Run(cmd.Context(), args[0], admins, dryRun)
		},
	}

	cmd.Flags().BoolVar(&admins, "admins", false, "only check organization owners")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report the moves without making them")
	return cmd
}

// tracker returns the issue warned teams are mentioned on. It may be unset for dry runs.
func (app *Application) tracker(dryRun bool) (service.Tracker, error) {
	s := app.settings.Members
	if s.TrackerRepository == "" || s.TrackerIssue <= 0 {
		if dryRun {
			return service.Tracker{}, nil
		}
		return service.Tracker{}, errNoTracker
	}
	owner, repo, err := service.SplitFullName(s.TrackerRepository)
	if err != nil {
		return service.Tracker{}, fmt.Errorf("members.tracker_repository: %w", err)
	}
	return service.Tracker{Owner: owner, Repository: repo, Issue: s.TrackerIssue}, nil
}

func (app *Application) newMembersCommand() *cobra.Command {
	var owners, updateTeam, verbose bool

	cmd := &cobra.Command{
		Use:   "members ORG",
		Short: "Count organization members or owners",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}

			var prefix string
			if updateTeam {
				prefix = app.settings.Members.TeamPrefix
			}
			exit := &exitcode.Tracker{}
			r := orchestrator.NewMemberReport(service.NewMemberService(client), app.printer(), exit, app.logger)
			if err := r.Roster(cmd.Context(), args[0], owners, prefix, verbose); err != nil {
				return err
			}
			return exit.Err()
		},
	}

	cmd.Flags().BoolVar(&owners, "owners", false, "count owners instead of members")
	cmd.Flags().BoolVar(&updateTeam, "update-team", false, "make the roster team contain exactly these users")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list departed users")
	return cmd
}
