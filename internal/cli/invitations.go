package cli

import (
	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

func (app *Application) newInvitationsCommand() *cobra.Command {
	var cancel bool

	cmd := &cobra.Command{
		Use:   "invitations ORG...",
		Short: "Report, and optionally cancel, invitations nobody accepted",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff := app.settings.Invitations.Cutoff
			if f := cmd.Flags().Lookup("cutoff"); f.Changed {
				d, err := cmd.Flags().GetDuration("cutoff")
				if err != nil {
					return err
				}
				cutoff = d
			}

			client, err := app.client()
			if err != nil {
				return err
			}
			exit := &exitcode.Tracker{}
			r := orchestrator.NewInvitationReport(service.NewInvitationService(client), app.printer(), exit, app.logger)
			if err := r.Run(cmd.Context(), args, cutoff, cancel); err != nil {
				return err
			}
			return exit.Err()
		},
	}

	cmd.Flags().BoolVar(&cancel, "cancel", false, "cancel the reported invitations")
	cmd.Flags().Duration("cutoff", 0, "report invitations older than this (default from invitations.cutoff)")
	return cmd
}
