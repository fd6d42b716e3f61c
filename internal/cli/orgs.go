package cli

import (
	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

func (app *Application) newOrgInfoCommand() *cobra.Command {
	var owners, emails bool

	cmd := &cobra.Command{
		Use:   "org-info ORG...",
		Short: "Print the identifiers and plan of organizations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}
			exit := &exitcode.Tracker{}
			r := orchestrator.NewOrgInfoReport(service.NewOrganizationService(client), app.printer(), exit, app.logger)
			r.Run(cmd.Context(), args, owners, emails)
			return exit.Err()
		},
	}

	cmd.Flags().BoolVar(&owners, "owners", false, "list the organization owners")
	cmd.Flags().BoolVar(&emails, "email", false, "list the owners with their email address")
	return cmd
}

func (app *Application) newOldReposCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "old-repos ORG",
		Short: "List small and long untouched repositories",
		Long:  "The repository listing is cached in cache.path. Delete that file to refresh it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}
			cache, err := app.openCache()
			if err != nil {
				return err
			}
			defer app.closeCache(cache)

			r := orchestrator.NewStaleRepoReport(service.NewInventoryService(client, cache, app.logger), app.printer(), app.logger)
			return r.Run(cmd.Context(), args[0], app.settings.Cache.Path)
		},
	}
}

func (app *Application) newRemoveMemberCommand() *cobra.Command {
	var (
		login  string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "remove-member --login LOGIN ORG...",
		Short: "Remove a user from organizations",
		Long:  "Removes the membership, unless the user is an owner, and any outside collaborator access.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}
			exit := &exitcode.Tracker{}
			r := orchestrator.NewMemberRemover(service.NewRemovalService(client, app.logger), app.printer(), exit, app.logger)
			r.Run(cmd.Context(), args, login, dryRun)
			return exit.Err()
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "user to remove")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report without removing")
	_ = cmd.MarkFlagRequired("login")
	return cmd
}
