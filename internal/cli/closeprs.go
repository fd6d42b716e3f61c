package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/config"
	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/internal/service"
	"github.com/tracker-tv/github-admin-bots/models"
)

func (app *Application) newClosePullRequestsCommand() *cobra.Command {
	var (
		only, message, targetsFile string
		closePRs, lock, dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "close-prs",
		Short: "List or close pull requests on repositories that do not take them",
		Long: "Targets come from --only or from the YAML list in close_prs.config. " +
			"Without --close open pull requests are only listed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var targets []models.CloseTarget
			if only != "" {
				owner, repo, err := service.SplitFullName(only)
				if err != nil {
					return fmt.Errorf("--only: %w", err)
				}
				targets = []models.CloseTarget{{
					Organization: owner,
					Repository:   repo,
					Message:      message,
					Close:        closePRs,
					Lock:         lock,
				}}
			} else {
				path := targetsFile
				if path == "" {
					path = app.settings.ClosePRs.Config
				}
				loaded, err := config.LoadCloseTargetsFile(path)
				if err != nil {
					return err
				}
				targets = loaded
			}

			client, err := app.client()
			if err != nil {
				return err
			}
			exit := &exitcode.Tracker{}
			closer := orchestrator.NewPullRequestCloser(service.NewPullRequestService(client), app.printer(), exit, app.logger)
			closer.Run(cmd.Context(), targets, dryRun)
			return exit.Err()
		},
	}

	cmd.Flags().StringVar(&only, "only", "", "only process this owner/repo instead of the configured list")
	cmd.Flags().StringVar(&message, "message", service.DefaultCloseMessage, "comment left when closing, with --only")
	cmd.Flags().BoolVar(&closePRs, "close", false, "close the open pull requests, with --only")
	cmd.Flags().BoolVar(&lock, "lock", false, "lock the conversation after closing, with --only")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "only list, whatever the targets ask for")
	cmd.Flags().StringVar(&targetsFile, "targets-file", "", "YAML list of targets (default from close_prs.config)")
	return cmd
}
