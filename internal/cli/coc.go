package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/internal/policy"
	"github.com/tracker-tv/github-admin-bots/internal/ratelimit"
	"github.com/tracker-tv/github-admin-bots/internal/retry"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

var errNoTargets = errors.New("no repositories or organizations given")

func (app *Application) newCoCCommand() *cobra.Command {
	var live bool

	cmd := &cobra.Command{
		Use:   "coc [owner/repo | org]...",
		Short: "Check repositories for a correct code of conduct file",
		Long: "Evaluates each repository, or every repository of each organization, against the code of conduct policy " +
			"and prints the plan. With --live the plan is carried out: issues and pull requests are opened.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			targets := args
			if len(targets) == 0 {
				targets = app.settings.CoC.Targets
			}
			if len(targets) == 0 {
				return errNoTargets
			}

			client, err := app.client()
			if err != nil {
				return err
			}
			pol, err := policy.CodeOfConduct()
			if err != nil {
				return fmt.Errorf("loading code of conduct policy: %w", err)
			}

			identity, err := client.Me(ctx)
			if err != nil {
				return fmt.Errorf("resolving bot identity: %w", err)
			}
			approved := app.settings.CoC.ApprovedAccount
			if approved == "" {
				approved = pol.ApprovedAccount
			}
			if err := orchestrator.CheckIdentity(identity, approved, live, app.logger); err != nil {
				return err
			}

			var contents string
			if live {
				contents, err = service.NewTemplateService(nil).Fetch(ctx, pol.TemplateURL)
				if err != nil {
					return fmt.Errorf("downloading %s: %w", pol.TemplateURL, err)
				}
			}

			guard := ratelimit.NewGuard(client, app.settings.Quota.MinRemaining, app.logger)
			exit := &exitcode.Tracker{}
			bot := orchestrator.NewCoCBot(orchestrator.CoCBotConfig{
				Repos:       service.NewRepositoriesService(client),
				Evaluator:   service.NewComplianceService(client, pol, identity),
				Dispatcher:  service.NewDispatchService(client, pol, identity, contents, guard, app.logger),
				Quota:       guard,
				Queue:       retry.New(app.settings.CoC.RetryBackoff, service.IsRetryable, app.logger),
				MaxAttempts: app.settings.CoC.MaxAttempts,
				Live:        live,
			}, app.printer(), exit, app.logger)

			if err := bot.Run(ctx, targets); err != nil {
				return err
			}
			return exit.Err()
		},
	}

	cmd.Flags().BoolVar(&live, "live", false, "carry out the plan instead of only printing it")
	return cmd
}
