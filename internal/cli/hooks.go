package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-admin-bots/internal/auditlog"
	"github.com/tracker-tv/github-admin-bots/internal/orchestrator"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

func (app *Application) newHooksCommand() *cobra.Command {
	var (
		opts     orchestrator.HookOptions
		useCache bool
	)

	cmd := &cobra.Command{
		Use:   "hooks ORG",
		Short: "Report the hooks installed on every repository of an organization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.client()
			if err != nil {
				return err
			}

			var cache service.Cache
			if useCache {
				s, err := app.openCache()
				if err != nil {
					return err
				}
				defer app.closeCache(s)
				cache = s
			}

			r := orchestrator.NewHookReport(
				service.NewRepositoriesService(client),
				service.NewHookService(client, cache, app.logger),
				app.printer(),
				app.logger,
			)
			return r.Run(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.ActiveOnly, "active", false, "only report active hooks")
	cmd.Flags().BoolVar(&opts.UniqueOnly, "unique", false, "only print the organization wide list")
	cmd.Flags().BoolVar(&opts.Ping, "ping", false, "ping every active hook")
	cmd.Flags().BoolVar(&useCache, "cache", false, "reuse hook listings stored in cache.path")
	return cmd
}

func (app *Application) newAuditHooksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit-hooks FILE...",
		Short: "Count the repositories each hook service is installed in, from exported audit logs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var entries []auditlog.Entry
			for _, path := range args {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				decoded, err := auditlog.Decode(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				entries = append(entries, decoded...)
			}

			out := app.printer()
			for _, u := range auditlog.TallyHooks(entries, app.logger) {
				out.Line("%s: %d", u.Service, u.Repositories)
			}
			return nil
		},
	}
}
