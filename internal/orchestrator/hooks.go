package orchestrator

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

// HookReport lists the hooks installed across an organization.
type HookReport struct {
	repos  service.RepositoryService
	hooks  service.HookService
	out    *report.Printer
	logger *zap.Logger
}

func NewHookReport(repos service.RepositoryService, hooks service.HookService, out *report.Printer, logger *zap.Logger) *HookReport {
	return &HookReport{repos: repos, hooks: hooks, out: out, logger: logger}
}

type HookOptions struct {
	ActiveOnly bool
	// UniqueOnly skips the per repository listing.
	UniqueOnly bool
	Ping       bool
}

func (r *HookReport) Run(ctx context.Context, org string, opts HookOptions) error {
	kind := "All"
	if opts.ActiveOnly {
		kind = "Active"
	}

	repos, err := r.repos.ListAll(ctx, org)
	if err != nil {
		return err
	}

	var unique []string
	for _, repo := range repos {
		hooks, err := r.hooks.List(ctx, org, repo.Name)
		if err != nil {
			r.logger.Warn("listing hooks failed", zap.String("repository", repo.FullName), zap.Error(err))
			continue
		}

		var names []string
		attempts, failures := 0, 0
		for _, h := range hooks {
			name := h.DisplayName()
			if h.Active || !opts.ActiveOnly {
				names = appendUnique(names, name)
			}
			if opts.Ping && h.Active {
				attempts++
				if err := r.hooks.Ping(ctx, org, h); err != nil {
					failures++
					r.logger.Warn("ping failed", zap.String("hook", name), zap.String("repository", repo.FullName), zap.Error(err))
				}
			}
		}

		slices.Sort(names)
		if len(names) > 0 && !opts.UniqueOnly {
			r.out.Line("%s hooks for %s, pinged %d (%d failed)", kind, repo.Name, attempts, failures)
			r.out.Indented(0, names...)
		}
		for _, name := range names {
			unique = appendUnique(unique, name)
		}
	}

	if len(unique) > 0 {
		slices.Sort(unique)
		r.out.Heading("%s hooks for org %s", kind, org)
		r.out.Indented(0, unique...)
	}
	return nil
}

func appendUnique(list []string, s string) []string {
	if slices.Contains(list, s) {
		return list
	}
	return append(list, s)
}
