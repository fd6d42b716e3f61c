package orchestrator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

const day = 24 * time.Hour

// StaleRepoReport lists repositories that are candidates for archiving.
type StaleRepoReport struct {
	inventory service.InventoryService
	out       *report.Printer
	logger    *zap.Logger
	now       func() time.Time
}

func NewStaleRepoReport(inventory service.InventoryService, out *report.Printer, logger *zap.Logger) *StaleRepoReport {
	return &StaleRepoReport{inventory: inventory, out: out, logger: logger, now: time.Now}
}

// Run prints small and untouched repositories of org. cachePath is only mentioned in the
// report when the listing came from the cache.
func (r *StaleRepoReport) Run(ctx context.Context, org, cachePath string) error {
	repos, cached, err := r.inventory.Repositories(ctx, org)
	if err != nil {
		return err
	}
	if cached {
		r.out.Line("Found cached repository list. Delete %s if you want a new one.", cachePath)
	}
	now := r.now()

	small := service.SmallRepos(repos, now)
	r.out.Heading("## %d small/empty repositories older than %d days", len(small), int(service.SmallRepoMinAge/day))
	for _, repo := range small {
		r.out.Line("%s : %d (%s)", repo.Name, repo.Size, repo.UpdatedAt.UTC().Format(time.RFC3339))
	}
	r.out.Blank()
	r.out.Blank()

	untouched := service.UntouchedRepos(repos, now)
	r.out.Heading("## %d repos touched less recently than %d days ago.", len(untouched), int(service.UntouchedRepoMinAge/day))
	for _, repo := range untouched {
		r.out.Line("%s : %s", repo.Name, repo.UpdatedAt.UTC().Format(time.RFC3339))
	}
	return nil
}
