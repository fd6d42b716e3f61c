package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

// InvitationReport lists, and optionally cancels, invitations nobody accepted in time.
type InvitationReport struct {
	invitations service.InvitationService
	out         *report.Printer
	exit        *exitcode.Tracker
	logger      *zap.Logger
	now         func() time.Time
}

func NewInvitationReport(invitations service.InvitationService, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *InvitationReport {
	return &InvitationReport{invitations: invitations, out: out, exit: exit, logger: logger, now: time.Now}
}

// Run reports invitations older than cutoff in each organization.
func (r *InvitationReport) Run(ctx context.Context, orgs []string, cutoff time.Duration, cancel bool) error {
	now := r.now()
	for _, org := range orgs {
		if len(orgs) > 1 {
			r.out.Line("Processing org %s", org)
		}

		stale, err := r.invitations.Stale(ctx, org, now.Add(-cutoff))
		if err != nil {
			return err
		}
		for _, inv := range stale {
			line := fmt.Sprintf("%s (%s) was invited %s by %s",
				inv.Login, inv.Email, humanize.RelTime(inv.CreatedAt, now, "ago", "from now"), inv.Inviter)
			if !cancel {
				r.out.Line("%s", line)
				continue
			}

			if err := r.invitations.Cancel(ctx, org, inv); err != nil {
				r.out.Line("%s: FAILED to cancel", line)
				r.logger.Warn("could not cancel invitation",
					zap.String("login", inv.Login),
					zap.Time("created_at", inv.CreatedAt),
					zap.Error(err),
				)
				r.exit.Raise(exitcode.Failure)
				continue
			}
			r.out.Line("%s: Cancelled", line)
		}
	}
	return nil
}
