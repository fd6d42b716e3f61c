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

const hidden = "<hidden>"

// OrgInfoReport prints the identifiers and plan of organizations.
type OrgInfoReport struct {
	orgs   service.OrganizationService
	out    *report.Printer
	exit   *exitcode.Tracker
	logger *zap.Logger
}

func NewOrgInfoReport(orgs service.OrganizationService, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *OrgInfoReport {
	return &OrgInfoReport{orgs: orgs, out: out, exit: exit, logger: logger}
}

// Run prints each organization. emails implies owners.
func (r *OrgInfoReport) Run(ctx context.Context, orgs []string, owners, emails bool) {
	owners = owners || emails
	for i, name := range orgs {
		if len(orgs) > 1 {
			if i > 0 {
				r.out.Blank()
			}
			r.out.Line("Processing org %s", name)
		}
		if err := r.show(ctx, name, owners, emails); err != nil {
			r.logger.Error("obtaining organization data", zap.String("organization", name), zap.Error(err))
			r.exit.Raise(exitcode.Failure)
		}
	}
}

func (r *OrgInfoReport) show(ctx context.Context, name string, owners, emails bool) error {
	org, err := r.orgs.Info(ctx, name)
	if err != nil {
		return err
	}

	encoded, decoded := org.GlobalID()
	r.out.Field("Name", fmt.Sprintf("%s (%s)", orDefault(org.Name, name), org.Login))
	r.out.Field("API v3 id", org.ID)
	r.out.Field("API v4 id", fmt.Sprintf("%s (%s)", encoded, decoded))
	r.out.Field("contact", orDefault(org.Email, hidden))
	r.out.Field("billing", orDefault(org.BillingEmail, hidden))
	r.out.Field("private repos", org.OwnedPrivateRepos)
	r.out.Field("plan", orDefault(org.PlanName, hidden))
	r.out.Field("seats", org.FilledSeats)

	if !owners {
		return nil
	}
	list, err := r.orgs.Owners(ctx, name)
	if err != nil {
		return err
	}
	r.out.Line("%15s:", "Org Owners")
	for _, o := range list {
		r.out.Indented(18, ownerLine(o, emails))
	}
	return nil
}

func ownerLine(o models.Member, emails bool) string {
	email := ""
	if emails {
		email = " " + orDefault(o.Email, "<email hidden>")
	}
	return fmt.Sprintf("%s (%s%s)", orDefault(o.Name, hidden), o.Login, email)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
