package orchestrator

import (
	"context"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/exitcode"
	"github.com/tracker-tv/github-admin-bots/internal/report"
	"github.com/tracker-tv/github-admin-bots/internal/service"
)

// MemberRemover takes a login out of organizations.
type MemberRemover struct {
	removal service.RemovalService
	out     *report.Printer
	exit    *exitcode.Tracker
	logger  *zap.Logger
}

func NewMemberRemover(removal service.RemovalService, out *report.Printer, exit *exitcode.Tracker, logger *zap.Logger) *MemberRemover {
	return &MemberRemover{removal: removal, out: out, exit: exit, logger: logger}
}

func (r *MemberRemover) Run(ctx context.Context, orgs []string, login string, dryRun bool) {
	for _, org := range orgs {
		result, err := r.removal.Remove(ctx, org, login, dryRun)
		if err != nil {
			r.logger.Error("removal failed", zap.String("organization", org), zap.String("login", login), zap.Error(err))
			r.exit.Raise(exitcode.Failure)
			continue
		}

		switch {
		case result.IsOwner:
			r.out.Warning("manually change %s to a member first", login)
		case result.RemovedMembership:
			r.out.Line("removed %s from %s", login, org)
		case dryRun && result.Role != "":
			r.out.Line("would remove %s from %s", login, org)
		}
		switch {
		case result.RemovedCollaborator:
			r.out.Line("removed %s as outside collaborator of %s", login, org)
		case dryRun:
			r.out.Line("would remove %s as outside collaborator of %s", login, org)
		}
	}
}
