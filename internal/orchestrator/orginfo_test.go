package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	serviceMocks "github.com/tracker-tv/github-admin-bots/internal/service/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

func TestOrgInfoReport_WithOwnerEmails(t *testing.T) {
	ctx := context.Background()
	orgs := serviceMocks.NewMockOrganizationService(t)
	out, buf, exit := newOutput()
	r := NewOrgInfoReport(orgs, out, exit, zap.NewNop())

	orgs.EXPECT().Info(mock.Anything, "acme").Once().Return(models.Organization{
		ID: 42, Login: "acme", Name: "Acme Corp", Type: "Organization",
		BillingEmail: "billing@acme.test", OwnedPrivateRepos: 3, PlanName: "team", FilledSeats: 12,
	}, nil)
	orgs.EXPECT().Owners(mock.Anything, "acme").Once().Return([]models.Member{
		{Login: "alice", Name: "Alice", Email: "alice@acme.test"},
		{Login: "bob"},
	}, nil)

	r.Run(ctx, []string{"acme"}, false, true)

	assert.Equal(t, ""+
		"           Name: Acme Corp (acme)\n"+
		"      API v3 id: 42\n"+
		"      API v4 id: MDEyOk9yZ2FuaXphdGlvbjQy (012:Organization42)\n"+
		"        contact: <hidden>\n"+
		"        billing: billing@acme.test\n"+
		"  private repos: 3\n"+
		"           plan: team\n"+
		"          seats: 12\n"+
		"     Org Owners:\n"+
		"                  Alice (alice alice@acme.test)\n"+
		"                  <hidden> (bob <email hidden>)\n", buf.String())
	assert.Equal(t, 0, exit.Code())
}

func TestOrgInfoReport_SeveralOrgs(t *testing.T) {
	ctx := context.Background()
	orgs := serviceMocks.NewMockOrganizationService(t)
	out, buf, exit := newOutput()
	r := NewOrgInfoReport(orgs, out, exit, zap.NewNop())

	orgs.EXPECT().Info(mock.Anything, "gone").Once().Return(models.Organization{}, apiError("GET", 404))
	orgs.EXPECT().Info(mock.Anything, "acme").Once().Return(models.Organization{ID: 1, Login: "acme", Type: "Organization"}, nil)

	r.Run(ctx, []string{"gone", "acme"}, false, false)

	assert.Contains(t, buf.String(), "Processing org gone\n\nProcessing org acme\n")
	assert.Contains(t, buf.String(), "           Name: acme (acme)\n")
	assert.NotContains(t, buf.String(), "Org Owners")
	assert.Equal(t, 1, exit.Code())
}
