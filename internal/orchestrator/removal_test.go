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

func TestMemberRemover_Run(t *testing.T) {
	ctx := context.Background()
	removal := serviceMocks.NewMockRemovalService(t)
	out, buf, exit := newOutput()
	r := NewMemberRemover(removal, out, exit, zap.NewNop())

	removal.EXPECT().Remove(mock.Anything, "a", "alice", false).Once().
		Return(models.RemovalResult{Login: "alice", Role: "member", RemovedMembership: true, RemovedCollaborator: true}, nil)
	removal.EXPECT().Remove(mock.Anything, "b", "alice", false).Once().
		Return(models.RemovalResult{Login: "alice", Role: "admin", IsOwner: true, RemovedCollaborator: true}, nil)
	removal.EXPECT().Remove(mock.Anything, "c", "alice", false).Once().
		Return(models.RemovalResult{}, apiError("DELETE", 403))

	r.Run(ctx, []string{"a", "b", "c"}, "alice", false)

	assert.Equal(t, "removed alice from a\n"+
		"removed alice as outside collaborator of a\n"+
		"manually change alice to a member first\n"+
		"removed alice as outside collaborator of b\n", buf.String())
	assert.Equal(t, 1, exit.Code())
}

func TestMemberRemover_DryRun(t *testing.T) {
	ctx := context.Background()
	removal := serviceMocks.NewMockRemovalService(t)
	out, buf, exit := newOutput()
	r := NewMemberRemover(removal, out, exit, zap.NewNop())

	removal.EXPECT().Remove(mock.Anything, "a", "alice", true).Once().
		Return(models.RemovalResult{Login: "alice", Role: "member"}, nil)

	r.Run(ctx, []string{"a"}, "alice", true)

	assert.Equal(t, "would remove alice from a\n"+
		"would remove alice as outside collaborator of a\n", buf.String())
	assert.Equal(t, 0, exit.Code())
}
