package service

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	githubMocks "github.com/tracker-tv/github-admin-bots/internal/github/mocks"
	serviceMocks "github.com/tracker-tv/github-admin-bots/internal/service/mocks"
	"github.com/tracker-tv/github-admin-bots/models"
)

const cocContents = "# Community Participation Guidelines\n"

func newTestDispatcher(t *testing.T) (DispatchService, *githubMocks.MockClient) {
	mockClient := githubMocks.NewMockClient(t)
	quota := serviceMocks.NewMockQuotaGuard(t)
	quota.EXPECT().Wait(mock.Anything).Maybe().Return(nil)
	return NewDispatchService(mockClient, testPolicy(), "coc-bot", cocContents, quota, zap.NewNop()), mockClient
}

func missingRecord() *models.ComplianceRecord {
	return &models.ComplianceRecord{
		Repository: inScopeRepo(),
		OfInterest: true,
		Actions:    []models.Action{testAction(models.ActionMissingIssue), testAction(models.ActionMissingPR)},
	}
}

func existingFork() models.Repository {
	name := forkName("org/repo")
	return models.Repository{
		Owner:         "coc-bot",
		Name:          name,
		FullName:      "coc-bot/" + name,
		DefaultBranch: "main",
		HTMLURL:       "https://github.com/coc-bot/" + name,
	}
}

func TestNewDispatchService(t *testing.T) {
	svc, _ := newTestDispatcher(t)

	assert.NotNil(t, svc)
	assert.Implements(t, (*DispatchService)(nil), svc)
}

func TestDispatch_WaitsForQuota(t *testing.T) {
	ctx := context.Background()
	mockClient := githubMocks.NewMockClient(t)
	quota := serviceMocks.NewMockQuotaGuard(t)
	svc := NewDispatchService(mockClient, testPolicy(), "coc-bot", cocContents, quota, zap.NewNop())

	quota.EXPECT().Wait(mock.Anything).Once().Return(context.Canceled)

	text, err := svc.Dispatch(ctx, missingRecord(), testAction(models.ActionMissingIssue))

	assert.Empty(t, text)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDispatch_AlreadyCorrect(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDispatcher(t)

	text, err := svc.Dispatch(ctx, missingRecord(), testAction(models.ActionAlreadyCorrect))

	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestDispatch_OpensIssue(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()

	mockClient.EXPECT().
		CreateIssue(mock.Anything, "org", "repo", "CODE_OF_CONDUCT.md file missing", "Please add the file.\n\n_(Message COC001)_").
		Once().
		Return(models.Issue{Number: 7, HTMLURL: "https://github.com/org/repo/issues/7"}, nil)

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingIssue))

	require.NoError(t, err)
	assert.Equal(t, " #7 (https://github.com/org/repo/issues/7)", text)
	assert.Equal(t, 7, record.IssueNumber)
}

func TestDispatch_ReusesOpenIssue(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestDispatcher(t)
	record := missingRecord()
	record.IssueNumber = 3
	record.IssueURL = "https://github.com/org/repo/issues/3"

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionIncorrectIssue))

	require.NoError(t, err)
	assert.Equal(t, " Already open #3 (https://github.com/org/repo/issues/3)", text)
}

func TestDispatch_IssueFailure(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()

	mockClient.EXPECT().CreateIssue(mock.Anything, "org", "repo", mock.Anything, mock.Anything).
		Once().
		Return(models.Issue{}, apiError("POST", 410))

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingIssue))

	assert.Equal(t, " WARNING: Could not open issue for org/repo", text)
	assert.Error(t, err)
	assert.False(t, IsRetryable(err))
	assert.True(t, record.IssueUnavailable)
}

func TestDispatch_PullRequestFromExistingFork(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	record.IssueNumber = 7
	fork := existingFork()

	mockClient.EXPECT().GetRepository(mock.Anything, "coc-bot", fork.Name).Once().Return(fork, nil)
	mockClient.EXPECT().
		CreateFile(mock.Anything, "coc-bot", fork.Name, "CODE_OF_CONDUCT.md", "main",
			"Add Code of Conduct file\n\nFixes #7.\n\n_(Message COC002)_", cocContents).
		Once().
		Return(nil)
	mockClient.EXPECT().
		CreatePullRequest(mock.Anything, "org", "repo", "Add Code of Conduct",
			"Fixes #7\n\nPlease add the file.\n\n_(Message COC002)_", "coc-bot:main", "main").
		Once().
		Return(models.PullRequest{Number: 9, HTMLURL: "https://github.com/org/repo/pull/9"}, nil)

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	require.NoError(t, err)
	assert.Equal(t, " Created PR #9 (https://github.com/org/repo/pull/9)", text)
	assert.Equal(t, &fork, record.Fork)
}

func TestDispatch_PullRequestWithoutIssue(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	record.IssueUnavailable = true
	fork := existingFork()
	record.Fork = &fork

	mockClient.EXPECT().
		CreateFile(mock.Anything, "coc-bot", fork.Name, "CODE_OF_CONDUCT.md", "main",
			"Add Code of Conduct file\n\nSee PR for details\n\n_(Message COC002)_", cocContents).
		Once().
		Return(nil)
	mockClient.EXPECT().
		CreatePullRequest(mock.Anything, "org", "repo", "Add Code of Conduct",
			"Please add the file.\n\n_(Message COC002)_", "coc-bot:main", "main").
		Once().
		Return(models.PullRequest{Number: 9, HTMLURL: "https://github.com/org/repo/pull/9"}, nil)

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	require.NoError(t, err)
	assert.Equal(t, " Created PR #9 (https://github.com/org/repo/pull/9)", text)
}

func TestDispatch_ForkRejected(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	name := forkName("org/repo")

	mockClient.EXPECT().GetRepository(mock.Anything, "coc-bot", name).Once().Return(models.Repository{}, apiError("GET", 404))
	mockClient.EXPECT().CreateFork(mock.Anything, "org", "repo").Once().Return(models.Repository{}, apiError("POST", 422))

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	assert.Equal(t, " Failed to commit file to https://github.com/coc-bot/"+name, text)
	assert.True(t, IsRetryable(err))
	assert.Nil(t, record.Fork)
}

func TestDispatch_ForkAcceptedThenRenamed(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	record.IssueNumber = 7
	fork := existingFork()
	provisional := models.Repository{Owner: "coc-bot", Name: "repo", FullName: "coc-bot/repo", DefaultBranch: "main"}

	mockClient.EXPECT().GetRepository(mock.Anything, "coc-bot", fork.Name).Once().Return(models.Repository{}, apiError("GET", 404))
	mockClient.EXPECT().CreateFork(mock.Anything, "org", "repo").Once().Return(provisional, &gh.AcceptedError{})
	mockClient.EXPECT().RenameRepository(mock.Anything, "coc-bot", "repo", fork.Name).Once().Return(fork, nil)
	mockClient.EXPECT().CreateFile(mock.Anything, "coc-bot", fork.Name, "CODE_OF_CONDUCT.md", "main", mock.Anything, cocContents).Once().Return(nil)
	mockClient.EXPECT().CreatePullRequest(mock.Anything, "org", "repo", mock.Anything, mock.Anything, "coc-bot:main", "main").
		Once().
		Return(models.PullRequest{Number: 9, HTMLURL: "https://github.com/org/repo/pull/9"}, nil)

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	require.NoError(t, err)
	assert.Equal(t, " Created PR #9 (https://github.com/org/repo/pull/9)", text)
	assert.Equal(t, fork.Name, record.Fork.Name)
}

func TestDispatch_RenameFailureKeepsFork(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	created := models.Repository{Owner: "coc-bot", Name: "repo", FullName: "coc-bot/repo", DefaultBranch: "main"}
	name := forkName("org/repo")

	mockClient.EXPECT().GetRepository(mock.Anything, "coc-bot", name).Once().Return(models.Repository{}, apiError("GET", 404))
	mockClient.EXPECT().CreateFork(mock.Anything, "org", "repo").Once().Return(created, nil)
	mockClient.EXPECT().RenameRepository(mock.Anything, "coc-bot", "repo", name).Once().Return(models.Repository{}, apiError("PATCH", 422))
	mockClient.EXPECT().CreateFile(mock.Anything, "coc-bot", "repo", "CODE_OF_CONDUCT.md", "main", mock.Anything, cocContents).Once().Return(nil)
	mockClient.EXPECT().CreatePullRequest(mock.Anything, "org", "repo", mock.Anything, mock.Anything, "coc-bot:main", "main").
		Once().
		Return(models.PullRequest{Number: 9, HTMLURL: "https://github.com/org/repo/pull/9"}, nil)

	_, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	require.NoError(t, err)
	assert.Equal(t, "repo", record.Fork.Name)
}

func TestDispatch_CommitFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	fork := existingFork()
	record.Fork = &fork

	mockClient.EXPECT().CreateFile(mock.Anything, "coc-bot", fork.Name, "CODE_OF_CONDUCT.md", "main", mock.Anything, cocContents).
		Once().
		Return(apiError("PUT", 404))

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	assert.Equal(t, " Failed to commit file to "+fork.HTMLURL, text)
	assert.True(t, IsRetryable(err))
}

func TestDispatch_PullRequestAlreadyOpen(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)
	record := missingRecord()
	fork := existingFork()
	record.Fork = &fork

	mockClient.EXPECT().CreateFile(mock.Anything, "coc-bot", fork.Name, "CODE_OF_CONDUCT.md", "main", mock.Anything, cocContents).Once().Return(nil)
	mockClient.EXPECT().CreatePullRequest(mock.Anything, "org", "repo", mock.Anything, mock.Anything, "coc-bot:main", "main").
		Once().
		Return(models.PullRequest{}, apiError("POST", 422))

	text, err := svc.Dispatch(ctx, record, testAction(models.ActionMissingPR))

	require.NoError(t, err)
	assert.Equal(t, " Pull request likely already open", text)
}

func TestDispatch_ForkLookupError(t *testing.T) {
	ctx := context.Background()
	svc, mockClient := newTestDispatcher(t)

	mockClient.EXPECT().GetRepository(mock.Anything, "coc-bot", mock.Anything).Once().Return(models.Repository{}, errors.New("network down"))

	text, err := svc.Dispatch(ctx, missingRecord(), testAction(models.ActionMissingPR))

	assert.Empty(t, text)
	assert.ErrorContains(t, err, "network down")
	assert.False(t, IsRetryable(err))
}

func TestForkName(t *testing.T) {
	name := forkName("Org/Repo")

	assert.Len(t, name, 64)
	assert.Regexp(t, "^[0-9a-f]+$", name)
	assert.Equal(t, name, forkName("org/repo"))
	assert.NotEqual(t, name, forkName("org/other"))
}
