package service

import (
	"context"
	"crypto/pbkdf2"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

// ErrRetryable marks a dispatch failure caused by a condition expected to clear on its
// own, typically a fork GitHub has not finished provisioning.
var ErrRetryable = errors.New("retryable")

const (
	forkSalt       = "salt"
	forkIterations = 100000
	forkKeyLength  = 32
	fallbackBranch = "master"
)

func IsRetryable(err error) bool {
	return errors.Is(err, ErrRetryable)
}

// QuotaGuard blocks until enough API quota is left to proceed.
type QuotaGuard interface {
	Wait(ctx context.Context) error
}

// DispatchService executes one planned action and returns the text appended to the action
// summary in the run report.
type DispatchService interface {
	Dispatch(ctx context.Context, record *models.ComplianceRecord, action models.Action) (string, error)
}

type dispatchService struct {
	gh       github.Client
	policy   models.CoCPolicy
	identity string
	contents string
	quota    QuotaGuard
	logger   *zap.Logger
}

// NewDispatchService builds a dispatcher acting as identity. contents is the code of
// conduct committed to forks.
func NewDispatchService(gh github.Client, policy models.CoCPolicy, identity, contents string, quota QuotaGuard, logger *zap.Logger) DispatchService {
	return &dispatchService{
		gh:       gh,
		policy:   policy,
		identity: identity,
		contents: contents,
		quota:    quota,
		logger:   logger,
	}
}

func (s *dispatchService) Dispatch(ctx context.Context, record *models.ComplianceRecord, action models.Action) (string, error) {
	if err := s.quota.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for quota: %w", err)
	}

	switch action.Code {
	case models.ActionMissingIssue, models.ActionIncorrectIssue:
		return s.openIssue(ctx, record, action)
	case models.ActionMissingPR:
		return s.openPullRequest(ctx, record, action)
	case models.ActionAlreadyCorrect:
		return "", nil
	default:
		return "", fmt.Errorf("unexpected action %q", action.Code)
	}
}

func (s *dispatchService) openIssue(ctx context.Context, record *models.ComplianceRecord, action models.Action) (string, error) {
	repo := record.Repository
	if record.IssueNumber != 0 {
		return fmt.Sprintf(" Already open #%d (%s)", record.IssueNumber, record.IssueURL), nil
	}

	issue, err := s.gh.CreateIssue(ctx, repo.Owner, repo.Name, action.Title, action.Body+action.Footer())
	if err != nil {
		record.IssueUnavailable = true
		return fmt.Sprintf(" WARNING: Could not open issue for %s", repo.FullName),
			fmt.Errorf("creating issue in %s: %w", repo.FullName, err)
	}

	record.IssueNumber = issue.Number
	record.IssueURL = issue.HTMLURL
	return fmt.Sprintf(" #%d (%s)", issue.Number, issue.HTMLURL), nil
}

func (s *dispatchService) openPullRequest(ctx context.Context, record *models.ComplianceRecord, action models.Action) (string, error) {
	repo := record.Repository

	fork, err := s.fork(ctx, record)
	if err != nil {
		if github.IsUnprocessable(err) || github.IsAccepted(err) {
			return fmt.Sprintf(" Failed to commit file to %s", s.forkURL(record)),
				fmt.Errorf("forking %s: %w: %w", repo.FullName, ErrRetryable, err)
		}
		return "", fmt.Errorf("forking %s: %w", repo.FullName, err)
	}

	err = s.gh.CreateFile(ctx, fork.Owner, fork.Name, s.policy.Filename, fork.DefaultBranch, s.commitMessage(record, action), s.contents)
	if err != nil {
		s.logger.Warn("commit to fork failed",
			zap.String("fork", fork.FullName),
			zap.String("repository", repo.FullName),
			zap.Int("status", github.StatusCode(err)),
			zap.Error(err),
		)
		return fmt.Sprintf(" Failed to commit file to %s", s.forkURL(record)),
			fmt.Errorf("committing %s to %s: %w: %w", s.policy.Filename, fork.FullName, ErrRetryable, err)
	}

	base := repo.DefaultBranch
	if base == "" {
		base = fallbackBranch
	}
	headBranch := fork.DefaultBranch
	if headBranch == "" {
		headBranch = fallbackBranch
	}
	owner := fork.Owner
	if owner == "" {
		owner = s.identity
	}

	pr, err := s.gh.CreatePullRequest(ctx, repo.Owner, repo.Name, s.policy.PullRequestTitle, s.pullRequestBody(record, action), owner+":"+headBranch, base)
	if err != nil {
		if github.IsUnprocessable(err) {
			s.logger.Info("pull request likely already open", zap.String("repository", repo.FullName), zap.Error(err))
			return " Pull request likely already open", nil
		}
		return "", fmt.Errorf("opening pull request in %s: %w", repo.FullName, err)
	}
	return fmt.Sprintf(" Created PR #%d (%s)", pr.Number, pr.HTMLURL), nil
}

// fork returns the bot's fork of the record's repository, creating and renaming it when
// it does not exist yet. A 202 from GitHub still yields the fork being provisioned.
func (s *dispatchService) fork(ctx context.Context, record *models.ComplianceRecord) (models.Repository, error) {
	if record.Fork != nil {
		return *record.Fork, nil
	}

	repo := record.Repository
	name := forkName(repo.FullName)

	existing, err := s.gh.GetRepository(ctx, s.identity, name)
	if err == nil {
		record.Fork = &existing
		return existing, nil
	}
	if !github.IsNotFound(err) {
		return models.Repository{}, fmt.Errorf("looking up fork %s/%s: %w", s.identity, name, err)
	}

	created, err := s.gh.CreateFork(ctx, repo.Owner, repo.Name)
	if err != nil && !(github.IsAccepted(err) && created.Name != "") {
		return models.Repository{}, err
	}

	owner := created.Owner
	if owner == "" {
		owner = s.identity
	}
	renamed, err := s.gh.RenameRepository(ctx, owner, created.Name, name)
	if err != nil {
		s.logger.Error("failed to rename fork",
			zap.String("fork", created.FullName),
			zap.String("name", name),
			zap.Error(err),
		)
		renamed = created
	}

	record.Fork = &renamed
	return renamed, nil
}

func (s *dispatchService) forkURL(record *models.ComplianceRecord) string {
	if record.Fork != nil && record.Fork.HTMLURL != "" {
		return record.Fork.HTMLURL
	}
	return "https://github.com/" + s.identity + "/" + forkName(record.Repository.FullName)
}

func (s *dispatchService) commitMessage(record *models.ComplianceRecord, action models.Action) string {
	var message string
	if record.IssueUnavailable || record.IssueNumber == 0 {
		subject, _, _ := strings.Cut(s.policy.CommitMessage, "\n")
		message = subject + "\n\nSee PR for details"
	} else {
		message = fmt.Sprintf(s.policy.CommitMessage, record.IssueNumber)
	}
	return message + action.Footer()
}

// pullRequestBody carries the full explanation; it links the issue when there is one.
func (s *dispatchService) pullRequestBody(record *models.ComplianceRecord, action models.Action) string {
	explanation, _ := s.policy.Action(models.ActionMissingIssue)
	body := explanation.Body + action.Footer()
	if record.IssueUnavailable || record.IssueNumber == 0 {
		return body
	}
	return fmt.Sprintf("Fixes #%d\n\n", record.IssueNumber) + body
}

// forkName derives a collision free repository name from the upstream full name.
func forkName(fullName string) string {
	key, err := pbkdf2.Key(sha256.New, strings.ToLower(fullName), []byte(forkSalt), forkIterations, forkKeyLength)
	if err != nil {
		// Only reachable with an invalid key length.
		panic(err)
	}
	return hex.EncodeToString(key)
}
