package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

const (
	ReasonArchived   = "Repo is archived"
	ReasonPrivate    = "Repo is private"
	ReasonFork       = "Repo is a fork"
	ReasonHandled    = "Already has issue & pr opened"
	ReasonDegenerate = "Repo's default branch is degenerate"
)

// ComplianceService evaluates a repository against the code of conduct policy and plans
// the remediation.
type ComplianceService interface {
	Evaluate(ctx context.Context, repo models.Repository) (*models.ComplianceRecord, error)
}

type complianceService struct {
	gh       github.Client
	policy   models.CoCPolicy
	identity string
}

func NewComplianceService(gh github.Client, policy models.CoCPolicy, identity string) ComplianceService {
	return &complianceService{gh: gh, policy: policy, identity: identity}
}

func (s *complianceService) Evaluate(ctx context.Context, repo models.Repository) (*models.ComplianceRecord, error) {
	record := &models.ComplianceRecord{Repository: repo}

	if err := s.checkScope(ctx, record); err != nil {
		return nil, fmt.Errorf("checking scope of %s: %w", repo.FullName, err)
	}
	if record.OfInterest {
		if err := s.findFile(ctx, record); err != nil {
			return nil, fmt.Errorf("reading %s in %s: %w", s.policy.Filename, repo.FullName, err)
		}
	}
	if record.HasFile {
		record.IsCorrect = s.isCorrect(record.FileContent)
	}

	record.Actions = s.plan(record)
	return record, nil
}

// checkScope accumulates every exclusion reason. Open issues and pull requests are only
// inspected when the repository flags leave it in scope.
func (s *complianceService) checkScope(ctx context.Context, record *models.ComplianceRecord) error {
	repo := record.Repository
	var reasons []string
	if repo.Archived {
		reasons = append(reasons, ReasonArchived)
	}
	if repo.Private {
		reasons = append(reasons, ReasonPrivate)
	}
	if repo.Fork {
		reasons = append(reasons, ReasonFork)
	}

	if len(reasons) == 0 {
		issues, err := s.gh.ListOpenIssues(ctx, repo.Owner, repo.Name)
		if err != nil {
			return fmt.Errorf("listing open issues: %w", err)
		}
		hasIssue := false
		for _, issue := range issues {
			if s.isMine(issue.Author) {
				record.IssueNumber = issue.Number
				record.IssueURL = issue.HTMLURL
				hasIssue = true
				break
			}
		}

		prs, err := s.gh.ListOpenPullRequests(ctx, repo.Owner, repo.Name)
		if err != nil {
			return fmt.Errorf("listing open pull requests: %w", err)
		}
		hasPR := false
		for _, pr := range prs {
			if s.isMine(pr.Author) {
				hasPR = true
				break
			}
		}

		if hasIssue && hasPR {
			reasons = append(reasons, ReasonHandled)
		}
	}

	record.IgnoreReasons = reasons
	record.OfInterest = len(reasons) == 0
	return nil
}

// findFile looks for an exact, case sensitive blob at the root of the default branch. Any
// failure to read the tree takes the repository out of scope instead of failing.
func (s *complianceService) findFile(ctx context.Context, record *models.ComplianceRecord) error {
	repo := record.Repository

	var tree []models.TreeEntry
	var err error
	if repo.DefaultBranch != "" {
		tree, err = s.gh.GetTree(ctx, repo.Owner, repo.Name, repo.DefaultBranch)
	}
	if repo.DefaultBranch == "" || err != nil {
		record.OfInterest = false
		record.IgnoreReasons = append(record.IgnoreReasons, ReasonDegenerate)
		return nil
	}

	for _, entry := range tree {
		if entry.Type != "blob" || entry.Path != s.policy.Filename {
			continue
		}
		content, err := s.gh.GetBlob(ctx, repo.Owner, repo.Name, entry.SHA)
		if err != nil {
			return err
		}
		record.HasFile = true
		record.FileContent = content
		return nil
	}
	return nil
}

func (s *complianceService) isCorrect(content string) bool {
	for _, required := range s.policy.RequiredSubstrings {
		if !strings.Contains(content, required) {
			return false
		}
	}
	return true
}

func (s *complianceService) plan(record *models.ComplianceRecord) []models.Action {
	var codes []models.ActionCode
	switch {
	case !record.OfInterest:
		return nil
	case !record.HasFile:
		codes = []models.ActionCode{models.ActionMissingIssue, models.ActionMissingPR}
	case !record.IsCorrect:
		codes = []models.ActionCode{models.ActionIncorrectIssue}
	default:
		codes = []models.ActionCode{models.ActionAlreadyCorrect}
	}

	actions := make([]models.Action, 0, len(codes))
	for _, code := range codes {
		if action, ok := s.policy.Action(code); ok {
			actions = append(actions, action)
		}
	}
	return actions
}

func (s *complianceService) isMine(login string) bool {
	return strings.EqualFold(login, s.identity)
}
