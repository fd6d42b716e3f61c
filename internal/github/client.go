package github

import (
	"context"
	"net/http"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

// Client is the only path from the bots to the GitHub API. Every response is converted
// into a models record before it leaves this package.
type Client interface {
	Me(ctx context.Context) (string, error)
	RateLimit(ctx context.Context) (models.Quota, error)
	GetUser(ctx context.Context, login string) (models.Member, error)

	ListOrgRepos(ctx context.Context, org string) ([]models.Repository, error)
	GetRepository(ctx context.Context, owner, repo string) (models.Repository, error)
	CreateFork(ctx context.Context, owner, repo string) (models.Repository, error)
	RenameRepository(ctx context.Context, owner, repo, newName string) (models.Repository, error)
	GetTree(ctx context.Context, owner, repo, ref string) ([]models.TreeEntry, error)
	GetBlob(ctx context.Context, owner, repo, sha string) (string, error)
	CreateFile(ctx context.Context, owner, repo, path, branch, message, content string) error

	ListOpenIssues(ctx context.Context, owner, repo string) ([]models.Issue, error)
	GetIssue(ctx context.Context, owner, repo string, number int) (models.Issue, error)
	CreateIssue(ctx context.Context, owner, repo, title, body string) (models.Issue, error)
	CommentOnIssue(ctx context.Context, owner, repo string, number int, body string) error
	LockIssue(ctx context.Context, owner, repo string, number int) error

	ListOpenPullRequests(ctx context.Context, owner, repo string) ([]models.PullRequest, error)
	CreatePullRequest(ctx context.Context, owner, repo, title, body, head, base string) (models.PullRequest, error)
	ClosePullRequest(ctx context.Context, owner, repo string, number int) error

	ListHooks(ctx context.Context, owner, repo string) ([]models.HookInfo, error)
	PingHook(ctx context.Context, owner, repo string, id int64) error

	GetOrganization(ctx context.Context, org string) (models.Organization, error)
	ListMembers(ctx context.Context, org, role, filter string) ([]models.Member, error)
	GetMembership(ctx context.Context, org, login string) (models.Membership, error)
	RemoveOrgMember(ctx context.Context, org, login string) error
	RemoveOutsideCollaborator(ctx context.Context, org, login string) error
	ListInvitations(ctx context.Context, org string) ([]models.Invitation, error)
	CancelInvitation(ctx context.Context, org string, id int64) error

	ListTeams(ctx context.Context, org string) ([]models.Team, error)
	ListTeamMembers(ctx context.Context, org, slug string) ([]string, error)
	AddTeamMember(ctx context.Context, org, slug, login string) error
	RemoveTeamMember(ctx context.Context, org, slug, login string) error
}

type RepositoriesAdapter interface {
	ListByOrg(ctx context.Context, org string, opts *gh.RepositoryListByOrgOptions) ([]*gh.Repository, *gh.Response, error)
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	CreateFork(ctx context.Context, owner, repo string, opts *gh.RepositoryCreateForkOptions) (*gh.Repository, *gh.Response, error)
	Edit(ctx context.Context, owner, repo string, repository *gh.Repository) (*gh.Repository, *gh.Response, error)
	CreateFile(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentFileOptions) (*gh.RepositoryContentResponse, *gh.Response, error)
	ListHooks(ctx context.Context, owner, repo string, opts *gh.ListOptions) ([]*gh.Hook, *gh.Response, error)
	PingHook(ctx context.Context, owner, repo string, id int64) (*gh.Response, error)
}

type GitAdapter interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error)
	GetBlobRaw(ctx context.Context, owner, repo, sha string) ([]byte, *gh.Response, error)
}

type IssuesAdapter interface {
	ListByRepo(ctx context.Context, owner, repo string, opts *gh.IssueListByRepoOptions) ([]*gh.Issue, *gh.Response, error)
	Get(ctx context.Context, owner, repo string, number int) (*gh.Issue, *gh.Response, error)
	Create(ctx context.Context, owner, repo string, issue *gh.IssueRequest) (*gh.Issue, *gh.Response, error)
	CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
	Lock(ctx context.Context, owner, repo string, number int, opts *gh.LockIssueOptions) (*gh.Response, error)
}

type PullRequestsAdapter interface {
	List(ctx context.Context, owner, repo string, opts *gh.PullRequestListOptions) ([]*gh.PullRequest, *gh.Response, error)
	Create(ctx context.Context, owner, repo string, pull *gh.NewPullRequest) (*gh.PullRequest, *gh.Response, error)
	Edit(ctx context.Context, owner, repo string, number int, pull *gh.PullRequest) (*gh.PullRequest, *gh.Response, error)
}

type OrganizationsAdapter interface {
	Get(ctx context.Context, org string) (*gh.Organization, *gh.Response, error)
	ListMembers(ctx context.Context, org string, opts *gh.ListMembersOptions) ([]*gh.User, *gh.Response, error)
	GetOrgMembership(ctx context.Context, user, org string) (*gh.Membership, *gh.Response, error)
	RemoveOrgMembership(ctx context.Context, user, org string) (*gh.Response, error)
	RemoveOutsideCollaborator(ctx context.Context, org, user string) (*gh.Response, error)
	ListPendingOrgInvitations(ctx context.Context, org string, opts *gh.ListOptions) ([]*gh.Invitation, *gh.Response, error)
	CancelInvite(ctx context.Context, org string, invitationID int64) (*gh.Response, error)
}

type TeamsAdapter interface {
	ListTeams(ctx context.Context, org string, opts *gh.ListOptions) ([]*gh.Team, *gh.Response, error)
	ListTeamMembersBySlug(ctx context.Context, org, slug string, opts *gh.TeamListTeamMembersOptions) ([]*gh.User, *gh.Response, error)
	AddTeamMembershipBySlug(ctx context.Context, org, slug, user string, opts *gh.TeamAddTeamMembershipOptions) (*gh.Membership, *gh.Response, error)
	RemoveTeamMembershipBySlug(ctx context.Context, org, slug, user string) (*gh.Response, error)
}

type UsersAdapter interface {
	Get(ctx context.Context, user string) (*gh.User, *gh.Response, error)
}

type RateLimitAdapter interface {
	Get(ctx context.Context) (*gh.RateLimits, *gh.Response, error)
}

type client struct {
	repositories  RepositoriesAdapter
	git           GitAdapter
	issues        IssuesAdapter
	pullRequests  PullRequestsAdapter
	organizations OrganizationsAdapter
	teams         TeamsAdapter
	users         UsersAdapter
	rateLimit     RateLimitAdapter
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}

func New(token string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	return fromGithub(gh.NewClient(httpClient))
}

func fromGithub(c *gh.Client) *client {
	return &client{
		repositories:  c.Repositories,
		git:           c.Git,
		issues:        c.Issues,
		pullRequests:  c.PullRequests,
		organizations: c.Organizations,
		teams:         c.Teams,
		users:         c.Users,
		rateLimit:     c.RateLimit,
	}
}
