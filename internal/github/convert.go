package github

import (
	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

func toRepository(r *gh.Repository) models.Repository {
	return models.Repository{
		Owner:           r.GetOwner().GetLogin(),
		Name:            r.GetName(),
		FullName:        r.GetFullName(),
		Private:         r.GetPrivate(),
		Archived:        r.GetArchived(),
		Fork:            r.GetFork(),
		DefaultBranch:   r.GetDefaultBranch(),
		HTMLURL:         r.GetHTMLURL(),
		Size:            r.GetSize(),
		OpenIssuesCount: r.GetOpenIssuesCount(),
		UpdatedAt:       r.GetUpdatedAt().Time,
	}
}

func toIssue(i *gh.Issue) models.Issue {
	return models.Issue{
		Number:  i.GetNumber(),
		Title:   i.GetTitle(),
		HTMLURL: i.GetHTMLURL(),
		Author:  i.GetUser().GetLogin(),
	}
}

func toPullRequest(pr *gh.PullRequest) models.PullRequest {
	return models.PullRequest{
		Number:  pr.GetNumber(),
		Title:   pr.GetTitle(),
		HTMLURL: pr.GetHTMLURL(),
		Author:  pr.GetUser().GetLogin(),
	}
}

func toMember(u *gh.User) models.Member {
	return models.Member{
		Login: u.GetLogin(),
		Name:  u.GetName(),
		Email: u.GetEmail(),
	}
}
