package models

import "time"

type Repository struct {
	Owner         string `json:"owner"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	Archived      bool   `json:"archived"`
	Fork          bool   `json:"fork"`
	DefaultBranch string `json:"default_branch"`
	HTMLURL       string `json:"html_url"`
	// Size is reported by GitHub in kilobytes.
	Size            int       `json:"size"`
	OpenIssuesCount int       `json:"open_issues_count"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type TreeEntry struct {
	Path string
	Type string
	SHA  string
}

type Issue struct {
	Number  int
	Title   string
	HTMLURL string
	Author  string
}

type PullRequest struct {
	Number  int
	Title   string
	HTMLURL string
	Author  string
}

// HookInfo is the normalized shape of a repository hook, whatever the API returned.
type HookInfo struct {
	ID         int64  `json:"id"`
	Repository string `json:"repository"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	Active     bool   `json:"active"`
}

// DisplayName identifies the hook in reports: web hooks by their endpoint, services by name.
func (h HookInfo) DisplayName() string {
	if h.Name != "web" {
		return h.Name
	}
	return h.URL
}
