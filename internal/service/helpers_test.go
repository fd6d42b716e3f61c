package service

import (
	"net/http"
	"net/http/httptest"

	gh "github.com/google/go-github/v80/github"

	"github.com/tracker-tv/github-admin-bots/models"
)

const (
	policyURL    = "https://example.org/participation/"
	reportingURL = "https://example.org/participation/reporting/"
)

func testPolicy() models.CoCPolicy {
	return models.CoCPolicy{
		Filename:           "CODE_OF_CONDUCT.md",
		TemplateURL:        "https://example.org/CODE_OF_CONDUCT.md",
		RequiredSubstrings: []string{policyURL, reportingURL},
		ApprovedAccount:    "coc-bot",
		CommitMessage:      "Add Code of Conduct file\n\nFixes #%d.",
		PullRequestTitle:   "Add Code of Conduct",
		Actions: []models.Action{
			{Code: models.ActionMissingIssue, MessageID: "COC001", Summary: "Create missing CoC issue", Title: "CODE_OF_CONDUCT.md file missing", Body: "Please add the file."},
			{Code: models.ActionMissingPR, MessageID: "COC002", Summary: "Create PR for boilerplate CoC", Title: "Add CODE_OF_CONDUCT.md file"},
			{Code: models.ActionIncorrectIssue, MessageID: "COC003", Summary: "Create incorrect CoC issue", Title: "CODE_OF_CONDUCT.md isn't correct", Body: "Please fix the file."},
			{Code: models.ActionAlreadyCorrect, MessageID: "COC004", Summary: "Everything already correct"},
		},
	}
}

func testAction(code models.ActionCode) models.Action {
	a, _ := testPolicy().Action(code)
	return a
}

// apiError builds the error go-github returns for a non-2xx response.
func apiError(method string, status int) error {
	return &gh.ErrorResponse{
		Response: &http.Response{
			StatusCode: status,
			Request:    httptest.NewRequest(method, "https://api.github.com/repos/org/repo", nil),
		},
		Message: http.StatusText(status),
	}
}
