package models

type ActionCode string

const (
	ActionMissingIssue   ActionCode = "missing-issue"
	ActionMissingPR      ActionCode = "missing-pr"
	ActionIncorrectIssue ActionCode = "incorrect-issue"
	ActionAlreadyCorrect ActionCode = "already-correct"
)

// Action is one remediation step of the code of conduct policy. Values come from the
// embedded catalog and are never mutated.
type Action struct {
	Code      ActionCode `json:"code"`
	MessageID string     `json:"message_id"`
	Summary   string     `json:"summary"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
}

// Footer is appended to every issue, commit and pull request the bot writes.
func (a Action) Footer() string {
	return "\n\n_(Message " + a.MessageID + ")_"
}

type CoCPolicy struct {
	Filename           string   `json:"filename"`
	TemplateURL        string   `json:"template_url"`
	RequiredSubstrings []string `json:"required_substrings"`
	ApprovedAccount    string   `json:"approved_account"`
	CommitMessage      string   `json:"commit_message"`
	PullRequestTitle   string   `json:"pull_request_title"`
	Actions            []Action `json:"actions"`
}

// Action returns the catalog entry for code.
func (p CoCPolicy) Action(code ActionCode) (Action, bool) {
	for _, a := range p.Actions {
		if a.Code == code {
			return a, true
		}
	}
	return Action{}, false
}
