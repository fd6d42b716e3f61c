package models

type ComplianceRecord struct {
	Repository    Repository
	OfInterest    bool
	HasFile       bool
	IsCorrect     bool
	FileContent   string
	IgnoreReasons []string
	Actions       []Action

	// IssueNumber is the open bot issue found during evaluation or created during dispatch.
	IssueNumber int
	IssueURL    string
	// IssueUnavailable is set when an issue could not be opened; the pull request then
	// carries the full explanation instead of referencing an issue.
	IssueUnavailable bool
	Fork             *Repository
}

// PlanLines renders the plan the way it is shown in plan-only mode.
func (r *ComplianceRecord) PlanLines() []string {
	if !r.OfInterest {
		lines := []string{"Out of scope because:"}
		for _, reason := range r.IgnoreReasons {
			lines = append(lines, "    "+reason)
		}
		return lines
	}

	lines := make([]string, 0, len(r.Actions))
	for _, a := range r.Actions {
		lines = append(lines, a.Summary)
	}
	return lines
}

func (r *ComplianceRecord) ActionCodes() []ActionCode {
	codes := make([]ActionCode, 0, len(r.Actions))
	for _, a := range r.Actions {
		codes = append(codes, a.Code)
	}
	return codes
}
