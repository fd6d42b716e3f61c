package policy

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/tracker-tv/github-admin-bots/models"
)

//go:embed catalog/*.json
var catalog embed.FS

var requiredActions = []models.ActionCode{
	models.ActionMissingIssue,
	models.ActionMissingPR,
	models.ActionIncorrectIssue,
	models.ActionAlreadyCorrect,
}

func FromJSON(data []byte) (models.CoCPolicy, error) {
	var p models.CoCPolicy
	if err := json.Unmarshal(data, &p); err != nil {
		return models.CoCPolicy{}, err
	}

	if p.Filename == "" {
		return models.CoCPolicy{}, fmt.Errorf("policy filename is empty")
	}
	for _, code := range requiredActions {
		if _, ok := p.Action(code); !ok {
			return models.CoCPolicy{}, fmt.Errorf("policy has no %s action", code)
		}
	}
	return p, nil
}

// CodeOfConduct returns the embedded code of conduct policy.
func CodeOfConduct() (models.CoCPolicy, error) {
	data, err := catalog.ReadFile("catalog/code-of-conduct.json")
	if err != nil {
		return models.CoCPolicy{}, err
	}
	return FromJSON(data)
}
