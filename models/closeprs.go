package models

// CloseTarget is one repository whose pull requests are closed on sight.
type CloseTarget struct {
	Organization string `yaml:"organization"`
	Repository   string `yaml:"repository"`
	Message      string `yaml:"message"`
	Lock         bool   `yaml:"lock"`
	Close        bool   `yaml:"close"`
}

func (t CloseTarget) FullName() string {
	return t.Organization + "/" + t.Repository
}
