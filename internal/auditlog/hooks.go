// Package auditlog tallies hook installations from exported organization audit logs.
package auditlog

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"slices"
	"time"

	"go.uber.org/zap"
)

const (
	hookCreate  = "hook.create"
	hookDestroy = "hook.destroy"
)

var hookPattern = regexp.MustCompile(`(?:un)?installed (.+)\sfor ([\w/]+)`)

// Entry is the subset of an exported audit log record this package reads.
type Entry struct {
	Type string    `json:"type"`
	What string    `json:"what"`
	When time.Time `json:"when"`
}

// Usage is the number of repositories a service is installed in.
type Usage struct {
	Service      string
	Repositories int
}

// Decode reads one exported audit log document, a JSON array of entries.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding audit log: %w", err)
	}
	return entries, nil
}

// TallyHooks replays hook creations and removals in time order and counts the
// repositories each service remains installed in, most used first.
func TallyHooks(entries []Entry, logger *zap.Logger) []Usage {
	var hooks []Entry
	for _, e := range entries {
		if e.Type == hookCreate || e.Type == hookDestroy {
			hooks = append(hooks, e)
		}
	}
	slices.SortStableFunc(hooks, func(a, b Entry) int { return a.When.Compare(b.When) })

	installed := map[string]map[string]struct{}{}
	for _, e := range hooks {
		m := hookPattern.FindStringSubmatch(e.What)
		if m == nil {
			logger.Warn("unrecognized hook entry", zap.String("type", e.Type), zap.String("what", e.What))
			continue
		}
		service, repo := m[1], m[2]

		switch e.Type {
		case hookCreate:
			if installed[service] == nil {
				installed[service] = map[string]struct{}{}
			}
			installed[service][repo] = struct{}{}
		case hookDestroy:
			repos, ok := installed[service]
			if !ok {
				continue
			}
			delete(repos, repo)
			if len(repos) == 0 {
				delete(installed, service)
			}
		}
	}

	usage := make([]Usage, 0, len(installed))
	for service, repos := range installed {
		usage = append(usage, Usage{Service: service, Repositories: len(repos)})
	}
	slices.SortFunc(usage, func(a, b Usage) int {
		if c := cmp.Compare(b.Repositories, a.Repositories); c != 0 {
			return c
		}
		return cmp.Compare(a.Service, b.Service)
	})
	return usage
}
