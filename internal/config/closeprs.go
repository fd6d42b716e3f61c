package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tracker-tv/github-admin-bots/models"
)

// LoadCloseTargets reads the YAML list of repositories whose pull requests are closed.
func LoadCloseTargets(r io.Reader) ([]models.CloseTarget, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var targets []models.CloseTarget
	if err := dec.Decode(&targets); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding close targets: %w", err)
	}
	for i, t := range targets {
		if t.Organization == "" || t.Repository == "" {
			return nil, fmt.Errorf("close target %d: organization and repository are required", i)
		}
	}
	return targets, nil
}

func LoadCloseTargetsFile(path string) ([]models.CloseTarget, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCloseTargets(f)
}
