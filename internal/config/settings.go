package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "yaml"
	envPrefix  = "GHADMIN"
)

//go:embed defaults.yaml
var embeddedDefaults []byte

type Settings struct {
	Common      CommonSettings     `mapstructure:"common"`
	Quota       QuotaSettings      `mapstructure:"quota"`
	CoC         CoCSettings        `mapstructure:"coc"`
	Members     MemberSettings     `mapstructure:"members"`
	Invitations InvitationSettings `mapstructure:"invitations"`
	ClosePRs    ClosePRSettings    `mapstructure:"close_prs"`
	Cache       CacheSettings      `mapstructure:"cache"`
}

type CommonSettings struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type QuotaSettings struct {
	MinRemaining int `mapstructure:"min_remaining"`
}

type CoCSettings struct {
	MaxAttempts     int           `mapstructure:"max_attempts"`
	RetryBackoff    time.Duration `mapstructure:"retry_backoff"`
	ApprovedAccount string        `mapstructure:"approved_account"`
	// Targets are used when no repository or organization is given on the command line.
	Targets []string `mapstructure:"targets"`
}

type MemberSettings struct {
	TeamPrefix        string `mapstructure:"team_prefix"`
	WarningTeamPrefix string `mapstructure:"warning_team_prefix"`
	// TrackerRepository is the owner/repo holding the issue used to notify warned teams.
	TrackerRepository string `mapstructure:"tracker_repository"`
	TrackerIssue      int    `mapstructure:"tracker_issue"`
}

type InvitationSettings struct {
	Cutoff time.Duration `mapstructure:"cutoff"`
}

type ClosePRSettings struct {
	Config string `mapstructure:"config"`
}

type CacheSettings struct {
	Path string `mapstructure:"path"`
}

// LoadSettings merges the embedded defaults, the first config.yaml found in searchPaths
// (or configFile when set) and GHADMIN_* environment variables, in increasing priority.
// It returns the settings and the file used, if any.
func LoadSettings(configFile string, searchPaths ...string) (Settings, string, error) {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if err := v.MergeConfig(bytes.NewReader(embeddedDefaults)); err != nil {
		return Settings{}, "", fmt.Errorf("failed to merge embedded configuration: %w", err)
	}

	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, "", fmt.Errorf("failed to read configuration: %w", err)
		}
	}

	var s Settings
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&s, hooks); err != nil {
		return Settings{}, "", fmt.Errorf("failed to parse configuration: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, "", err
	}
	return s, v.ConfigFileUsed(), nil
}

func (s Settings) Validate() error {
	switch {
	case s.CoC.MaxAttempts < 1:
		return fmt.Errorf("coc.max_attempts must be at least 1, got %d", s.CoC.MaxAttempts)
	case s.CoC.RetryBackoff < 0:
		return fmt.Errorf("coc.retry_backoff must not be negative, got %s", s.CoC.RetryBackoff)
	case s.Quota.MinRemaining < 0:
		return fmt.Errorf("quota.min_remaining must not be negative, got %d", s.Quota.MinRemaining)
	case s.Invitations.Cutoff <= 0:
		return fmt.Errorf("invitations.cutoff must be positive, got %s", s.Invitations.Cutoff)
	}
	return nil
}
