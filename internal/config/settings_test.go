package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, used, err := LoadSettings("", t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, "info", s.Common.LogLevel)
	assert.Equal(t, "console", s.Common.LogFormat)
	assert.Equal(t, 500, s.Quota.MinRemaining)
	assert.Equal(t, 5, s.CoC.MaxAttempts)
	assert.Equal(t, 5*time.Second, s.CoC.RetryBackoff)
	assert.Equal(t, "mozilla-github-standards", s.CoC.ApprovedAccount)
	assert.Equal(t, "admin-all-org-", s.Members.TeamPrefix)
	assert.Equal(t, "2fa_disabled", s.Members.WarningTeamPrefix)
	assert.Equal(t, 14*24*time.Hour, s.Invitations.Cutoff)
	assert.Equal(t, "ghadmin.db", s.Cache.Path)
}

func TestLoadSettings_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "coc:\n  max_attempts: 7\n  retry_backoff: 1m\n  targets:\n    - mozilla/one\n    - mozilla\nmembers:\n  tracker_repository: mozilla/admin\n  tracker_issue: 12\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	s, used, err := LoadSettings("", dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), used)
	assert.Equal(t, 7, s.CoC.MaxAttempts)
	assert.Equal(t, time.Minute, s.CoC.RetryBackoff)
	assert.Equal(t, []string{"mozilla/one", "mozilla"}, s.CoC.Targets)
	assert.Equal(t, "mozilla/admin", s.Members.TrackerRepository)
	assert.Equal(t, 12, s.Members.TrackerIssue)
	assert.Equal(t, 500, s.Quota.MinRemaining)
}

func TestLoadSettings_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("common:\n  log_level: warn\n"), 0o600))
	t.Setenv("GHADMIN_COMMON_LOG_LEVEL", "error")
	t.Setenv("GHADMIN_INVITATIONS_CUTOFF", "48h")
	t.Setenv("GHADMIN_COC_TARGETS", "mozilla/a,mozilla/b")

	s, used, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "error", s.Common.LogLevel)
	assert.Equal(t, 48*time.Hour, s.Invitations.Cutoff)
	assert.Equal(t, []string{"mozilla/a", "mozilla/b"}, s.CoC.Targets)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Setenv("GHADMIN_COC_MAX_ATTEMPTS", "0")

	_, _, err := LoadSettings("", t.TempDir())

	assert.ErrorContains(t, err, "coc.max_attempts")
}

func TestLoadSettings_MissingExplicitFile(t *testing.T) {
	_, _, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
