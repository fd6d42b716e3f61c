package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_env")
	t.Setenv("GH_LOGIN", "owner")
	t.Setenv("GH_PASSWORD", "secret")

	cfg, err := Load()

	require.NoError(t, err)
	token, err := cfg.Token()
	require.NoError(t, err)
	assert.Equal(t, "ghp_env", token)

	login, password, err := cfg.BrowserCredentials()
	require.NoError(t, err)
	assert.Equal(t, "owner", login)
	assert.Equal(t, "secret", password)
}

func TestToken_CredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".credentials")
	require.NoError(t, os.WriteFile(path, []byte("bot-id\n  ghp_file  \n"), 0o600))

	cfg := &Config{CredentialsFile: path}
	token, err := cfg.Token()

	require.NoError(t, err)
	assert.Equal(t, "ghp_file", token)
}

func TestToken_Missing(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, []byte("only-an-id\n"), 0o600))

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no file configured", cfg: Config{}},
		{name: "file does not exist", cfg: Config{CredentialsFile: filepath.Join(dir, "absent")}},
		{name: "file without token line", cfg: Config{CredentialsFile: short}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Token()

			assert.ErrorIs(t, err, ErrMissingToken)
		})
	}
}

func TestBrowserCredentials_Missing(t *testing.T) {
	cfg := &Config{Login: "owner"}

	_, _, err := cfg.BrowserCredentials()

	assert.ErrorIs(t, err, ErrMissingBrowserAuth)
}
