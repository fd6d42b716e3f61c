package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

var (
	ErrMissingToken       = errors.New("no GitHub token: set GITHUB_TOKEN or provide a credentials file")
	ErrMissingBrowserAuth = errors.New("GH_LOGIN and GH_PASSWORD must be set")
)

// Config holds the secrets read from the environment.
type Config struct {
	GithubToken string `env:"GITHUB_TOKEN"`
	// CredentialsFile is read when GITHUB_TOKEN is unset: an identifier on the first line,
	// the token on the second.
	CredentialsFile string `env:"GITHUB_CREDENTIALS_FILE" envDefault:".credentials"`

	Login    string `env:"GH_LOGIN"`
	Password string `env:"GH_PASSWORD"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Token returns the API token from the environment, falling back to the credentials file.
func (c *Config) Token() (string, error) {
	if c.GithubToken != "" {
		return c.GithubToken, nil
	}
	if c.CredentialsFile == "" {
		return "", ErrMissingToken
	}

	token, err := readCredentials(c.CredentialsFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrMissingToken
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", c.CredentialsFile, err)
	}
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// BrowserCredentials returns the web login used by the billing scraper.
func (c *Config) BrowserCredentials() (login, password string, err error) {
	if c.Login == "" || c.Password == "" {
		return "", "", ErrMissingBrowserAuth
	}
	return c.Login, c.Password, nil
}

func readCredentials(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var lines []string
	for len(lines) < 2 && scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if len(lines) < 2 {
		return "", nil
	}
	return lines[1], nil
}
