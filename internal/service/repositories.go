package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

type RepositoryService interface {
	ListAll(ctx context.Context, org string) ([]models.Repository, error)
	Get(ctx context.Context, fullName string) (models.Repository, error)
}

type repositoriesService struct {
	gh github.Client
}

func NewRepositoriesService(ghClient github.Client) RepositoryService {
	return &repositoriesService{gh: ghClient}
}

func (s *repositoriesService) ListAll(ctx context.Context, org string) ([]models.Repository, error) {
	repos, err := s.gh.ListOrgRepos(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("listing repositories of %s: %w", org, err)
	}
	return repos, nil
}

func (s *repositoriesService) Get(ctx context.Context, fullName string) (models.Repository, error) {
	owner, name, err := SplitFullName(fullName)
	if err != nil {
		return models.Repository{}, err
	}

	repo, err := s.gh.GetRepository(ctx, owner, name)
	if err != nil {
		return models.Repository{}, fmt.Errorf("getting repository %s: %w", fullName, err)
	}
	return repo, nil
}

// SplitFullName splits "owner/repo".
func SplitFullName(fullName string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", fullName)
	}
	return owner, name, nil
}
