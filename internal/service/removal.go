package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tracker-tv/github-admin-bots/internal/github"
	"github.com/tracker-tv/github-admin-bots/models"
)

type RemovalService interface {
	// Remove takes login out of org: its membership, unless it is an owner, and any outside
	// collaborator access. dryRun reports without changing anything.
	Remove(ctx context.Context, org, login string, dryRun bool) (models.RemovalResult, error)
}

type removalService struct {
	gh     github.Client
	logger *zap.Logger
}

func NewRemovalService(gh github.Client, logger *zap.Logger) RemovalService {
	return &removalService{gh: gh, logger: logger}
}

func (s *removalService) Remove(ctx context.Context, org, login string, dryRun bool) (models.RemovalResult, error) {
	result := models.RemovalResult{Login: login}

	membership, err := s.gh.GetMembership(ctx, org, login)
	switch {
	case err == nil:
		result.Role = membership.Role
	case github.IsNotFound(err):
		s.logger.Info("not a member", zap.String("organization", org), zap.String("login", login))
	default:
		return result, fmt.Errorf("getting membership of %s in %s: %w", login, org, err)
	}

	switch {
	case result.Role == roleAdmin:
		result.IsOwner = true
		s.logger.Warn("manually change owner to a member first", zap.String("organization", org), zap.String("login", login))
	case result.Role != "" && !dryRun:
		if err := s.gh.RemoveOrgMember(ctx, org, login); err != nil {
			return result, fmt.Errorf("removing %s from %s: %w", login, org, err)
		}
		result.RemovedMembership = true
		s.logger.Info("removed member", zap.String("organization", org), zap.String("login", login))
	}

	if dryRun {
		return result, nil
	}
	if err := s.gh.RemoveOutsideCollaborator(ctx, org, login); err != nil {
		// 404: never a collaborator. 422: login is still an owner.
		if github.IsNotFound(err) || github.IsUnprocessable(err) {
			return result, nil
		}
		return result, fmt.Errorf("removing %s as outside collaborator of %s: %w", login, org, err)
	}
	result.RemovedCollaborator = true
	return result, nil
}
