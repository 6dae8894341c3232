// Package services holds the business rules of the moderator promotion tool.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/socialecho/internal/admin/models"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/repomanager"
	"github.com/dmitrijs2005/socialecho/internal/common"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

type PromotionService struct {
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewPromotionService(m repomanager.RepositoryManager, logger logging.Logger) *PromotionService {
	return &PromotionService{repomanager: m, logger: logger}
}

// Moderators lists users with the moderator role.
func (s *PromotionService) Moderators(ctx context.Context) ([]models.User, error) {
	users, err := s.repomanager.Users().FindByRole(ctx, common.RoleModerator)
	if err != nil {
		return nil, fmt.Errorf("error listing moderators: %w", err)
	}
	return users, nil
}

func (s *PromotionService) CommunityNames(ctx context.Context) ([]string, error) {
	names, err := s.repomanager.Communities().ListNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing communities: %w", err)
	}
	return names, nil
}

// Promote makes user a moderator and member of the named community.
// It returns ErrCommunityNotFound or ErrAlreadyModerator without writing
// anything when a precondition fails.
func (s *PromotionService) Promote(ctx context.Context, user models.User, communityName string) (*models.Community, error) {
	repo := s.repomanager.Communities()

	community, err := repo.FindByName(ctx, communityName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCommunityNotFound, communityName)
		}
		return nil, fmt.Errorf("error loading community: %w", err)
	}

	if community.HasModerator(user.ID) {
		return nil, fmt.Errorf("%w: %s in %s", ErrAlreadyModerator, user.Name, community.Name)
	}

	updated, err := repo.AddModerator(ctx, community.ID, user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCommunityNotFound, communityName)
		}
		return nil, fmt.Errorf("error updating community: %w", err)
	}

	s.logger.Info(ctx, "moderator added",
		"user_id", user.ID.Hex(), "community_id", updated.ID.Hex(),
		"moderators", len(updated.Moderators), "members", len(updated.Members))
	return updated, nil
}
