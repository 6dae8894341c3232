package users

import (
	"context"

	"github.com/dmitrijs2005/socialecho/internal/admin/models"
)

type Repository interface {
	FindByRole(ctx context.Context, role string) ([]models.User, error)
}
