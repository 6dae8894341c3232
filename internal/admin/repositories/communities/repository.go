package communities

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmitrijs2005/socialecho/internal/admin/models"
)

type Repository interface {
	ListNames(ctx context.Context) ([]string, error)
	// FindByName returns common.ErrorNotFound when no community has name.
	FindByName(ctx context.Context, name string) (*models.Community, error)
	// AddModerator adds userID to both moderators and members of the
	// community and returns the updated document.
	AddModerator(ctx context.Context, communityID, userID primitive.ObjectID) (*models.Community, error)
}
