package users

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/socialecho/internal/admin/models"
)

const Collection = "users"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

// FindByRole returns all users holding role, in storage order.
func (r *MongoRepository) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "email": 1, "role": 1})

	cur, err := r.coll.Find(ctx, bson.M{"role": role}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	users := make([]models.User, 0)
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return users, nil
}
