package communities

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dmitrijs2005/socialecho/internal/admin/models"
	"github.com/dmitrijs2005/socialecho/internal/common"
)

const Collection = "communities"

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(Collection)}
}

func (r *MongoRepository) ListNames(ctx context.Context) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"name": 1, "_id": 0})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	names := make([]string, 0, len(docs))
	for _, d := range docs {
		names = append(names, d.Name)
	}
	return names, nil
}

func (r *MongoRepository) FindByName(ctx context.Context, name string) (*models.Community, error) {
	c := &models.Community{}
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *MongoRepository) AddModerator(ctx context.Context, communityID, userID primitive.ObjectID) (*models.Community, error) {
	update := bson.M{"$addToSet": bson.M{
		"moderators": userID,
		"members":    userID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	c := &models.Community{}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": communityID}, update, opts).Decode(c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}
