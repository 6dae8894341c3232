package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dmitrijs2005/socialecho/internal/admin/models"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/communities"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/repomanager"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/users"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

// setupMongo starts a throwaway MongoDB and returns a connected manager.
func setupMongo(t *testing.T) *repomanager.MongoRepositoryManager {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	m, err := repomanager.Connect(ctx, uri, "db_socialecho_test", 30*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(context.Background()) })
	return m
}

func TestPromotionService_AgainstMongo(t *testing.T) {
	m := setupMongo(t)
	ctx := context.Background()

	db := m.Database()

	annID, carlID := primitive.NewObjectID(), primitive.NewObjectID()
	_, err := db.Collection(users.Collection).InsertMany(ctx, []any{
		models.User{ID: annID, Name: "Ann", Email: "ann@example.org", Role: "moderator"},
		models.User{ID: carlID, Name: "Carl", Email: "carl@example.org", Role: "user"},
	})
	require.NoError(t, err)
	_, err = db.Collection(communities.Collection).InsertOne(ctx, models.Community{
		Name: "golang", Moderators: []primitive.ObjectID{}, Members: []primitive.ObjectID{annID},
	})
	require.NoError(t, err)

	s := NewPromotionService(m, logging.Nop())

	mods, err := s.Moderators(ctx)
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.Equal(t, annID, mods[0].ID)

	c, err := s.Promote(ctx, mods[0], "golang")
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{annID}, c.Moderators)
	assert.Equal(t, []primitive.ObjectID{annID}, c.Members, "existing member is not duplicated")

	_, err = s.Promote(ctx, mods[0], "golang")
	require.ErrorIs(t, err, ErrAlreadyModerator)

	var stored models.Community
	require.NoError(t, db.Collection(communities.Collection).FindOne(ctx, bson.M{"name": "golang"}).Decode(&stored))
	assert.Len(t, stored.Moderators, 1)
	assert.Len(t, stored.Members, 1)
}
