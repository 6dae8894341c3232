package repomanager

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/communities"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/users"
)

// MongoRepositoryManager vends MongoDB-backed repositories over one database.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri and pings the primary. Both are bounded by timeout.
func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*MongoRepositoryManager, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(uri).SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}

	return NewMongoRepositoryManager(client, database), nil
}

// NewMongoRepositoryManager wraps an already connected client.
func NewMongoRepositoryManager(client *mongo.Client, database string) *MongoRepositoryManager {
	return &MongoRepositoryManager{client: client, db: client.Database(database)}
}

func (m *MongoRepositoryManager) Database() *mongo.Database {
	return m.db
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.db)
}

func (m *MongoRepositoryManager) Communities() communities.Repository {
	return communities.NewMongoRepository(m.db)
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
