// Package repomanager connects to MongoDB and vends the repositories the
// promotion tool works with.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/communities"
	"github.com/dmitrijs2005/socialecho/internal/admin/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Communities() communities.Repository
	Close(ctx context.Context) error
}
