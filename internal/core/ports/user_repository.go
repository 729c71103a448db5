package ports

import (
	"context"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// ListUsersFilter is the repository-level query for end users. ClientID is
// always non-zero: tenant isolation is enforced inside the query, not by
// post-filtering results.
type ListUsersFilter struct {
	ClientID int64
	Search   string
	Offset   int
	Limit    int
}

// UserRepository defines persistence operations for end users.
type UserRepository interface {
	// List returns one page of users matching filter and the total count
	// over the filtered set before pagination.
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, int64, error)
	// FindByID retrieves a user by id within the given tenant. A user that
	// exists under another tenant yields domain.ErrUserNotFound, identical
	// to a missing id.
	FindByID(ctx context.Context, id, clientID int64) (*domain.User, error)
	// Create inserts a new user and returns it with its assigned id.
	// Returns domain.ErrUserExists when (email, client) is already taken;
	// the unique index owns this check, there is no read-before-write.
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// Delete removes a user by id within the given tenant.
	// Returns domain.ErrUserNotFound when no row matched.
	Delete(ctx context.Context, id, clientID int64) error
	EnsureIndexes(ctx context.Context) error
}
