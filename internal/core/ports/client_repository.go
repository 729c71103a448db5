package ports

import (
	"context"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// ClientRepository defines persistence operations for tenant accounts.
type ClientRepository interface {
	// Create inserts a new client and returns it with its assigned id.
	// Returns domain.ErrClientExists when the email is already taken.
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	// FindByEmail retrieves a client regardless of its active flag.
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	// FindActiveByEmail retrieves a client that is marked active. An
	// inactive or unknown client yields domain.ErrClientNotFound — callers
	// must not be able to tell the two apart.
	FindActiveByEmail(ctx context.Context, email string) (*domain.Client, error)
	EnsureIndexes(ctx context.Context) error
}
