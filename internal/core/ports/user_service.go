package ports

import (
	"context"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// ListUsersInput carries the query parameters of GET /api/users. ClientID is
// the authenticated tenant and is always set by the handler from the token
// claims — never from request input.
type ListUsersInput struct {
	ClientID int64
	Search   string // optional: substring match on first name, last name or email
	Page     int    // 1-based, floored to 1
	Limit    int    // 0 = not requested (defaults to 10); explicit values clamped to [1,100]
}

// CreateUserInput carries the payload of POST /api/users.
type CreateUserInput struct {
	ClientID  int64
	FirstName string
	LastName  string
	Email     string
}

// UserPage is one page of tenant-scoped users plus pagination metadata.
type UserPage struct {
	Items      []domain.User
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// UserService defines the tenant-scoped use cases over end users. Every
// operation takes the tenant explicitly; there is no ambient principal.
type UserService interface {
	List(ctx context.Context, in ListUsersInput) (*UserPage, error)
	Get(ctx context.Context, clientID, id int64) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	Delete(ctx context.Context, clientID, id int64) error
}
