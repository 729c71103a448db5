package ports

import "context"

// LoginInput carries the credentials presented at POST /api/auth/login.
type LoginInput struct {
	Email    string
	Password string
}

// AuthService authenticates a client and issues a bearer token bound to its
// identity.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) (token string, err error)
}
