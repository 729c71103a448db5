package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

const defaultUserLimit = 10

// UserService implements the tenant-scoped use cases over end users. The
// tenant id arrives explicitly on every call; the service never reaches for
// an ambient principal.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// List returns one page of the tenant's users, optionally filtered by a
// substring matched against first name, last name, or email.
func (s *UserService) List(ctx context.Context, in ports.ListUsersInput) (*ports.UserPage, error) {
	page := normalizePage(in.Page)
	limit := clampLimit(in.Limit, defaultUserLimit)

	items, total, err := s.repo.List(ctx, ports.ListUsersFilter{
		ClientID: in.ClientID,
		Search:   in.Search,
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", in.ClientID).Msg("failed to list users")
		return nil, err
	}

	return &ports.UserPage{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

// Get returns a single user within the tenant. A user belonging to another
// tenant is indistinguishable from a missing one.
func (s *UserService) Get(ctx context.Context, clientID, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id, clientID)
}

// Create persists a new user for the tenant. Duplicate (email, client)
// pairs are rejected by the store's unique index and surface as
// domain.ErrUserExists.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	user := domain.NewUser(in.FirstName, in.LastName, in.Email, in.ClientID)

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("client_id", in.ClientID).Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// Delete removes a user from the tenant. The removal is permanent.
func (s *UserService) Delete(ctx context.Context, clientID, id int64) error {
	if err := s.repo.Delete(ctx, id, clientID); err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", clientID).Int64("user_id", id).Msg("user deleted")
	return nil
}
