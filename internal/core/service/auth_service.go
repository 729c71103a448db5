package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

// LoginThrottle abstracts the failed-login counter (Redis).
type LoginThrottle interface {
	// TooMany reports whether the email has exceeded the failure budget.
	TooMany(ctx context.Context, email string) (bool, error)
	// RecordFailure adds one failed attempt for the email.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// AuthService implements client login and token issuance.
type AuthService struct {
	clients   ports.ClientRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(clients ports.ClientRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		clients:   clients,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login authenticates a client by email and password and returns a signed
// bearer token. Unknown, inactive, and wrong-password outcomes are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (string, error) {
	if in.Email == "" || in.Password == "" {
		return "", domain.ErrMissingCredentials
	}

	email := domain.NormalizeEmail(in.Email)

	blocked, err := s.throttle.TooMany(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle check failed, processing anyway")
	} else if blocked {
		return "", domain.ErrTooManyAttempts
	}

	client, err := s.clients.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			s.recordFailure(ctx, email)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(in.Password)) != nil {
		s.recordFailure(ctx, email)
		return "", domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}

	token, err := s.generateToken(client)
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("client_id", client.ID).Msg("client logged in")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *AuthService) generateToken(client *domain.Client) (string, error) {
	claims := jwt.MapClaims{
		"client_id": client.ID,
		"email":     client.Email,
		"active":    client.Active,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
