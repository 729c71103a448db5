package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	byEmail map[string]*domain.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{byEmail: make(map[string]*domain.Client)}
}

func (r *stubClientRepo) seed(t *testing.T, id int64, email, password string, active bool) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.byEmail[email] = &domain.Client{
		ID:           id,
		Name:         "Client " + email,
		Email:        email,
		PasswordHash: string(hash),
		Active:       active,
		CreatedAt:    time.Now().UTC(),
	}
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, exists := r.byEmail[c.Email]; exists {
		return nil, domain.ErrClientExists
	}
	clone := *c
	r.byEmail[c.Email] = &clone
	return &clone, nil
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	c, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) FindActiveByEmail(_ context.Context, email string) (*domain.Client, error) {
	c, ok := r.byEmail[email]
	if !ok || !c.Active {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubClientRepo) EnsureIndexes(_ context.Context) error { return nil }

type stubThrottle struct {
	failures map[string]int
	limit    int
}

func newStubThrottle(limit int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), limit: limit}
}

func (s *stubThrottle) TooMany(_ context.Context, email string) (bool, error) {
	return s.failures[email] >= s.limit, nil
}

func (s *stubThrottle) RecordFailure(_ context.Context, email string) error {
	s.failures[email]++
	return nil
}

func (s *stubThrottle) Reset(_ context.Context, email string) error {
	delete(s.failures, email)
	return nil
}

func newAuthService(repo ports.ClientRepository, throttle LoginThrottle) *AuthService {
	return NewAuthService(repo, throttle, "secret", time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestLogin_Success(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(t, 1, "admin@techstore.com", "password123", true)
	svc := newAuthService(repo, newStubThrottle(5))

	token, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "admin@techstore.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected token, got empty")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["client_id"] != float64(1) {
		t.Errorf("expected client_id 1, got %v", claims["client_id"])
	}
	if claims["active"] != true {
		t.Errorf("expected active claim, got %v", claims["active"])
	}
}

func TestLogin_EmailIsNormalized(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(t, 1, "admin@shop1.com", "password123", true)
	svc := newAuthService(repo, newStubThrottle(5))

	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "  Admin@SHOP1.com ",
		Password: "password123",
	}); err != nil {
		t.Fatalf("expected normalized email to match, got %v", err)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newAuthService(newStubClientRepo(), newStubThrottle(5))

	if _, err := svc.Login(context.Background(), ports.LoginInput{Email: "x@x.com"}); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), ports.LoginInput{Password: "pass"}); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestLogin_UnknownClient(t *testing.T) {
	svc := newAuthService(newStubClientRepo(), newStubThrottle(5))

	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "ghost@example.com",
		Password: "pass",
	}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_InactiveClient(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(t, 2, "x@x.com", "password123", false)
	svc := newAuthService(repo, newStubThrottle(5))

	// An inactive client must be indistinguishable from an unknown one.
	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "x@x.com",
		Password: "password123",
	}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(t, 1, "admin@shop1.com", "password123", true)
	svc := newAuthService(repo, newStubThrottle(5))

	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "admin@shop1.com",
		Password: "wrong",
	}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_ThrottledAfterRepeatedFailures(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(t, 1, "admin@shop1.com", "password123", true)
	throttle := newStubThrottle(3)
	svc := newAuthService(repo, throttle)

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(context.Background(), ports.LoginInput{
			Email:    "admin@shop1.com",
			Password: "wrong",
		}); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "admin@shop1.com",
		Password: "password123",
	}); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestLogin_SuccessResetsThrottle(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(t, 1, "admin@shop1.com", "password123", true)
	throttle := newStubThrottle(3)
	svc := newAuthService(repo, throttle)

	_, _ = svc.Login(context.Background(), ports.LoginInput{Email: "admin@shop1.com", Password: "wrong"})
	if _, err := svc.Login(context.Background(), ports.LoginInput{
		Email:    "admin@shop1.com",
		Password: "password123",
	}); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.failures["admin@shop1.com"] != 0 {
		t.Errorf("expected throttle reset, got %d failures", throttle.failures["admin@shop1.com"])
	}
}
