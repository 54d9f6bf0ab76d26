package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Observeo-tech/template-go-api/internal/domain/entity"
	"github.com/Observeo-tech/template-go-api/internal/domain/repository"
	"github.com/Observeo-tech/template-go-api/pkg/helpers"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. Callers must not be able to tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// PasswordHasher is the one-way hashing capability the service depends on.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(plain, hash string) bool
}

// AuthResult is the value returned once per successful login. User carries
// no password hash; Token stays empty until a token strategy is wired in.
type AuthResult struct {
	User    entity.PublicUser `json:"user"`
	Token   string            `json:"token,omitempty"`
	Message string            `json:"message"`
}

// Service verifies credentials against the injected store and hasher.
// It holds no state across calls and performs no writes.
type Service struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
	Logger *logrus.Logger
}

func NewService(repo repository.UserRepository, hasher PasswordHasher, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Hasher: hasher, Logger: logger}
}

// Login authenticates an email/password pair.
//
// The email is normalized here even though the validation layer already
// did so; the service must not assume its caller normalized. An unknown
// email and a failed password comparison both yield ErrInvalidCredentials.
// Any other repository error is an infrastructure failure and propagates
// wrapped, never collapsed into ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = helpers.NormalizeEmail(email)

	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("credential store lookup failed")
		}
		return nil, fmt.Errorf("credential store: %w", err)
	}

	if !s.Hasher.Compare(password, u.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &AuthResult{
		User:    u.Public(),
		Message: "Login successful",
	}, nil
}

// GetUser resolves a user by id for session-backed endpoints.
func (s *Service) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return s.Repo.FindByID(ctx, id)
}
