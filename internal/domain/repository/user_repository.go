package repository

import (
	"context"
	"errors"

	"github.com/Observeo-tech/template-go-api/internal/domain/entity"
)

// ErrNotFound is returned when no user matches the lookup key.
var ErrNotFound = errors.New("user not found")

// UserRepository is the persistence boundary for user records.
// FindByEmail expects an already-normalized (lowercased, trimmed) email.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
