package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Observeo-tech/template-go-api/internal/domain/entity"
	"github.com/Observeo-tech/template-go-api/internal/domain/repository"
	"github.com/Observeo-tech/template-go-api/pkg/helpers"
)

// --- fakes ---

type fakeUserRepo struct {
	users map[string]*entity.User // keyed by normalized email

	findByEmailCalls []string
	err              error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.findByEmailCalls = append(f.findByEmailCalls, email)
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Compare(plain, hash string) bool   { return hash == "hashed:"+plain }

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func seededRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: map[string]*entity.User{
			"user@example.com": {
				ID:           "u1",
				Email:        "user@example.com",
				PasswordHash: "hashed:password123",
				Name:         "Demo User",
				CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
				UpdatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			},
		},
	}
}

func newService(repo repository.UserRepository) *Service {
	return NewService(repo, fakeHasher{}, nil)
}

// --- tests ---

func TestLogin_Success(t *testing.T) {
	repo := seededRepo()
	s := newService(repo)

	res, err := s.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	require.Equal(t, "u1", res.User.ID)
	require.Equal(t, "user@example.com", res.User.Email)
	require.Equal(t, "Demo User", res.User.Name)
	require.Equal(t, "Login successful", res.Message)
	require.Empty(t, res.Token)
}

func TestLogin_NormalizesEmailBeforeLookup(t *testing.T) {
	repo := seededRepo()
	s := newService(repo)

	res, err := s.Login(context.Background(), "  USER@Example.COM ", "password123")
	require.NoError(t, err)
	require.Equal(t, "u1", res.User.ID)
	require.Equal(t, []string{"user@example.com"}, repo.findByEmailCalls)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	s := newService(seededRepo())

	_, errUnknown := s.Login(context.Background(), "ghost@example.com", "password123")
	_, errWrongPwd := s.Login(context.Background(), "user@example.com", "wrong-password")

	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPwd, ErrInvalidCredentials)
	require.Equal(t, errUnknown, errWrongPwd)
}

func TestLogin_InfrastructureFailurePropagates(t *testing.T) {
	repo := seededRepo()
	repo.err = errBoom{}
	s := newService(repo)

	_, err := s.Login(context.Background(), "user@example.com", "password123")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrInvalidCredentials)
	require.ErrorIs(t, err, errBoom{})
}

func TestLogin_IsIdempotent(t *testing.T) {
	repo := seededRepo()
	s := newService(repo)

	first, err := s.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)
	second, err := s.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	require.Equal(t, first, second)
	// the stored record is untouched
	require.Equal(t, "hashed:password123", repo.users["user@example.com"].PasswordHash)
}

func TestLogin_WithBcryptHasher(t *testing.T) {
	hasher := helpers.NewBcryptHasher()
	hash, err := hasher.Hash("password123")
	require.NoError(t, err)

	repo := seededRepo()
	repo.users["user@example.com"].PasswordHash = hash
	s := NewService(repo, hasher, nil)

	_, err = s.Login(context.Background(), "user@example.com", "password123")
	require.NoError(t, err)

	_, err = s.Login(context.Background(), "user@example.com", "Password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUser_NotFound(t *testing.T) {
	s := newService(seededRepo())
	_, err := s.GetUser(context.Background(), "missing")
	require.True(t, errors.Is(err, repository.ErrNotFound))
}
