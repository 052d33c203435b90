package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-lightbnb/internal/domain/entity"
	repo "github.com/oksasatya/go-lightbnb/internal/domain/repository"
	"github.com/oksasatya/go-lightbnb/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
)

// Accounts registers and authenticates users. Unlike the bare user accessor
// it never hands a plaintext password to the store.
type Accounts struct {
	Repo   repo.UserRepository
	Logger logrus.FieldLogger
}

func NewAccounts(r repo.UserRepository, logger logrus.FieldLogger) *Accounts {
	return &Accounts{Repo: r, Logger: logger}
}

func (s *Accounts) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u, err := s.Repo.Create(ctx, &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("register user failed")
		}
		return nil, err
	}
	return u, nil
}

// Login checks password against the stored bcrypt hash.
func (s *Accounts) Login(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).Error("login lookup failed")
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Accounts) Profile(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}
