// Package services holds the business logic between HTTP controllers and
// the persistence layer. Each service depends on small store interfaces so
// tests can run against in-memory fakes.
package services

import (
	"context"

	"github.com/priyankmodi/storefront/app/models"
	"github.com/priyankmodi/storefront/pkg/apperr"
	"github.com/priyankmodi/storefront/pkg/auth"
)

// UserStore is the slice of the persistence layer the account flows need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// AuthService implements registration and login.
type AuthService struct {
	users  UserStore
	issuer *auth.Issuer
}

func NewAuthService(users UserStore, issuer *auth.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

// Register creates a new account and returns it with a fresh bearer token.
// A duplicate email is a Conflict; the first user is left untouched.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", apperr.Conflict("email already registered")
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.issuer.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	return user, token, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password collapse into the same Unauthorized so neither check leaks.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, "", apperr.Unauthorized("invalid credentials")
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperr.Unauthorized("invalid credentials")
	}

	token, err := s.issuer.Generate(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	return user, token, nil
}
