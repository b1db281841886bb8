// Package service contains application services between HTTP handlers and repositories.
package service

import (
	"context"
	"errors"

	pkgcrypto "github.com/vkurdin/study-organizer/internal/crypto"
	"github.com/vkurdin/study-organizer/internal/errs"
	"github.com/vkurdin/study-organizer/internal/limiter"
	"github.com/vkurdin/study-organizer/internal/model"
	"github.com/vkurdin/study-organizer/internal/repository"
	"github.com/vkurdin/study-organizer/internal/token"
)

// AuthService defines registration, login and session operations.
type AuthService interface {
	// Register creates a new user and returns it with a fresh token.
	Register(ctx context.Context, username, password, repeatPassword string) (*model.User, string, error)
	// LoginWithIP applies rate-limiting and authenticates the user.
	LoginWithIP(ctx context.Context, username, password, ip string) (*model.User, string, error)
	// Session resolves the user behind a previously verified token.
	Session(ctx context.Context, username string) (*model.User, error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Manager
	lim    limiter.Limiter
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Manager, lim limiter.Limiter) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, lim: lim}
}

// Register creates a new account after checking the repeated password and
// username availability.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password, repeatPassword string) (*model.User, string, error) {
	if username == "" || password == "" {
		return nil, "", errors.New("empty username/password")
	}
	if password != repeatPassword {
		return nil, "", errs.ErrPasswordMismatch
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, "", errs.ErrAlreadyExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, "", err
	}

	hash, err := pkgcrypto.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u := &model.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	tok, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// LoginWithIP authenticates with rate limiting by (username, ip).
// Unknown username and wrong password are indistinguishable to the caller.
func (s *AuthServiceImpl) LoginWithIP(ctx context.Context, username, password, ip string) (*model.User, string, error) {
	ipHash := limiter.HashIP(ip)

	allowed, _, err := s.lim.Allow(ctx, username, ipHash)
	if err != nil {
		return nil, "", err
	}
	if !allowed {
		return nil, "", errs.ErrRateLimited
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !pkgcrypto.VerifyPassword(password, u.PasswordHash) {
		if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
			return nil, "", errs.ErrRateLimited
		}
		// lookup errors are masked the same as a wrong password
		return nil, "", errs.ErrUnauthorized
	}

	// best-effort counter reset
	_ = s.lim.Success(ctx, username, ipHash)

	tok, err := s.tokens.Issue(u.ID, u.Username)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

// Session returns the account behind a verified token's username.
// A well-formed token for a since-deleted user yields errs.ErrNotFound.
func (s *AuthServiceImpl) Session(ctx context.Context, username string) (*model.User, error) {
	return s.users.GetByUsername(ctx, username)
}
