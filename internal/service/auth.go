package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ksaeil2001/capss/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when a login username isn't found, so the
// response time stays constant and usernames can't be enumerated by timing.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// IssueAnonymousToken creates a short-lived token with no user attached.
// Anyone can request one; it only gates the compute endpoints.
func (s *Service) IssueAnonymousToken(ctx context.Context) (string, error) {
	token := uuid.NewString()
	session := domain.Session{Anonymous: true}
	if err := s.cache.SaveSession(ctx, token, session, s.anonTokenTTL); err != nil {
		return "", fmt.Errorf("issue anonymous token: %w", err)
	}
	return token, nil
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, username, string(hash))
}

// Login verifies credentials and returns a fresh session token for the user.
func (s *Service) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, lookupErr := s.repo.GetUserByUsername(ctx, username)

	// Always run the bcrypt comparison, found or not.
	hashToCheck := string(dummyHash)
	if lookupErr == nil {
		hashToCheck = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hashToCheck), []byte(password))

	if lookupErr != nil {
		if errors.Is(lookupErr, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, lookupErr
	}
	if compareErr != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	session := domain.Session{UserID: user.ID}
	if err := s.cache.SaveSession(ctx, token, session, s.sessionTokenTTL); err != nil {
		return "", nil, fmt.Errorf("save session: %w", err)
	}
	return token, user, nil
}

// ResolveToken maps a bearer token to its session. Unknown or expired tokens
// return domain.ErrInvalidToken.
func (s *Service) ResolveToken(ctx context.Context, token string) (*domain.Session, error) {
	session, found, err := s.cache.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrInvalidToken
	}
	return session, nil
}

// Logout revokes a session token.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.cache.DeleteSession(ctx, token)
}
