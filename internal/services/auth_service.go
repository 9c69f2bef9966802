package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/redis"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidPassword = errors.New("invalid password")

// SessionStore is what the auth service needs from the session backend.
// Satisfied by the redis client; tests use an in-memory fake.
type SessionStore interface {
	SetSession(token string, data *redis.SessionData, ttl time.Duration) error
	GetSession(token string) (*redis.SessionData, error)
	DeleteSession(token string) error
}

type AuthService interface {
	Login(password string) (string, error)
	Validate(token string) error
	Logout(token string) error
}

type authService struct {
	passwordHash []byte
	sessions     SessionStore
	sessionTTL   time.Duration
}

// NewAuthService hashes the shared access password once at startup. Login
// attempts compare against the hash, never against the plaintext.
func NewAuthService(password string, sessions SessionStore, sessionTTL time.Duration) (AuthService, error) {
	if password == "" {
		return nil, errors.New("access password is not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access password: %w", err)
	}

	return &authService{
		passwordHash: hash,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
	}, nil
}

func (s *authService) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidPassword
	}

	token := uuid.NewString()
	session := &redis.SessionData{
		Token:     token,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.SetSession(token, session, s.sessionTTL); err != nil {
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return token, nil
}

func (s *authService) Validate(token string) error {
	if token == "" {
		return redis.ErrSessionNotFound
	}
	_, err := s.sessions.GetSession(token)
	return err
}

func (s *authService) Logout(token string) error {
	return s.sessions.DeleteSession(token)
}
