package services

import (
	"testing"
	"time"

	"github.com/AztroNs/sistema-pendientes/internal/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSessionStore struct {
	sessions map[string]*redis.SessionData
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*redis.SessionData)}
}

func (f *fakeSessionStore) SetSession(token string, data *redis.SessionData, ttl time.Duration) error {
	f.sessions[token] = data
	return nil
}

func (f *fakeSessionStore) GetSession(token string) (*redis.SessionData, error) {
	session, ok := f.sessions[token]
	if !ok {
		return nil, redis.ErrSessionNotFound
	}
	return session, nil
}

func (f *fakeSessionStore) DeleteSession(token string) error {
	delete(f.sessions, token)
	return nil
}

func TestAuthServiceLoginRoundTrip(t *testing.T) {
	store := newFakeSessionStore()
	svc, err := NewAuthService("Familia2025", store, time.Hour)
	require.NoError(t, err)

	token, err := svc.Login("Familia2025")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, svc.Validate(token))

	require.NoError(t, svc.Logout(token))
	assert.Error(t, svc.Validate(token))
}

func TestAuthServiceWrongPassword(t *testing.T) {
	store := newFakeSessionStore()
	svc, err := NewAuthService("Familia2025", store, time.Hour)
	require.NoError(t, err)

	_, err = svc.Login("familia2025")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Empty(t, store.sessions)
}

func TestAuthServiceRequiresPassword(t *testing.T) {
	_, err := NewAuthService("", newFakeSessionStore(), time.Hour)
	assert.Error(t, err)
}

func TestAuthServiceValidateEmptyToken(t *testing.T) {
	svc, err := NewAuthService("Familia2025", newFakeSessionStore(), time.Hour)
	require.NoError(t, err)
	assert.Error(t, svc.Validate(""))
}
