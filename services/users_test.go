package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oussama1399/BookQuest/apperrors"
	"github.com/oussama1399/BookQuest/services"
)

const testSecret = "test_secret_key_for_jwt_1234567890"

func TestRegister_Success(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewUserService(store, testSecret)

	userID, err := svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, userID)

	require.Len(t, store.users, 1)
	user := store.users[0]
	assert.Equal(t, "Ada", user.Name)
	// The stored password is a bcrypt hash, not the plaintext.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewUserService(store, testSecret)

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Imposter", "ada@example.com", "hunter2")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	// The conflict leaves the user count unchanged.
	assert.Len(t, store.users, 1)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := services.NewUserService(&fakeUserStore{}, testSecret)

	_, err := svc.Register(context.Background(), "", "ada@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Register(context.Background(), "Ada", "", "password123")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Register(context.Background(), "Ada", "ada@example.com", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestLogin(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewUserService(store, testSecret)

	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	token, user, err := svc.Login(context.Background(), "ada@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Ada", user.Name)

	_, _, err = svc.Login(context.Background(), "ada@example.com", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, _, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestEmailExists(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewUserService(store, testSecret)

	exists, err := svc.EmailExists(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	exists, err = svc.EmailExists(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetProfile(t *testing.T) {
	store := &fakeUserStore{}
	svc := services.NewUserService(store, testSecret)

	userID, err := svc.Register(context.Background(), "Ada", "ada@example.com", "password123")
	require.NoError(t, err)

	user, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)

	// Malformed id is rejected as invalid, never treated as missing.
	_, err = svc.GetProfile(context.Background(), "short")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.GetProfile(context.Background(), "64b0f0a0a0a0a0a0a0a0a0a0")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
