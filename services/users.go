package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/oussama1399/BookQuest/apperrors"
	"github.com/oussama1399/BookQuest/models"
	"github.com/oussama1399/BookQuest/utils"
)

type UserService struct {
	users     UserStore
	jwtSecret string
}

func NewUserService(users UserStore, jwtSecret string) *UserService {
	return &UserService{users: users, jwtSecret: jwtSecret}
}

// Register creates an account. Email uniqueness is enforced here at
// write time: a duplicate registration is rejected without touching
// the store.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", fmt.Errorf("name, email and password are required: %w", apperrors.ErrValidation)
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", storeErr(err)
	}
	if existing != nil {
		return "", fmt.Errorf("email %q already exists: %w", email, apperrors.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		Name:      name,
		Email:     email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return "", storeErr(err)
	}
	return id.Hex(), nil
}

// Login verifies the credentials and mints a bearer token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, storeErr(err)
	}
	if user == nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// EmailExists reports whether an account with the email is already
// registered.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, storeErr(err)
	}
	return user != nil, nil
}

// GetProfile fetches a user by id; the password hash never leaves the
// model's JSON shape.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	uid, err := parseObjectID("user_id", userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		return nil, storeErr(err)
	}
	if user == nil {
		return nil, fmt.Errorf("user: %w", apperrors.ErrNotFound)
	}
	return user, nil
}

// ClearAll removes every user. Development helper only.
func (s *UserService) ClearAll(ctx context.Context) (int64, error) {
	count, err := s.users.DeleteAll(ctx)
	if err != nil {
		return 0, storeErr(err)
	}
	return count, nil
}
