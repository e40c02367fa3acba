package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oussama1399/BookQuest/apperrors"
	"github.com/oussama1399/BookQuest/models"
)

// The services depend on these store interfaces rather than on the
// Mongo repositories directly, so the business rules can be exercised
// against in-memory fakes.

type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type BookStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	List(ctx context.Context, genre, search string) ([]models.Book, error)
	FindByGenre(ctx context.Context, genre string) ([]models.Book, error)
	SetAvgRating(ctx context.Context, id primitive.ObjectID, avg float64) error
}

type ReviewStore interface {
	FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.Review, error)
	Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, rating int, comment string, updatedAt time.Time) error
	FindByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.Review, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error)
	FindRatedAtLeastByUser(ctx context.Context, userID primitive.ObjectID, minRating int) ([]models.Review, error)
	FindByBookWithUsers(ctx context.Context, bookID primitive.ObjectID) ([]models.BookReview, error)
}

// parseObjectID is the single malformed-identifier gate: anything
// that is not a 24-char hex string maps to ErrInvalidID, never to a
// not-found result.
func parseObjectID(field, s string) (primitive.ObjectID, error) {
	if len(s) != 24 {
		return primitive.NilObjectID, fmt.Errorf("%s: %w", field, apperrors.ErrInvalidID)
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s: %w", field, apperrors.ErrInvalidID)
	}
	return id, nil
}

// storeErr wraps a failed data-store call so handlers can report it
// uniformly.
func storeErr(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
}
