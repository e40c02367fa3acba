package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oussama1399/BookQuest/apperrors"
	"github.com/oussama1399/BookQuest/models"
)

type ReviewService struct {
	reviews ReviewStore
	books   BookStore
	logger  zerolog.Logger
}

func NewReviewService(reviews ReviewStore, books BookStore, logger zerolog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, books: books, logger: logger}
}

// SubmitReview inserts or updates the single review for the
// (user, book) pair and then recomputes the book's aggregate rating.
// It returns the review id and whether a new review was created.
//
// The rating crosses the API as arbitrary JSON, so the type check
// lives here: a quoted "5" is an invalid rating, not a bind failure.
// Nothing is written until validation has passed in full.
func (s *ReviewService) SubmitReview(ctx context.Context, userID, bookID string, rating interface{}, comment string) (string, bool, error) {
	if bookID == "" {
		return "", false, fmt.Errorf("book_id is required: %w", apperrors.ErrValidation)
	}
	if rating == nil {
		return "", false, fmt.Errorf("rating is required: %w", apperrors.ErrValidation)
	}

	ratingValue, err := coerceRating(rating)
	if err != nil {
		return "", false, err
	}

	uid, err := parseObjectID("user_id", userID)
	if err != nil {
		return "", false, err
	}
	bid, err := parseObjectID("book_id", bookID)
	if err != nil {
		return "", false, err
	}

	existing, err := s.reviews.FindByUserAndBook(ctx, uid, bid)
	if err != nil {
		return "", false, storeErr(err)
	}

	var reviewID primitive.ObjectID
	created := false

	if existing != nil {
		if err := s.reviews.Update(ctx, existing.ID, ratingValue, comment, time.Now()); err != nil {
			return "", false, storeErr(err)
		}
		reviewID = existing.ID
	} else {
		review := &models.Review{
			UserID:    uid,
			BookID:    bid,
			Rating:    ratingValue,
			Comment:   comment,
			CreatedAt: time.Now(),
		}
		reviewID, err = s.reviews.Insert(ctx, review)
		if err != nil {
			return "", false, storeErr(err)
		}
		created = true
	}

	// The aggregate recompute is deliberately not transactional with
	// the review write; a failure here is logged and the submission
	// still succeeds.
	s.refreshBookRating(ctx, bid)

	return reviewID.Hex(), created, nil
}

// refreshBookRating recomputes the unweighted mean of all current
// ratings for the book, rounded half-up to one decimal, and writes it
// to avg_rating. With zero reviews the field is left alone.
func (s *ReviewService) refreshBookRating(ctx context.Context, bookID primitive.ObjectID) {
	all, err := s.reviews.FindByBook(ctx, bookID)
	if err != nil {
		s.logger.Error().Err(err).Str("book_id", bookID.Hex()).Msg("failed to load reviews for rating refresh")
		return
	}
	if len(all) == 0 {
		return
	}

	sum := 0
	for _, rev := range all {
		sum += rev.Rating
	}
	avg := roundHalfUp(float64(sum)/float64(len(all)), 1)

	if err := s.books.SetAvgRating(ctx, bookID, avg); err != nil {
		s.logger.Error().Err(err).Str("book_id", bookID.Hex()).Msg("failed to update book rating")
	}
}

// ListForBook returns a book's reviews joined with reviewer names.
func (s *ReviewService) ListForBook(ctx context.Context, bookID string) ([]models.BookReview, error) {
	bid, err := parseObjectID("book_id", bookID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByBookWithUsers(ctx, bid)
	if err != nil {
		return nil, storeErr(err)
	}
	return reviews, nil
}

// ListForUser returns a user's review history, each entry carrying
// the reviewed book's title, author, and cover. A review whose book
// has disappeared keeps empty book fields rather than failing.
func (s *ReviewService) ListForUser(ctx context.Context, userID string) ([]models.UserReview, error) {
	uid, err := parseObjectID("user_id", userID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.FindByUser(ctx, uid)
	if err != nil {
		return nil, storeErr(err)
	}

	result := []models.UserReview{}
	for _, rev := range reviews {
		entry := models.UserReview{
			ReviewID: rev.ID.Hex(),
			BookID:   rev.BookID.Hex(),
			Rating:   rev.Rating,
			Comment:  rev.Comment,
		}
		if !rev.CreatedAt.IsZero() {
			createdAt := rev.CreatedAt
			entry.CreatedAt = &createdAt
		}

		// A vanished book is tolerated with empty book fields; a
		// store failure is logged so it is not mistaken for one.
		book, err := s.books.FindByID(ctx, rev.BookID)
		if err != nil {
			s.logger.Error().Err(err).Str("book_id", rev.BookID.Hex()).Msg("failed to load book for review listing")
		} else if book != nil {
			entry.Book = models.ReviewedBook{
				Title:    book.Title,
				Author:   book.Author,
				CoverURL: book.CoverURL,
			}
		}
		result = append(result, entry)
	}
	return result, nil
}

// coerceRating accepts whole-valued JSON numbers in [1,5]; anything
// else, including numeric strings, is an invalid rating.
func coerceRating(v interface{}) (int, error) {
	var rating int
	switch n := v.(type) {
	case int:
		rating = n
	case float64:
		if n != math.Trunc(n) {
			return 0, apperrors.ErrInvalidRating
		}
		rating = int(n)
	default:
		return 0, apperrors.ErrInvalidRating
	}

	if rating < 1 || rating > 5 {
		return 0, apperrors.ErrInvalidRating
	}
	return rating, nil
}

// roundHalfUp rounds to the given number of decimal places, halves
// away from zero.
func roundHalfUp(x float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Floor(x*shift+0.5) / shift
}
