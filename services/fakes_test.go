package services_test

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oussama1399/BookQuest/models"
)

// In-memory stand-ins for the Mongo repositories. Slices keep
// insertion order, mirroring the store's natural iteration order.

type fakeUserStore struct {
	users     []*models.User
	findErr   error
	insertErr error
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeUserStore) DeleteAll(_ context.Context) (int64, error) {
	count := int64(len(f.users))
	f.users = nil
	return count, nil
}

type fakeBookStore struct {
	books   []*models.Book
	findErr error
	setErr  error
}

func (f *fakeBookStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Book, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, b := range f.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookStore) List(_ context.Context, genre, search string) ([]models.Book, error) {
	result := []models.Book{}
	for _, b := range f.books {
		if genre != "" && !hasGenre(b, genre) {
			continue
		}
		if search != "" && !matchesSearch(b, search) {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

// matchesSearch mirrors the repository's case-insensitive regex over
// title and author.
func matchesSearch(b *models.Book, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Author), needle)
}

func (f *fakeBookStore) FindByGenre(_ context.Context, genre string) ([]models.Book, error) {
	result := []models.Book{}
	for _, b := range f.books {
		if hasGenre(b, genre) {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (f *fakeBookStore) SetAvgRating(_ context.Context, id primitive.ObjectID, avg float64) error {
	if f.setErr != nil {
		return f.setErr
	}
	for _, b := range f.books {
		if b.ID == id {
			b.AvgRating = &avg
			return nil
		}
	}
	return nil
}

func hasGenre(b *models.Book, genre string) bool {
	for _, g := range b.Genre {
		if g == genre {
			return true
		}
	}
	return false
}

type fakeReviewStore struct {
	reviews   []*models.Review
	userNames map[primitive.ObjectID]string
	findErr   error
	insertErr error
	updateErr error
}

func (f *fakeReviewStore) FindByUserAndBook(_ context.Context, userID, bookID primitive.ObjectID) (*models.Review, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.reviews {
		if r.UserID == userID && r.BookID == bookID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewStore) Insert(_ context.Context, review *models.Review) (primitive.ObjectID, error) {
	if f.insertErr != nil {
		return primitive.NilObjectID, f.insertErr
	}
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	f.reviews = append(f.reviews, review)
	return review.ID, nil
}

func (f *fakeReviewStore) Update(_ context.Context, id primitive.ObjectID, rating int, comment string, updatedAt time.Time) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for _, r := range f.reviews {
		if r.ID == id {
			r.Rating = rating
			r.Comment = comment
			ts := updatedAt
			r.UpdatedAt = &ts
		}
	}
	return nil
}

func (f *fakeReviewStore) FindByBook(_ context.Context, bookID primitive.ObjectID) ([]models.Review, error) {
	result := []models.Review{}
	for _, r := range f.reviews {
		if r.BookID == bookID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeReviewStore) FindByUser(_ context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	result := []models.Review{}
	for _, r := range f.reviews {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeReviewStore) FindRatedAtLeastByUser(_ context.Context, userID primitive.ObjectID, minRating int) ([]models.Review, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := []models.Review{}
	for _, r := range f.reviews {
		if r.UserID == userID && r.Rating >= minRating {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (f *fakeReviewStore) FindByBookWithUsers(_ context.Context, bookID primitive.ObjectID) ([]models.BookReview, error) {
	result := []models.BookReview{}
	for _, r := range f.reviews {
		if r.BookID != bookID {
			continue
		}
		name, ok := f.userNames[r.UserID]
		if !ok {
			name = "Anonymous"
		}
		result = append(result, models.BookReview{
			ID:        r.ID,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
			UserName:  name,
		})
	}
	return result, nil
}
