package services

import (
	"context"
	"fmt"

	"github.com/oussama1399/BookQuest/apperrors"
	"github.com/oussama1399/BookQuest/models"
)

type BookService struct {
	books   BookStore
	reviews ReviewStore
}

func NewBookService(books BookStore, reviews ReviewStore) *BookService {
	return &BookService{books: books, reviews: reviews}
}

// List returns the catalogue, optionally filtered by exact genre and
// by a case-insensitive title/author search.
func (s *BookService) List(ctx context.Context, genre, search string) ([]models.Book, error) {
	books, err := s.books.List(ctx, genre, search)
	if err != nil {
		return nil, storeErr(err)
	}
	return books, nil
}

// Get fetches one book together with its reviews (joined with
// reviewer names).
func (s *BookService) Get(ctx context.Context, bookID string) (*models.Book, []models.BookReview, error) {
	bid, err := parseObjectID("book_id", bookID)
	if err != nil {
		return nil, nil, err
	}

	book, err := s.books.FindByID(ctx, bid)
	if err != nil {
		return nil, nil, storeErr(err)
	}
	if book == nil {
		return nil, nil, fmt.Errorf("book: %w", apperrors.ErrNotFound)
	}

	reviews, err := s.reviews.FindByBookWithUsers(ctx, bid)
	if err != nil {
		return nil, nil, storeErr(err)
	}
	return book, reviews, nil
}
