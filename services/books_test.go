package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oussama1399/BookQuest/apperrors"
	"github.com/oussama1399/BookQuest/models"
	"github.com/oussama1399/BookQuest/services"
)

func TestGetBook(t *testing.T) {
	bookStore := &fakeBookStore{}
	book := seedBook(bookStore, "Dune", "Sci-Fi")

	reviewer := primitive.NewObjectID()
	reviewStore := &fakeReviewStore{userNames: map[primitive.ObjectID]string{reviewer: "Ada"}}
	seedReview(reviewStore, reviewer, book.ID, 5)
	seedReview(reviewStore, primitive.NewObjectID(), book.ID, 3)

	svc := services.NewBookService(bookStore, reviewStore)

	got, reviews, err := svc.Get(context.Background(), book.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	// Reviewer names are joined in; unknown reviewers fall back to
	// Anonymous.
	require.Len(t, reviews, 2)
	assert.Equal(t, "Ada", reviews[0].UserName)
	assert.Equal(t, "Anonymous", reviews[1].UserName)
}

func TestGetBook_IDErrors(t *testing.T) {
	svc := services.NewBookService(&fakeBookStore{}, &fakeReviewStore{})

	// Wrong length is an invalid identifier, not a missing book.
	_, _, err := svc.Get(context.Background(), "123")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)

	_, _, err = svc.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListBooks_GenreFilter(t *testing.T) {
	bookStore := &fakeBookStore{}
	seedBook(bookStore, "Dune", "Sci-Fi")
	seedBook(bookStore, "The Hobbit", "Fantasy")

	svc := services.NewBookService(bookStore, &fakeReviewStore{})

	books, err := svc.List(context.Background(), "Fantasy", "")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Hobbit", books[0].Title)

	books, err = svc.List(context.Background(), "", "")
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestListBooks_SearchFilter(t *testing.T) {
	bookStore := &fakeBookStore{books: []*models.Book{
		{ID: primitive.NewObjectID(), Title: "Dune", Author: "Frank Herbert", Genre: []string{"Sci-Fi"}},
		{ID: primitive.NewObjectID(), Title: "Dune Messiah", Author: "Frank Herbert", Genre: []string{"Sci-Fi"}},
		{ID: primitive.NewObjectID(), Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: []string{"Fantasy"}},
	}}

	svc := services.NewBookService(bookStore, &fakeReviewStore{})

	// Title match is case-insensitive.
	books, err := svc.List(context.Background(), "", "dune")
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Dune", books[0].Title)
	assert.Equal(t, "Dune Messiah", books[1].Title)

	// Author matches too.
	books, err = svc.List(context.Background(), "", "tolkien")
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Hobbit", books[0].Title)

	// Search combines with the genre filter.
	books, err = svc.List(context.Background(), "Fantasy", "dune")
	require.NoError(t, err)
	assert.Empty(t, books)

	books, err = svc.List(context.Background(), "", "no such book")
	require.NoError(t, err)
	assert.Empty(t, books)
}
