package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review pairs a user with a book. At most one review exists per
// (user_id, book_id); resubmission updates the document in place.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	BookID    primitive.ObjectID `json:"book_id" bson:"book_id"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// BookReview is a review joined with its author's display name, as
// returned when listing a book's reviews.
type BookReview struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Rating    int                `json:"rating" bson:"rating"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UserName  string             `json:"user_name" bson:"user_name"`
}

// UserReview is a review joined with a slice of its book's fields,
// as returned when listing a user's review history.
type UserReview struct {
	ReviewID  string       `json:"review_id"`
	BookID    string       `json:"book_id"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt *time.Time   `json:"created_at"`
	Book      ReviewedBook `json:"book"`
}

type ReviewedBook struct {
	Title    string `json:"title"`
	Author   string `json:"author"`
	CoverURL string `json:"cover_url"`
}
