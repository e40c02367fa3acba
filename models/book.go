package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is seed data maintained outside the API; avg_rating is the
// only field the application mutates, and it stays unset until the
// first review lands.
type Book struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Author          string             `json:"author" bson:"author"`
	Genre           []string           `json:"genre" bson:"genre"`
	PublicationYear int                `json:"publication_year,omitempty" bson:"publication_year,omitempty"`
	CoverURL        string             `json:"cover_url,omitempty" bson:"cover_url,omitempty"`
	AvgRating       *float64           `json:"avg_rating,omitempty" bson:"avg_rating,omitempty"`
}

// BookSummary is the shape recommendations surface: no rating and no
// score fields.
type BookSummary struct {
	ID              string   `json:"_id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Genre           []string `json:"genre"`
	PublicationYear int      `json:"publication_year,omitempty"`
	CoverURL        string   `json:"cover_url,omitempty"`
}
