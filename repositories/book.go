package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oussama1399/BookQuest/config"
	"github.com/oussama1399/BookQuest/database"
	"github.com/oussama1399/BookQuest/models"
)

type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(store *database.Store) *BookRepository {
	return &BookRepository{coll: store.Collection(config.DB_Collection.Books)}
}

func (r *BookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns books matching the optional genre and search filters.
// Search matches title or author, case-insensitive.
func (r *BookRepository) List(ctx context.Context, genre, search string) ([]models.Book, error) {
	filter := bson.M{}
	if genre != "" {
		filter["genre"] = genre
	}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"author": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	books := []models.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// FindByGenre returns the books tagged with the genre, in the
// store's natural order.
func (r *BookRepository) FindByGenre(ctx context.Context, genre string) ([]models.Book, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"genre": genre})
	if err != nil {
		return nil, err
	}

	books := []models.Book{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

// SetAvgRating writes the derived aggregate onto the book document.
func (r *BookRepository) SetAvgRating(ctx context.Context, id primitive.ObjectID, avg float64) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"avg_rating": avg}})
	return err
}
