package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oussama1399/BookQuest/config"
	"github.com/oussama1399/BookQuest/database"
	"github.com/oussama1399/BookQuest/models"
)

type ReviewRepository struct {
	coll *mongo.Collection
}

func NewReviewRepository(store *database.Store) *ReviewRepository {
	return &ReviewRepository{coll: store.Collection(config.DB_Collection.Reviews)}
}

// FindByUserAndBook locates the single review for a (user, book)
// pair, or (nil, nil) when the user has not reviewed the book.
func (r *ReviewRepository) FindByUserAndBook(ctx context.Context, userID, bookID primitive.ObjectID) (*models.Review, error) {
	var review models.Review
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "book_id": bookID}).Decode(&review)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review *models.Review) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

// Update overwrites rating and comment in place and stamps
// updated_at; _id and created_at are untouched.
func (r *ReviewRepository) Update(ctx context.Context, id primitive.ObjectID, rating int, comment string, updatedAt time.Time) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"rating":     rating,
		"comment":    comment,
		"updated_at": updatedAt,
	}})
	return err
}

func (r *ReviewRepository) FindByBook(ctx context.Context, bookID primitive.ObjectID) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"book_id": bookID})
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindRatedAtLeastByUser returns the user's reviews with rating at or
// above the threshold.
func (r *ReviewRepository) FindRatedAtLeastByUser(ctx context.Context, userID primitive.ObjectID, minRating int) ([]models.Review, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID, "rating": bson.M{"$gte": minRating}})
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// FindByBookWithUsers joins each of the book's reviews with its
// author's name, falling back to "Anonymous" for deleted accounts.
func (r *ReviewRepository) FindByBookWithUsers(ctx context.Context, bookID primitive.ObjectID) ([]models.BookReview, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"book_id": bookID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         string(config.DB_Collection.Users),
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$project", Value: bson.M{
			"rating":     1,
			"comment":    1,
			"created_at": 1,
			"user_name":  bson.M{"$ifNull": bson.A{"$user.name", "Anonymous"}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	reviews := []models.BookReview{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
