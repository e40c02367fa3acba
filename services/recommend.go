package services

import (
	"context"
	"sort"

	"github.com/oussama1399/BookQuest/models"
)

// DefaultRecommendationLimit caps the recommendation list when the
// caller does not ask for a specific size.
const DefaultRecommendationLimit = 5

// highRatingThreshold is the minimum rating for a review to count as
// a genre-preference signal.
const highRatingThreshold = 4

type RecommendationService struct {
	reviews ReviewStore
	books   BookStore
}

func NewRecommendationService(reviews ReviewStore, books BookStore) *RecommendationService {
	return &RecommendationService{reviews: reviews, books: books}
}

// Recommend derives a ranked list of unread books from the user's
// high-rated review history. Genres are weighted by how many
// high-rated books carry them; candidate books the user has already
// reviewed, at any rating, are skipped. A user with no qualifying
// history, or a malformed user id, gets an empty list rather than an
// error.
//
// Equal-count genres are ordered by name, so the output is
// deterministic.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, limit int) ([]models.BookSummary, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	recs := []models.BookSummary{}

	uid, err := parseObjectID("user_id", userID)
	if err != nil {
		return recs, nil
	}

	highRated, err := s.reviews.FindRatedAtLeastByUser(ctx, uid, highRatingThreshold)
	if err != nil {
		return nil, storeErr(err)
	}
	if len(highRated) == 0 {
		return recs, nil
	}

	genreCount := map[string]int{}
	for _, rev := range highRated {
		book, err := s.books.FindByID(ctx, rev.BookID)
		if err != nil {
			return nil, storeErr(err)
		}
		if book == nil {
			continue
		}
		for _, g := range book.Genre {
			genreCount[g]++
		}
	}
	if len(genreCount) == 0 {
		return recs, nil
	}

	topGenres := make([]string, 0, len(genreCount))
	for g := range genreCount {
		topGenres = append(topGenres, g)
	}
	sort.Slice(topGenres, func(i, j int) bool {
		if genreCount[topGenres[i]] != genreCount[topGenres[j]] {
			return genreCount[topGenres[i]] > genreCount[topGenres[j]]
		}
		return topGenres[i] < topGenres[j]
	})

	// Exclude everything the user has reviewed, not just the
	// high-rated slice.
	allReviews, err := s.reviews.FindByUser(ctx, uid)
	if err != nil {
		return nil, storeErr(err)
	}
	reviewed := map[string]bool{}
	for _, rev := range allReviews {
		reviewed[rev.BookID.Hex()] = true
	}

	for _, genre := range topGenres {
		if len(recs) >= limit {
			break
		}

		candidates, err := s.books.FindByGenre(ctx, genre)
		if err != nil {
			return nil, storeErr(err)
		}
		for _, book := range candidates {
			if reviewed[book.ID.Hex()] {
				continue
			}
			reviewed[book.ID.Hex()] = true
			recs = append(recs, models.BookSummary{
				ID:              book.ID.Hex(),
				Title:           book.Title,
				Author:          book.Author,
				Genre:           book.Genre,
				PublicationYear: book.PublicationYear,
				CoverURL:        book.CoverURL,
			})
			if len(recs) >= limit {
				break
			}
		}
	}

	return recs, nil
}
