package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/middleware"
	"github.com/oussama1399/BookQuest/models"
	"github.com/oussama1399/BookQuest/response"
	"github.com/oussama1399/BookQuest/services"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

type submitReviewRequest struct {
	BookID  string      `json:"book_id"`
	Rating  interface{} `json:"rating"`
	Comment string      `json:"comment"`
}

// Submit upserts the caller's review for a book. The user id comes
// from the verified token, never from the body.
func (rc *ReviewController) Submit(c *gin.Context) {
	userCtx, exists := c.Get(middleware.ContextUserKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	authUser, ok := userCtx.(*models.User)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid user data")
		return
	}

	var req submitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	reviewID, created, err := rc.reviews.SubmitReview(
		c.Request.Context(), authUser.ID.Hex(), req.BookID, req.Rating, req.Comment)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"review_id": reviewID, "created": created})
}
