package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/response"
	"github.com/oussama1399/BookQuest/services"
)

type RecommendationController struct {
	recs *services.RecommendationService
}

func NewRecommendationController(recs *services.RecommendationService) *RecommendationController {
	return &RecommendationController{recs: recs}
}

// Get returns up to `limit` recommended books for the user. An empty
// history is a normal empty result, never an error.
func (rc *RecommendationController) Get(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	recs, err := rc.recs.Recommend(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, recs)
}
