package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/controllers"
)

// SetupReviewRoutes registers the authenticated review routes.
func SetupReviewRoutes(r *gin.Engine, rc *controllers.ReviewController, auth gin.HandlerFunc) {
	private := r.Group("/api")
	private.Use(auth)

	private.POST("/reviews", rc.Submit)
}
