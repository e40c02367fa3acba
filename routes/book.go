package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/controllers"
)

// SetupBookRoutes registers the catalogue and recommendation routes.
func SetupBookRoutes(r *gin.Engine, bc *controllers.BookController, rec *controllers.RecommendationController) {
	books := r.Group("/api/books")
	books.GET("", bc.List)
	books.GET("/:id", bc.Get)
	books.GET("/:id/reviews", bc.GetReviews)

	r.GET("/api/recommendations/user/:id", rec.Get)
}
