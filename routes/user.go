package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/controllers"
)

// SetupUserRoutes defines the routes for auth and user-related
// operations.
func SetupUserRoutes(r *gin.Engine, uc *controllers.UserController) {
	auth := r.Group("/api/auth")
	auth.POST("/register", uc.Register)
	auth.POST("/login", uc.Login)
	auth.GET("/check-email/:email", uc.CheckEmail)

	users := r.Group("/api/users")
	users.GET("/:id", uc.GetUser)
	users.GET("/:id/reviews", uc.GetUserReviews)

	r.POST("/api/dev/clear-users", uc.ClearUsers)
}
