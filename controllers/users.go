package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/response"
	"github.com/oussama1399/BookQuest/services"
)

type UserController struct {
	users   *services.UserService
	reviews *services.ReviewService
}

func NewUserController(users *services.UserService, reviews *services.ReviewService) *UserController {
	return &UserController{users: users, reviews: reviews}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uc *UserController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	userID, err := uc.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"user_id": userID})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	token, user, err := uc.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{
		"token":   token,
		"user_id": user.ID.Hex(),
		"name":    user.Name,
		"email":   user.Email,
	})
}

func (uc *UserController) CheckEmail(c *gin.Context) {
	exists, err := uc.users.EmailExists(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"exists": exists})
}

func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.users.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, user)
}

func (uc *UserController) GetUserReviews(c *gin.Context) {
	reviews, err := uc.reviews.ListForUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reviews)
}

// ClearUsers wipes the users collection. Development only; requires
// an explicit confirmation header.
func (uc *UserController) ClearUsers(c *gin.Context) {
	if c.GetHeader("X-Confirm-Action") != "DELETE_ALL_USERS" {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Missing confirmation header")
		return
	}

	count, err := uc.users.ClearAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "All users deleted", "count": count})
}
