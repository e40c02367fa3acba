package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/response"
	"github.com/oussama1399/BookQuest/services"
)

type BookController struct {
	books   *services.BookService
	reviews *services.ReviewService
}

func NewBookController(books *services.BookService, reviews *services.ReviewService) *BookController {
	return &BookController{books: books, reviews: reviews}
}

func (bc *BookController) List(c *gin.Context) {
	books, err := bc.books.List(c.Request.Context(), c.Query("genre"), c.Query("search"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, books)
}

func (bc *BookController) Get(c *gin.Context) {
	book, reviews, err := bc.books.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, gin.H{"book": book, "reviews": reviews})
}

func (bc *BookController) GetReviews(c *gin.Context) {
	reviews, err := bc.reviews.ListForBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, reviews)
}
