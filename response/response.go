package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/apperrors"
)

// Response is the standard API envelope.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success sends a 200 response.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

// Created sends a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

// Error sends an error response with an explicit status and code.
func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message},
	})
}

// FromError maps a service error onto a status code and error code.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidRating):
		Error(c, http.StatusBadRequest, "INVALID_RATING", err.Error())
	case errors.Is(err, apperrors.ErrInvalidID):
		Error(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	case errors.Is(err, apperrors.ErrValidation):
		Error(c, http.StatusBadRequest, "VALIDATION", err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		Error(c, http.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, apperrors.ErrStoreUnavailable):
		Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", err.Error())
	default:
		Error(c, http.StatusInternalServerError, "INTERNAL", err.Error())
	}
}
