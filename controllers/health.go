package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oussama1399/BookQuest/response"
)

// Pinger is the slice of the store the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
	DatabaseName() string
}

type HealthController struct {
	store Pinger
}

func NewHealthController(store Pinger) *HealthController {
	return &HealthController{store: store}
}

func (hc *HealthController) Health(c *gin.Context) {
	if err := hc.store.Ping(c.Request.Context()); err != nil {
		response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", err.Error())
		return
	}
	response.Success(c, gin.H{"status": "ok", "database": hc.store.DatabaseName()})
}
