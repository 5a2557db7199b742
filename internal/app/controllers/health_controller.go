package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentforce/internal/app/models/dto"
	"github.com/yigit/studentforce/internal/app/store"
)

// Pinger checks the storage connection
type Pinger func(ctx context.Context) error

// ClientCounter reports connected change feed clients
type ClientCounter interface {
	ClientCount() int
}

// HealthController reports service liveness
type HealthController struct {
	store   *store.Store
	feed    ClientCounter
	storage string
	ping    Pinger
}

// NewHealthController creates a new HealthController. ping may be nil for
// transports without a connection.
func NewHealthController(s *store.Store, feed ClientCounter, storage string, ping Pinger) *HealthController {
	return &HealthController{
		store:   s,
		feed:    feed,
		storage: storage,
		ping:    ping,
	}
}

// GetHealth reports storage reachability and record counts
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.HealthResponse}
// @Failure 503 {object} dto.APIResponse{data=dto.HealthResponse}
// @Router /health [get]
func (c *HealthController) GetHealth(ctx *gin.Context) {
	snapshot := c.store.Snapshot()
	health := dto.HealthResponse{
		Status:    "ok",
		Storage:   c.storage,
		Students:  len(snapshot.Students),
		Courses:   len(snapshot.Courses),
		StorageOK: true,
	}
	if c.feed != nil {
		health.Clients = c.feed.ClientCount()
	}

	status := http.StatusOK
	if c.ping != nil {
		if err := c.ping(ctx.Request.Context()); err != nil {
			health.Status = "degraded"
			health.StorageOK = false
			status = http.StatusServiceUnavailable
		}
	}

	resp := dto.NewAPIResponse(health)
	resp.Success = status == http.StatusOK
	ctx.JSON(status, resp)
}
