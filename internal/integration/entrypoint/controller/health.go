// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController reports liveness of the API and its backing services.
type HealthController struct {
	dbCheck    func() bool
	cacheCheck func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(dbCheck, cacheCheck func() bool) *HealthController {
	return &HealthController{
		dbCheck:    dbCheck,
		cacheCheck: cacheCheck,
	}
}

// Check handles GET /health requests. The endpoint always answers 200 so a
// transient dependency blip does not take the instance out of rotation;
// dependency reachability is reported in the body instead.
func (h *HealthController) Check(c *gin.Context) {
	status := func(check func() bool) string {
		if check != nil && check() {
			return "connected"
		}
		return "disconnected"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "ok",
		Database:  status(h.dbCheck),
		Cache:     status(h.cacheCheck),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
