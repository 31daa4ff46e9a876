package handlers

import (
	"fmt"
	"net/http"
	"time"

	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
)

// AvailableEndpoints is advertised in 404 responses.
var AvailableEndpoints = []string{
	"GET /health",
	"GET /api/content",
	"POST /api/notifications",
	"GET /api/admin",
	"POST /api/auth/login",
}

// SystemHandler serves the root, health and fallback routes.
type SystemHandler struct {
	Version string
}

func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{Version: version}
}

// RootHandler handles GET /.
func (h *SystemHandler) RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Islamic Dashboard Backend API",
		"version": h.Version,
		"endpoints": gin.H{
			"health":        "/health",
			"metrics":       "/metrics",
			"content":       "/api/content",
			"notifications": "/api/notifications",
			"admin":         "/api/admin",
			"auth":          "/api/auth",
		},
	})
}

// HealthHandler handles GET /health.
func (h *SystemHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Islamic Dashboard Backend is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.Version,
	})
}

type notFoundResponse struct {
	utils.ErrorResponse
	AvailableEndpoints []string `json:"availableEndpoints"`
}

// NotFoundHandler answers unmatched routes.
func (h *SystemHandler) NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, notFoundResponse{
		ErrorResponse: utils.ErrorResponse{
			Success: false,
			Error:   utils.CodeNotFound,
			Message: fmt.Sprintf("The endpoint %s does not exist", c.Request.URL.RequestURI()),
		},
		AvailableEndpoints: AvailableEndpoints,
	})
}
