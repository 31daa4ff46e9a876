package middleware

import (
	"net/http"

	"islamicdashboard/models"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
)

// SettingsSource exposes the current system switches.
type SettingsSource interface {
	Settings() models.SystemSettings
}

// MaintenanceMiddleware rejects writes while maintenance mode is on. Reads pass.
func MaintenanceMiddleware(settings SettingsSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if settings.Settings().MaintenanceMode {
			utils.JSONError(c, utils.Maintenance())
			c.Abort()
			return
		}
		c.Next()
	}
}
