package routes

import (
	"time"

	"islamicdashboard/config"
	"islamicdashboard/handlers"
	"islamicdashboard/middleware"
	"islamicdashboard/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps carries the shared collaborators the middleware chain needs.
type Deps struct {
	Config   config.Config
	Limiter  middleware.Limiter
	Settings middleware.SettingsSource
	Metrics  *utils.Metrics
}

// RegisterContentRoutes registers content library endpoints.
func RegisterContentRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, deps Deps) {
	content := api.Group("/content", middleware.MaintenanceMiddleware(deps.Settings))
	{
		content.GET("/stats", hb.ContentStats)

		content.GET("/duas", hb.ListDuasHandler)
		content.GET("/duas/:id", hb.GetDuaHandler)
		content.POST("/duas", hb.CreateDuaHandler)

		content.GET("/ruqya", hb.ListRuqyaHandler)
		content.GET("/ruqya/:id", hb.GetRuqyaHandler)
		content.POST("/ruqya", hb.CreateRuqyaHandler)

		content.GET("/books", hb.ListBooksHandler)
		content.GET("/books/:id", hb.GetBookHandler)
		content.POST("/books", hb.CreateBookHandler)
	}
}

// RegisterNotificationRoutes registers notification endpoints.
func RegisterNotificationRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, deps Deps) {
	notifications := api.Group("/notifications", middleware.MaintenanceMiddleware(deps.Settings))
	{
		notifications.GET("", hb.ListNotifications)
		notifications.GET("/stats", hb.NotificationStats)
		notifications.POST("/send", hb.SendNotification)
		notifications.POST("/announcement", hb.SendAnnouncement)
		notifications.PUT("/:id/read", hb.MarkNotification)
		notifications.DELETE("/:id", hb.DeleteNotification)
	}
}

// RegisterAuthRoutes registers admin login and device/user endpoints.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", hb.LoginHandler)
		auth.POST("/logout", hb.LogoutHandler)
		auth.POST("/register-device", hb.RegisterDeviceHandler)
		auth.GET("/profile/:userId", hb.GetProfileHandler)
		auth.PUT("/profile/:userId", hb.UpdateProfileHandler)
		auth.GET("/users", hb.ListUsersHandler)
		auth.GET("/users/stats", hb.UserStatsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	admin := api.Group("/admin")
	{
		admin.GET("/dashboard", hb.AdminHandler.DashboardHandler)
		admin.GET("/health", hb.AdminHandler.HealthHandler)
		admin.GET("/content/stats", hb.AdminHandler.ContentStatsHandler)
		admin.GET("/analytics/users", hb.AdminHandler.UserAnalyticsHandler)
		admin.GET("/analytics/content", hb.AdminHandler.ContentAnalyticsHandler)
		admin.GET("/settings", hb.AdminHandler.GetSettingsHandler)
		admin.PUT("/settings", hb.AdminHandler.UpdateSettingsHandler)
		admin.POST("/backup", hb.AdminHandler.BackupHandler)
		admin.GET("/backups", hb.AdminHandler.BackupsHandler)
		admin.GET("/logs", hb.AdminHandler.LogsHandler)
	}
}

// RegisterSystemRoutes registers the root, health and metrics endpoints.
func RegisterSystemRoutes(r *gin.Engine, hb *handlers.HandlerBundle, deps Deps) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Metrics.Registry, promhttp.HandlerOpts{})))
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, deps Deps) {
	if err := r.SetTrustedProxies(deps.Config.TrustedProxyList()); err != nil {
		utils.Named("routes").Warn("Invalid TRUSTED_PROXIES, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}

	// gzip wraps the writer before recovery runs so a panic response is
	// written through it. /metrics is compressed by promhttp itself.
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger())
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
	}
	r.Use(middleware.SecurityHeaders())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if deps.Config.BodyLimitBytes > 0 {
		r.Use(middleware.BodyLimit(deps.Config.BodyLimitBytes))
	}

	RegisterSystemRoutes(r, hb, deps)

	api := r.Group("/api")
	if deps.Limiter != nil {
		api.Use(middleware.RateLimitMiddleware(deps.Limiter))
	}
	RegisterContentRoutes(api, hb, deps)
	RegisterNotificationRoutes(api, hb, deps)
	RegisterAuthRoutes(api, hb)
	RegisterAdminRoutes(api, hb)

	r.NoRoute(hb.NotFoundHandler)
}
