package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"islamicdashboard/config"
	"islamicdashboard/cron"
	"islamicdashboard/database"
	"islamicdashboard/handlers"
	"islamicdashboard/middleware"
	"islamicdashboard/routes"
	"islamicdashboard/services/admin"
	"islamicdashboard/services/auth"
	"islamicdashboard/services/content"
	"islamicdashboard/services/notification"
	"islamicdashboard/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	NotifierLog   = "log"
	NotifierFCM   = "fcm"
	NotifierQueue = "queue"
)

// deliveryNotifier builds the notifier that actually reaches devices.
func deliveryNotifier(ctx context.Context, cfg config.Config, m *utils.Metrics) notification.Notifier {
	logger := utils.Named("notifications")
	var next notification.Notifier = notification.LogNotifier{Logger: logger}

	if cfg.FirebaseCredentialsFile != "" {
		client, err := utils.NewFCMClient(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Warn("FCM unavailable, pushes will only be logged", zap.Error(err))
		} else if fcm, err := notification.NewFCMNotifier(client, cfg.PushTopic, logger); err != nil {
			logger.Warn("FCM notifier not configured, pushes will only be logged", zap.Error(err))
		} else {
			next = fcm
		}
	}
	return notification.InstrumentedNotifier{Next: next, Counter: m.Notifications}
}

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.Named("server")

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	stores, err := database.InitStores(cfg.AdminDefaultPassword)
	if err != nil {
		logger.Fatal("Failed to initialize stores", zap.Error(err))
	}

	verifier, err := auth.NewVerifier(cfg.AuthMode, cfg.AdminDefaultPassword, cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		logger.Fatal("Failed to configure credential verifier", zap.Error(err))
	}

	metrics := utils.NewMetrics()
	var redisClients []*redis.Client

	// Rate limiting is shared through Redis when it is configured.
	memoryLimiter := middleware.NewMemoryLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	var limiter middleware.Limiter = memoryLimiter
	if cfg.RedisAddr != "" {
		client, err := utils.NewRateLimitClient(cfg)
		if err != nil {
			logger.Warn("Falling back to in-process rate limiting", zap.Error(err))
		} else {
			limiter = &middleware.RedisLimiter{Client: client, Max: cfg.RateLimitMax, Window: cfg.RateLimitWindow}
			redisClients = append(redisClients, client)
			defer client.Close()
		}
	}

	// Push notifications.
	delivery := deliveryNotifier(ctx, cfg, metrics)
	notifier := delivery
	var worker *cron.PushWorker
	switch cfg.Notifier {
	case NotifierQueue:
		if cfg.RedisAddr == "" {
			logger.Warn("NOTIFIER=queue needs REDIS_ADDR, delivering inline")
			break
		}
		opt := utils.QueueRedisOpt(cfg)
		queueClient := asynq.NewClient(opt)
		defer queueClient.Close()
		notifier = notification.QueueNotifier{Client: queueClient, Logger: utils.Named("notifications")}

		worker = cron.NewPushWorker(opt, delivery)
		worker.Start()

		queueRedis := redis.NewClient(&redis.Options{Addr: opt.Addr, Password: opt.Password, DB: opt.DB})
		defer queueRedis.Close()
		redisClients = append(redisClients, queueRedis)
	case NotifierFCM, NotifierLog, "":
	default:
		logger.Warn("Unknown NOTIFIER, delivering inline", zap.String("notifier", cfg.Notifier))
	}

	utils.StartHealthMonitor(ctx, redisClients, 30*time.Second)

	// services.
	contentService := content.NewDefaultContentService(stores.Content)
	notificationService := notification.NewDefaultNotificationService(stores.Notifications, notifier, stores.Admins)
	authService := auth.NewDefaultAuthService(stores.Users, stores.Admins, verifier)
	adminService := admin.NewDefaultAdminService(admin.Deps{
		Content:       stores.Content,
		Users:         stores.Users,
		Notifications: stores.Notifications,
		System:        stores.Admins,
		LogSource:     utils.Logs,
		Version:       cfg.AppVersion,
		Environment:   cfg.Env,
	})

	scheduler, err := cron.NewScheduler(cfg.BackupSchedule, adminService, memoryLimiter, cfg.RateLimitWindow)
	if err != nil {
		logger.Fatal("Failed to configure scheduler", zap.Error(err))
	}
	scheduler.Start()

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewSystemHandler(cfg.AppVersion),
		handlers.NewContentHandler(contentService),
		handlers.NewNotificationHandler(notificationService),
		handlers.NewAuthHandler(authService),
		handlers.NewAdminHandler(adminService),
	)

	router := gin.New()
	routes.RegisterRoutes(router, handlerBundle, routes.Deps{
		Config:   cfg,
		Limiter:  limiter,
		Settings: stores.Admins,
		Metrics:  metrics,
	})

	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Info("Islamic Dashboard Backend starting",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.Env),
		zap.String("notifier", cfg.Notifier))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server is shutting down...")

	scheduler.Stop()
	if worker != nil {
		worker.Shutdown()
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
	_ = logger.Sync()
}
