package utils

import (
	"log"
	"sync"

	"islamicdashboard/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance
var Logger *zap.Logger

// Logs keeps the most recent log entries for the admin logs endpoint.
var Logs = NewLogBuffer(500)

var loggerMu sync.Mutex

// InitializeLogger sets up the logging configuration
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if config.AppConfig.LogLevel != "" {
		if err := level.UnmarshalText([]byte(config.AppConfig.LogLevel)); err != nil {
			log.Printf("Unknown LOG_LEVEL %q, falling back to info", config.AppConfig.LogLevel)
		}
	}
	cfg.Level = level

	built, err := cfg.Build(zap.Hooks(Logs.Hook))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	Logger = built
	zap.ReplaceGlobals(Logger)
}

// GetLogger retrieves the global logger
func GetLogger() *zap.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}

// Named returns a child of the global logger tagged with a component name.
func Named(component string) *zap.Logger {
	return GetLogger().Named(component)
}
