package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort    string `mapstructure:"APP_PORT"`
	AppVersion string `mapstructure:"APP_VERSION"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// HTTP gateway.
	AllowedOrigins  string        `mapstructure:"ALLOWED_ORIGINS"`
	RateLimitMax    int           `mapstructure:"RATE_LIMIT_MAX"`
	RateLimitWindow time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	BodyLimitBytes  int64         `mapstructure:"BODY_LIMIT_BYTES"`
	// TrustedProxies lists the proxy IPs or CIDRs whose X-Forwarded-For is honoured.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// Admin authentication.
	AuthMode             string        `mapstructure:"AUTH_MODE"`
	AdminDefaultPassword string        `mapstructure:"ADMIN_DEFAULT_PASSWORD"`
	JWTSecret            string        `mapstructure:"JWT_SECRET"`
	JWTTTL               time.Duration `mapstructure:"JWT_TTL"`

	// Push notifications.
	Notifier                string `mapstructure:"NOTIFIER"`
	PushTopic               string `mapstructure:"PUSH_TOPIC"`
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Redis configuration. An empty address keeps rate limiting in process.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisQueueDB     int    `mapstructure:"REDIS_QUEUE_DB"`
	RedisRateLimitDB int    `mapstructure:"REDIS_RATE_LIMIT_DB"`

	BackupSchedule string `mapstructure:"BACKUP_SCHEDULE"`
}

var AppConfig Config

var defaults = map[string]any{
	"APP_PORT":                  "3000",
	"APP_VERSION":               "1.0.0",
	"ENV":                       "development",
	"LOG_LEVEL":                 "info",
	"ALLOWED_ORIGINS":           "http://localhost:3000,https://your-admin-panel.vercel.app",
	"RATE_LIMIT_MAX":            100,
	"RATE_LIMIT_WINDOW":         "15m",
	"BODY_LIMIT_BYTES":          10 << 20,
	"TRUSTED_PROXIES":           "",
	"AUTH_MODE":                 "bcrypt",
	"ADMIN_DEFAULT_PASSWORD":    "admin123",
	"JWT_SECRET":                "change-me-in-production",
	"JWT_TTL":                   "24h",
	"NOTIFIER":                  "log",
	"PUSH_TOPIC":                "all_users",
	"FIREBASE_CREDENTIALS_FILE": "",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"REDIS_QUEUE_DB":            0,
	"REDIS_RATE_LIMIT_DB":       1,
	"BACKUP_SCHEDULE":           "@daily",
}

// LoadConfig reads .env, config.yaml and the environment into AppConfig.
func LoadConfig() {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Origins splits ALLOWED_ORIGINS into a trimmed list.
func (c Config) Origins() []string {
	return splitList(c.AllowedOrigins)
}

// TrustedProxyList splits TRUSTED_PROXIES. Empty means no proxy is trusted.
func (c Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
