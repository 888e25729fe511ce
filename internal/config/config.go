package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
// The API server reads the first block, the shortlist client the second; both share logging.
type Config struct {
	Env            string
	Port           string
	DatabaseURL    string // Postgres DSN; empty means SQLite at SQLitePath
	SQLitePath     string
	RedisURL       string // optional for both server (health stats) and client (cache tier)
	AllowedOrigins []string
	HealthAdminKey string

	APIBaseURL     string // e.g. http://localhost:5000/api
	UserID         string
	RequestTimeout time.Duration
	APIRateLimit   float64 // requests per second; 0 disables limiting
	NoticeTTL      time.Duration
	CacheKey       string
	CacheTTL       time.Duration

	LogLevel  string
	LogPretty bool
}

const (
	defaultPort           = "5000"
	defaultAPIBaseURL     = "http://localhost:5000/api"
	defaultUserID         = "default_user"
	defaultRequestTimeout = 10 * time.Second
	defaultNoticeTTL      = 5 * time.Second
	defaultCacheKey       = "shortlistedDesigners"
)

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v, so callers can bind command-line flags first.
func LoadFrom(v *viper.Viper) (*Config, error) {
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	env := v.GetString("APP_ENV")
	if env == "" {
		env = "development"
	}

	return &Config{
		Env:            env,
		Port:           stringOr(v.GetString("PORT"), defaultPort),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		SQLitePath:     stringOr(v.GetString("SQLITE_PATH"), ":memory:"),
		RedisURL:       v.GetString("REDIS_URL"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		HealthAdminKey: v.GetString("HEALTH_ADMIN_KEY"),

		APIBaseURL:     strings.TrimRight(stringOr(v.GetString("API_BASE_URL"), defaultAPIBaseURL), "/"),
		UserID:         stringOr(v.GetString("USER_ID"), defaultUserID),
		RequestTimeout: durationOr(v.GetDuration("REQUEST_TIMEOUT"), defaultRequestTimeout),
		APIRateLimit:   v.GetFloat64("API_RATE_LIMIT"),
		NoticeTTL:      durationOr(v.GetDuration("NOTICE_TTL"), defaultNoticeTTL),
		CacheKey:       stringOr(v.GetString("CACHE_KEY"), defaultCacheKey),
		CacheTTL:       v.GetDuration("CACHE_TTL"),

		LogLevel:  stringOr(v.GetString("LOG_LEVEL"), "info"),
		LogPretty: strings.EqualFold(v.GetString("LOG_PRETTY"), "true"),
	}, nil
}

func stringOr(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

func durationOr(d, def time.Duration) time.Duration {
	if d <= 0 {
		return def
	}
	return d
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
