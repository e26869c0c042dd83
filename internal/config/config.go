package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
	StoreDriverBolt     = "bolt"
)

type Config struct {
	AppName string
	AppEnv  string
	Debug   bool

	HTTPAddr  string
	APIPrefix string

	// Storage
	StoreDriver string
	DBDriver    string
	DatabaseURL string
	BoltPath    string

	CORSOrigins []string

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Rate Limiting
	RLEnabled bool
	RLLimit   int
	RLWindow  time.Duration

	MetricsEnabled bool

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppName = getEnv("APP_NAME", "Resource API")
	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.Debug = getBool("DEBUG", false)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8000")
	cfg.APIPrefix = strings.TrimRight(getEnv("API_PREFIX", ""), "/")

	cfg.StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres))
	cfg.DBDriver = strings.ToLower(getEnv("DB_DRIVER", "postgres"))
	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.BoltPath = getEnv("BOLT_PATH", "")

	cfg.CORSOrigins = getList("CORS_ORIGINS", []string{"http://localhost:3000"})

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "resource.events")

	// Rate Limiting Defaults: 100 reqs / 1 min
	cfg.RLEnabled = getBool("RL_ENABLED", true)
	cfg.RLLimit = getIntEnv("RL_IP_LIMIT", 100)
	cfg.RLWindow = getDuration("RL_IP_WINDOW", 1*time.Minute)

	cfg.MetricsEnabled = getBool("METRICS_ENABLED", true)

	// empty lets DEBUG pick the level
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", ""))
	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", "console"))

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	// validation
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("missing DATABASE_URL")
		}
		if cfg.DBDriver != "postgres" && cfg.DBDriver != "pgx" {
			return nil, fmt.Errorf("invalid DB_DRIVER %q (want postgres or pgx)", cfg.DBDriver)
		}
	case StoreDriverBolt:
		if cfg.BoltPath == "" {
			return nil, fmt.Errorf("missing BOLT_PATH")
		}
	case StoreDriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q (want postgres, memory or bolt)", cfg.StoreDriver)
	}

	if cfg.RLEnabled && (cfg.RLLimit <= 0 || cfg.RLWindow <= 0) {
		return nil, fmt.Errorf("invalid rate limit: RL_IP_LIMIT and RL_IP_WINDOW must be > 0")
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// getList splits a comma separated value, dropping empty items.
func getList(k string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}
