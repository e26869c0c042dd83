package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/config"
)

var Logger zerolog.Logger

func Init(cfg *config.Config) {
	InitWithWriter(os.Stdout, cfg)
}

// InitWithWriter applies cfg.LogLevel and cfg.LogFormat. With no level set,
// cfg.Debug selects debug and anything else info.
func InitWithWriter(w io.Writer, cfg *config.Config) {
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
		if cfg.Debug {
			logLevel = "debug"
		}
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	if cfg.LogFormat == "json" {
		Logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(level)
	}

	if cfg.AppName != "" {
		Logger = Logger.With().Str("service", cfg.AppName).Logger()
	}
	if cfg.AppEnv != "" {
		Logger = Logger.With().Str("env", cfg.AppEnv).Logger()
	}

	// set global
	zlog.Logger = Logger
}
