// Package config reads server settings from flags with environment
// fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr         string
	AllowOrigins string
	DBPath       string
	LogLevel     log.Level
	IdleTimeout  time.Duration
}

// Load parses args (without the program name). Every flag falls back to an
// environment variable, then to a default.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", getenv("CHESSRULES_ADDR", ":3000"), "listen address")
	origins := fs.String("origins", getenv("CHESSRULES_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	dbPath := fs.String("db", getenv("CHESSRULES_DB", ""), "sqlite database for move history (empty keeps history in memory)")
	level := fs.String("log-level", getenv("CHESSRULES_LOG_LEVEL", "info"), "trace, debug, info, warn or error")
	idle := fs.String("idle-timeout", getenv("CHESSRULES_IDLE_TIMEOUT", "30m"), "drop games untouched this long with no observers (0 keeps them forever)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := ParseLevel(*level)
	if err != nil {
		return Config{}, err
	}
	idleTimeout, err := time.ParseDuration(*idle)
	if err != nil {
		return Config{}, fmt.Errorf("idle timeout: %w", err)
	}
	if idleTimeout < 0 {
		return Config{}, fmt.Errorf("idle timeout must not be negative")
	}
	if *addr == "" {
		return Config{}, fmt.Errorf("listen address must not be empty")
	}

	return Config{
		Addr:         *addr,
		AllowOrigins: *origins,
		DBPath:       *dbPath,
		LogLevel:     lvl,
		IdleTimeout:  idleTimeout,
	}, nil
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}
