package config

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":3000" || cfg.AllowOrigins != "http://localhost:5173" || cfg.DBPath != "" || cfg.LogLevel != log.LevelInfo || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("CHESSRULES_ADDR", ":9000")
	t.Setenv("CHESSRULES_DB", "/tmp/moves.db")
	t.Setenv("CHESSRULES_LOG_LEVEL", "debug")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" || cfg.DBPath != "/tmp/moves.db" || cfg.LogLevel != log.LevelDebug {
		t.Errorf("env not applied: %+v", cfg)
	}

	// flags win over the environment
	cfg, err = Load([]string{"-addr", ":9100", "-log-level", "warn"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9100" || cfg.LogLevel != log.LevelWarn {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load([]string{"-log-level", "loud"}); err == nil {
		t.Errorf("unknown log level accepted")
	}
	if _, err := Load([]string{"-addr", ""}); err == nil {
		t.Errorf("empty address accepted")
	}
	if _, err := Load([]string{"-idle-timeout", "soon"}); err == nil {
		t.Errorf("unparseable idle timeout accepted")
	}
	if _, err := Load([]string{"-idle-timeout", "-5m"}); err == nil {
		t.Errorf("negative idle timeout accepted")
	}
	if _, err := Load([]string{"-nope"}); err == nil {
		t.Errorf("unknown flag accepted")
	}
}
