package config

import (
	"testing"
	"time"

	"milxos/internal/store"
)

func TestLoad_Defaults(t *testing.T) {
	// Pin the environment so a developer's .env does not leak in.
	t.Setenv("MILXOS_HOST", "127.0.0.1")
	t.Setenv("MILXOS_PORT", "8080")
	t.Setenv("MILXOS_PREFS_BACKEND", "")
	t.Setenv("MILXOS_SHUTDOWN_TIMEOUT", "nonsense")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr: %s", cfg.Addr())
	}
	if cfg.Prefs.Backend != store.BackendFile {
		t.Fatalf("unexpected backend: %s", cfg.Prefs.Backend)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.Server.ShutdownTimeout)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MILXOS_HOST", "0.0.0.0")
	t.Setenv("MILXOS_PORT", "9000")
	t.Setenv("MILXOS_PREFS_BACKEND", "redis")
	t.Setenv("MILXOS_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != "0.0.0.0:9000" || cfg.Prefs.Backend != store.BackendRedis {
		t.Fatalf("unexpected cfg: %+v", cfg)
	}
	opts := cfg.StoreOptions()
	if opts.Redis.Address != "cache:6379" || opts.Redis.DB != 2 {
		t.Fatalf("unexpected redis opts: %+v", opts.Redis)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MILXOS_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid port error")
	}

	t.Setenv("MILXOS_PORT", "8080")
	t.Setenv("MILXOS_PREFS_BACKEND", "etcd")
	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid backend error")
	}

	t.Setenv("MILXOS_PREFS_BACKEND", "redis")
	t.Setenv("REDIS_ADDRESS", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected missing redis address error")
	}
}
