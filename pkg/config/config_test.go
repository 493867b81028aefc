package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PRESSLOAD_HTTP_SERVER_PORT", "9090")
	t.Setenv("PRESSLOAD_QUERY_CACHE_ENABLED", "true")
	t.Setenv("PRESSLOAD_QUERY_CACHE_CLEANUP_INTERVAL", "30s")

	conf, err := Load("pressload")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := conf.HttpServer.Address(); got != ":9090" {
		t.Fatalf("expected :9090, got %q", got)
	}
	if conf.BoltDB.Path != "data/pressload.db" || conf.BoltDB.Timeout != 5*time.Second {
		t.Fatalf("unexpected bolt db config %+v", conf.BoltDB)
	}
	if !conf.QueryCache.Enabled || conf.QueryCache.CleanupInterval != 30*time.Second {
		t.Fatalf("unexpected query cache config %+v", conf.QueryCache)
	}
	if !conf.Seed.Enabled {
		t.Fatalf("expected seeding to be enabled by default")
	}
	if conf.LogLevel != "info" {
		t.Fatalf("expected info log level, got %q", conf.LogLevel)
	}
}
