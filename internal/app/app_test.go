package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gustavods/storefront/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, Mode: "test"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "test.db")},
		},
		Log:  config.LogConfig{Level: "error", Format: "text"},
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenExpiry: "1h"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestNew_NilConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestNew_WiresFullStack(t *testing.T) {
	cfg := testConfig(t)
	// Auto-migration runs in debug mode so the signup below has tables.
	cfg.Server.Mode = gin.DebugMode

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.engine == nil || a.db == nil || a.logger == nil {
		t.Fatal("app missing core dependencies")
	}

	// A request through the wired engine reaches the real handlers.
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("health: status=%d; want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/store", nil)
	w = httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("protected route without token: status=%d; want 401", w.Code)
	}
}

func TestValidateGinMode(t *testing.T) {
	for _, mode := range []string{gin.DebugMode, gin.ReleaseMode, gin.TestMode} {
		if err := validateGinMode(mode); err != nil {
			t.Errorf("validateGinMode(%q): %v", mode, err)
		}
	}
	if err := validateGinMode("production"); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestResolveCORSConfig(t *testing.T) {
	// Configured allowlist always wins.
	cfg := resolveCORSConfig(gin.ReleaseMode, []string{"https://app.example.com"})
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "https://app.example.com" {
		t.Errorf("AllowOrigins=%v; want configured allowlist", cfg.AllowOrigins)
	}

	// Release mode without an allowlist denies cross-origin by default.
	cfg = resolveCORSConfig(gin.ReleaseMode, nil)
	if len(cfg.AllowOrigins) != 0 {
		t.Errorf("AllowOrigins=%v; want empty in release mode", cfg.AllowOrigins)
	}

	// Debug mode keeps the permissive default.
	cfg = resolveCORSConfig(gin.DebugMode, nil)
	if len(cfg.AllowOrigins) != 1 || cfg.AllowOrigins[0] != "*" {
		t.Errorf("AllowOrigins=%v; want wildcard in debug mode", cfg.AllowOrigins)
	}
}
