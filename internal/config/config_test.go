package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

var envVars = []string{
	"DB_PATH", "API_PORT", "LOG_LEVEL", "LOG_FORMAT", "TAXONOMY_PATH",
	"SEARCH_RATE_LIMIT", "SEARCH_RATE_BURST", "MCP_TRANSPORT", "MCP_PORT",
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*testing.T, *Config)
	}{
		{
			name:     "default values",
			setupEnv: func(t *testing.T) {},
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.DBPath != "./data/worldforge.db" || cfg.APIPort != "9000" {
					t.Errorf("storage defaults = %q %q", cfg.DBPath, cfg.APIPort)
				}
				if cfg.LogLevel != slog.LevelInfo || cfg.LogFormat != "text" {
					t.Errorf("log defaults = %v %q", cfg.LogLevel, cfg.LogFormat)
				}
				if cfg.SearchRateLimit != 10 || cfg.SearchRateBurst != 20 {
					t.Errorf("rate defaults = %v %v", cfg.SearchRateLimit, cfg.SearchRateBurst)
				}
				if cfg.MCPTransport != "stdio" || cfg.MCPPort != "9100" || cfg.TaxonomyPath != "" {
					t.Errorf("mcp defaults = %q %q %q", cfg.MCPTransport, cfg.MCPPort, cfg.TaxonomyPath)
				}
			},
		},
		{
			name: "custom values",
			setupEnv: func(t *testing.T) {
				t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "custom", "world.db"))
				t.Setenv("API_PORT", "8088")
				t.Setenv("LOG_LEVEL", "DEBUG")
				t.Setenv("LOG_FORMAT", "JSON")
				t.Setenv("SEARCH_RATE_LIMIT", "0.5")
				t.Setenv("SEARCH_RATE_BURST", "3")
				t.Setenv("MCP_TRANSPORT", "http")
				t.Setenv("TAXONOMY_PATH", "/etc/worldforge/tags.yaml")
			},
			checkConfig: func(t *testing.T, cfg *Config) {
				if filepath.Base(cfg.DBPath) != "world.db" || cfg.APIPort != "8088" {
					t.Errorf("storage = %q %q", cfg.DBPath, cfg.APIPort)
				}
				if cfg.LogLevel != slog.LevelDebug || cfg.LogFormat != "json" {
					t.Errorf("log = %v %q", cfg.LogLevel, cfg.LogFormat)
				}
				if cfg.SearchRateLimit != 0.5 || cfg.SearchRateBurst != 3 {
					t.Errorf("rate = %v %v", cfg.SearchRateLimit, cfg.SearchRateBurst)
				}
				if cfg.MCPTransport != "http" || cfg.TaxonomyPath != "/etc/worldforge/tags.yaml" {
					t.Errorf("mcp = %q %q", cfg.MCPTransport, cfg.TaxonomyPath)
				}
			},
		},
		{
			name:     "zero rate disables limiting",
			setupEnv: func(t *testing.T) { t.Setenv("SEARCH_RATE_LIMIT", "0") },
			checkConfig: func(t *testing.T, cfg *Config) {
				if cfg.SearchRateLimit != 0 {
					t.Errorf("SearchRateLimit = %v, want 0", cfg.SearchRateLimit)
				}
			},
		},
		{
			name:     "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) { t.Setenv("LOG_LEVEL", "verbose") },
			wantErr:  true,
		},
		{
			name:     "invalid LOG_FORMAT",
			setupEnv: func(t *testing.T) { t.Setenv("LOG_FORMAT", "xml") },
			wantErr:  true,
		},
		{
			name:     "invalid SEARCH_RATE_LIMIT",
			setupEnv: func(t *testing.T) { t.Setenv("SEARCH_RATE_LIMIT", "fast") },
			wantErr:  true,
		},
		{
			name:     "negative SEARCH_RATE_LIMIT",
			setupEnv: func(t *testing.T) { t.Setenv("SEARCH_RATE_LIMIT", "-1") },
			wantErr:  true,
		},
		{
			name:     "zero SEARCH_RATE_BURST",
			setupEnv: func(t *testing.T) { t.Setenv("SEARCH_RATE_BURST", "0") },
			wantErr:  true,
		},
		{
			name:     "unknown MCP_TRANSPORT",
			setupEnv: func(t *testing.T) { t.Setenv("MCP_TRANSPORT", "websocket") },
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Change to a temp directory without .env file to avoid loading it
			t.Chdir(t.TempDir())

			// t.Setenv restores the original values after the test;
			// empty values fall back to defaults.
			for _, key := range envVars {
				t.Setenv(key, "")
			}
			tt.setupEnv(t)

			cfg, err := Load()

			if tt.wantErr {
				if err == nil {
					t.Errorf("Load() expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}

			if tt.checkConfig != nil {
				tt.checkConfig(t, cfg)
			}
		})
	}
}

func TestLoad_CreatesDataDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range envVars {
		t.Setenv(key, "")
	}

	dbPath := filepath.Join(t.TempDir(), "test", "db.db")
	t.Setenv("DB_PATH", dbPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Check that directory was created
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("Load() should create data directory: %v", err)
	}

	if cfg.DBPath != dbPath {
		t.Errorf("Load() DBPath = %v, want %v", cfg.DBPath, dbPath)
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv never overrides a variable that is present, even when empty.
	for _, key := range envVars {
		t.Setenv(key, "")
		unsetEnv(key)
	}

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("API_PORT=7070\nLOG_FORMAT=json\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// Set variables win over the file.
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "7070" {
		t.Errorf("Load() APIPort = %q, want 7070", cfg.APIPort)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Load() LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestGetEnv(t *testing.T) {
	originalValue := os.Getenv("TEST_ENV_VAR")
	defer func() {
		if originalValue != "" {
			setEnv("TEST_ENV_VAR", originalValue)
		} else {
			unsetEnv("TEST_ENV_VAR")
		}
	}()

	tests := []struct {
		name         string
		setupEnv     func()
		key          string
		defaultValue string
		want         string
	}{
		{
			name: "env var set",
			setupEnv: func() {
				setEnv("TEST_ENV_VAR", "set-value")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "set-value",
		},
		{
			name: "env var not set",
			setupEnv: func() {
				unsetEnv("TEST_ENV_VAR")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "default",
		},
		{
			name: "empty env var uses default",
			setupEnv: func() {
				setEnv("TEST_ENV_VAR", "")
			},
			key:          "TEST_ENV_VAR",
			defaultValue: "default",
			want:         "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv()
			got := getEnv(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnv(%q, %q) = %q, want %q", tt.key, tt.defaultValue, got, tt.want)
			}
		})
	}
}
