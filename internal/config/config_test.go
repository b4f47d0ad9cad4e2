package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MinEntryHeight != 15 {
		t.Errorf("Expected default minimum entry height to be 15, got %g", cfg.MinEntryHeight)
	}

	if cfg.FontSize != 12 {
		t.Errorf("Expected default font size to be 12, got %g", cfg.FontSize)
	}

	if cfg.FontColor != "000000" {
		t.Errorf("Expected default font color to be '000000', got '%s'", cfg.FontColor)
	}

	if cfg.RenderDPI != 150 {
		t.Errorf("Expected default render DPI to be 150, got %g", cfg.RenderDPI)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "pdf-form-tools" {
		t.Errorf("Expected default server name to be 'pdf-form-tools', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	// The working directory defaults to the current working directory
	currentDir, _ := os.Getwd()
	if cfg.WorkDirectory != currentDir {
		t.Errorf("Expected default working directory to be '%s', got '%s'", currentDir, cfg.WorkDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			WorkDirectory:  t.TempDir(),
			MinEntryHeight: 15,
			FontSize:       12,
			FontColor:      "000000",
			RenderDPI:      150,
			LogLevel:       "info",
			MaxFileSize:    1024,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty working directory",
			mutate:  func(c *Config) { c.WorkDirectory = "" },
			wantErr: true,
		},
		{
			name:    "zero minimum entry height",
			mutate:  func(c *Config) { c.MinEntryHeight = 0 },
			wantErr: true,
		},
		{
			name:    "negative font size",
			mutate:  func(c *Config) { c.FontSize = -1 },
			wantErr: true,
		},
		{
			name:    "malformed font color",
			mutate:  func(c *Config) { c.FontColor = "#fff" },
			wantErr: true,
		},
		{
			name:    "non-hex font color",
			mutate:  func(c *Config) { c.FontColor = "zzzzzz" },
			wantErr: true,
		},
		{
			name:    "zero render DPI",
			mutate:  func(c *Config) { c.RenderDPI = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "invalid" },
			wantErr: true,
		},
		{
			name:    "invalid max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigValidateCreatesWorkDirectory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WorkDirectory = t.TempDir() + "/nested/pdfs"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Config.Validate() unexpected error: %v", err)
	}

	if _, err := os.Stat(cfg.WorkDirectory); err != nil {
		t.Errorf("Expected working directory to be created: %v", err)
	}
}

func TestConfigIsDebug(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		want     bool
	}{
		{
			name:     "debug level",
			logLevel: "debug",
			want:     true,
		},
		{
			name:     "info level",
			logLevel: "info",
			want:     false,
		},
		{
			name:     "warn level",
			logLevel: "warn",
			want:     false,
		},
		{
			name:     "error level",
			logLevel: "error",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tt.logLevel}
			if got := cfg.IsDebug(); got != tt.want {
				t.Errorf("Config.IsDebug() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigString(t *testing.T) {
	cfg := &Config{
		WorkDirectory:  "/home/user/pdfs",
		MinEntryHeight: 15,
		FontSize:       12,
		FontColor:      "1a2b3c",
		RenderDPI:      150,
		LogLevel:       "debug",
		MaxFileSize:    1024,
	}

	result := cfg.String()

	expectedSubstrings := []string{
		"WorkDirectory: /home/user/pdfs",
		"MinEntryHeight: 15",
		"FontSize: 12",
		"FontColor: 1a2b3c",
		"RenderDPI: 150",
		"LogLevel: debug",
		"MaxFileSize: 1024",
	}

	for _, substr := range expectedSubstrings {
		if !contains(result, substr) {
			t.Errorf("Config.String() result doesn't contain expected substring: %s\nGot: %s", substr, result)
		}
	}
}

func TestConfigValidateLogLevels(t *testing.T) {
	validLevels := []string{"debug", "info", "warn", "error"}
	invalidLevels := []string{"DEBUG", "INFO", "trace", "fatal", ""}

	tempDir := t.TempDir()

	for _, level := range validLevels {
		t.Run("valid_"+level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.WorkDirectory = tempDir
			cfg.LogLevel = level

			if err := cfg.Validate(); err != nil {
				t.Errorf("Config.Validate() should accept log level '%s', got error: %v", level, err)
			}
		})
	}

	for _, level := range invalidLevels {
		t.Run("invalid_"+level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.WorkDirectory = tempDir
			cfg.LogLevel = level

			if err := cfg.Validate(); err == nil {
				t.Errorf("Config.Validate() should reject log level '%s'", level)
			}
		})
	}
}

// Helper function to check if a string contains a substring
func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
