package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/formweld/pdf-form-tools/internal/overlay"
)

const (
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	// Form-processing defaults, matching the CLI tools.
	DefaultMinEntryHeight = 15.0
	DefaultFontSize       = 12.0
	DefaultFontColor      = "000000"
	DefaultRenderDPI      = 150.0

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the PDF form tools server
type Config struct {
	// Workspace configuration
	WorkDirectory string

	// Form-processing configuration
	MinEntryHeight float64 // Minimum entry box height in pixels
	FontSize       float64 // Default overlay font size in points
	FontColor      string  // Default overlay font color as RRGGBB hex
	RenderDPI      float64 // Rasterization resolution

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		// Fallback to current directory if working directory cannot be determined
		currentDir = "."
	}

	return &Config{
		WorkDirectory:  currentDir,
		MinEntryHeight: DefaultMinEntryHeight,
		FontSize:       DefaultFontSize,
		FontColor:      DefaultFontColor,
		RenderDPI:      DefaultRenderDPI,
		Version:        "1.0.0",
		ServerName:     "pdf-form-tools",
		LogLevel:       DefaultLogLevel,
		MaxFileSize:    DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.WorkDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.WorkDirectory); err == nil {
			cfg.WorkDirectory = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("FORM_TOOLS")
	viper.AutomaticEnv()

	viper.SetDefault("dir", cfg.WorkDirectory)
	viper.SetDefault("minentryheight", cfg.MinEntryHeight)
	viper.SetDefault("fontsize", cfg.FontSize)
	viper.SetDefault("fontcolor", cfg.FontColor)
	viper.SetDefault("dpi", cfg.RenderDPI)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("dir", cfg.WorkDirectory, "Working directory for PDF files")
	pflag.Float64("minentryheight", cfg.MinEntryHeight, "Minimum entry box height in pixels")
	pflag.Float64("fontsize", cfg.FontSize, "Default overlay font size in points")
	pflag.String("fontcolor", cfg.FontColor, "Default overlay font color (RRGGBB hex)")
	pflag.Float64("dpi", cfg.RenderDPI, "Page rasterization resolution in DPI")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("minentryheight", pflag.Lookup("minentryheight"))
	_ = viper.BindPFlag("fontsize", pflag.Lookup("fontsize"))
	_ = viper.BindPFlag("fontcolor", pflag.Lookup("fontcolor"))
	_ = viper.BindPFlag("dpi", pflag.Lookup("dpi"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPDF Form Tools - a Model Context Protocol server for PDF form workflows\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                              # current directory (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dir=/path/to/pdfs          # custom working directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --dpi=300 --fontsize=10      # custom rendering and overlay defaults\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_DIR             Working directory\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_MINENTRYHEIGHT  Minimum entry box height\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_FONTSIZE        Default overlay font size\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_FONTCOLOR       Default overlay font color\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_DPI             Rasterization DPI\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_LOGLEVEL        Log level\n")
		fmt.Fprintf(os.Stderr, "  FORM_TOOLS_MAXFILESIZE     Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.WorkDirectory = viper.GetString("dir")
	cfg.MinEntryHeight = viper.GetFloat64("minentryheight")
	cfg.FontSize = viper.GetFloat64("fontsize")
	cfg.FontColor = viper.GetString("fontcolor")
	cfg.RenderDPI = viper.GetFloat64("dpi")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.WorkDirectory == "" {
		return errors.New("working directory cannot be empty")
	}

	// Check if the working directory exists, create if it doesn't
	if _, err := os.Stat(c.WorkDirectory); os.IsNotExist(err) {
		if err := os.MkdirAll(c.WorkDirectory, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create working directory %s: %w", c.WorkDirectory, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access working directory %s: %w", c.WorkDirectory, err)
	}

	if c.MinEntryHeight <= 0 {
		return errors.New("minimum entry height must be positive")
	}

	if c.FontSize <= 0 {
		return errors.New("font size must be positive")
	}

	if _, _, _, err := overlay.ParseHexColor(c.FontColor); err != nil {
		return fmt.Errorf("invalid font color: %w", err)
	}

	if c.RenderDPI <= 0 {
		return errors.New("render DPI must be positive")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{WorkDirectory: %s, MinEntryHeight: %g, FontSize: %g, FontColor: %s, RenderDPI: %g, LogLevel: %s, MaxFileSize: %d}",
		c.WorkDirectory, c.MinEntryHeight, c.FontSize, c.FontColor, c.RenderDPI, c.LogLevel, c.MaxFileSize)
}
