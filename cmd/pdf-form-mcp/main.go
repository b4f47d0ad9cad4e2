package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/formweld/pdf-form-tools/internal/config"
	"github.com/formweld/pdf-form-tools/internal/mcp"
	"github.com/formweld/pdf-form-tools/internal/service"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging redirects log output so it cannot interfere with the MCP
// protocol on stdout.
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if !cfg.IsDebug() {
		log.SetOutput(os.NewFile(0, os.DevNull))
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	formService := service.NewService(cfg)

	server, err := mcp.NewServer(cfg, formService)
	if err != nil {
		log.Fatalf("Failed to create MCP server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The parent process controls our lifecycle over stdio; exit cleanly
	// when stdin is closed.
	if err := server.Run(ctx); err != nil {
		if cfg.IsDebug() {
			log.Printf("Server error: %v", err)
		}
		os.Exit(1)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("PDF Form Tools MCP Server\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
