package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/yigit/studentforce/internal/pkg/logger" // Still needed for initial error logging
	"github.com/yigit/studentforce/internal/server"
)

// @title StudentForce API
// @version 1.0
// @description Student, course, professor, enrollment and mark management API

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML configuration file")
	flag.Parse()

	// NewServer orchestrates LoadConfigAndSetupLogger, BuildDependencies and SetupRouter
	srv, err := server.NewServer(*configPath)
	if err != nil {
		// Error details are logged within NewServer's setup functions
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
