package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/igor-tools/igor-install/internal/app"
	"github.com/igor-tools/igor-install/internal/infrastructure"
	interfaces "github.com/igor-tools/igor-install/internal/interface"
)

func main() {
	// Create context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Initialize dependencies
	logger := infrastructure.NewColorLogger()

	settings, err := infrastructure.LoadDefaultSettings()
	if err != nil {
		logger.Error("Failed to load settings: %v", err)
		os.Exit(1)
	}

	env := infrastructure.NewOSHostEnvironment(logger, settings)
	sources := infrastructure.NewGitSourceRepository(logger, env)
	versions := infrastructure.NewDirVersionRepository(logger, env)
	links := infrastructure.NewSymlinkRepository(logger)

	// Initialize application service
	installService := app.NewInstallService(logger, env, sources, versions, links)

	// Initialize CLI handler
	cliHandler := interfaces.NewCLIHandler(installService, logger)

	// Create root command and execute
	rootCmd := cliHandler.CreateRootCommand()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("Application failed: %v", err)
		os.Exit(1)
	}
}
