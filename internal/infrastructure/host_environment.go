package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/igor-tools/igor-install/internal/domain"
	"github.com/mitchellh/go-homedir"
)

// Environment variable overrides, checked before the settings file.
const (
	envInstallRoot  = "IGOR_INSTALL_ROOT"
	envDocumentsDir = "IGOR_DOCUMENTS_DIR"
)

const defaultApplicationName = "Igor Pro"

type OSHostEnvironment struct {
	logger   domain.Logger
	settings *Settings
}

// NewOSHostEnvironment creates the real host environment backed by the
// running machine, with overrides taken from settings and environment
// variables.
func NewOSHostEnvironment(logger domain.Logger, settings *Settings) domain.HostEnvironment {
	if settings == nil {
		settings = &Settings{}
	}
	return &OSHostEnvironment{
		logger:   logger,
		settings: settings,
	}
}

func (e *OSHostEnvironment) HomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return home, nil
}

func (e *OSHostEnvironment) DocumentsDir() (string, error) {
	if dir := os.Getenv(envDocumentsDir); dir != "" {
		e.logger.Debug("Using documents directory from %s: %s", envDocumentsDir, dir)
		return dir, nil
	}
	if e.settings.DocumentsDir != "" {
		e.logger.Debug("Using documents directory from settings: %s", e.settings.DocumentsDir)
		return e.settings.DocumentsDir, nil
	}

	home, err := e.HomeDir()
	if err != nil {
		return "", fmt.Errorf("could not locate the documents folder: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}

func (e *OSHostEnvironment) InstallRoot() (string, error) {
	if root := os.Getenv(envInstallRoot); root != "" {
		e.logger.Debug("Using install root from %s: %s", envInstallRoot, root)
		return root, nil
	}
	if e.settings.InstallRoot != "" {
		e.logger.Debug("Using install root from settings: %s", e.settings.InstallRoot)
		return e.settings.InstallRoot, nil
	}

	switch runtime.GOOS {
	case "windows":
		return `C:\Program Files\WaveMetrics`, nil
	case "darwin":
		return "/Applications/WaveMetrics", nil
	default:
		return "/opt/WaveMetrics", nil
	}
}

func (e *OSHostEnvironment) ApplicationName() string {
	if e.settings.Application != "" {
		return e.settings.Application
	}
	return defaultApplicationName
}
