package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Settings holds the optional overrides read from ~/.igor/config.yaml. Every
// field may be empty, in which case the platform default applies.
type Settings struct {
	InstallRoot  string `yaml:"install_root"`
	DocumentsDir string `yaml:"documents_dir"`
	Application  string `yaml:"application"`
}

// LoadSettings parses the settings file at path. A missing file is not an
// error and yields empty settings; a malformed file is fatal.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}

	return &settings, nil
}

// LoadDefaultSettings loads settings from <home>/.igor/config.yaml.
func LoadDefaultSettings() (*Settings, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return LoadSettings(filepath.Join(home, ".igor", "config.yaml"))
}
