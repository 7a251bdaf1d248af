package infrastructure

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "config.yaml"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "install_root: /srv/wavemetrics\ndocuments_dir: /srv/docs\napplication: Igor Pro Beta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "/srv/wavemetrics", settings.InstallRoot)
	assert.Equal(t, "/srv/docs", settings.DocumentsDir)
	assert.Equal(t, "Igor Pro Beta", settings.Application)
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("install_root: [unclosed"), 0o644))

	_, err := LoadSettings(path)

	assert.ErrorContains(t, err, "failed to parse settings file")
}

func TestHostEnvironmentSettingsOverrides(t *testing.T) {
	t.Setenv(envInstallRoot, "")
	t.Setenv(envDocumentsDir, "")

	env := NewOSHostEnvironment(NewColorLogger(), &Settings{
		InstallRoot:  "/srv/wavemetrics",
		DocumentsDir: "/srv/docs",
		Application:  "Igor Pro Beta",
	})

	root, err := env.InstallRoot()
	require.NoError(t, err)
	assert.Equal(t, "/srv/wavemetrics", root)

	docs, err := env.DocumentsDir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/docs", docs)

	assert.Equal(t, "Igor Pro Beta", env.ApplicationName())
}

func TestHostEnvironmentEnvBeatsSettings(t *testing.T) {
	t.Setenv(envInstallRoot, "/env/wavemetrics")
	t.Setenv(envDocumentsDir, "/env/docs")

	env := NewOSHostEnvironment(NewColorLogger(), &Settings{
		InstallRoot:  "/srv/wavemetrics",
		DocumentsDir: "/srv/docs",
	})

	root, err := env.InstallRoot()
	require.NoError(t, err)
	assert.Equal(t, "/env/wavemetrics", root)

	docs, err := env.DocumentsDir()
	require.NoError(t, err)
	assert.Equal(t, "/env/docs", docs)
}

func TestHostEnvironmentLogsWinningOverride(t *testing.T) {
	withPlainColors(t)
	t.Setenv(envInstallRoot, "/env/wavemetrics")
	t.Setenv(envDocumentsDir, "")

	var buf bytes.Buffer
	env := NewOSHostEnvironment(NewColorLoggerWithWriter(&buf), &Settings{
		InstallRoot:  "/srv/wavemetrics",
		DocumentsDir: "/srv/docs",
	})

	_, err := env.InstallRoot()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "install root from "+envInstallRoot)

	_, err = env.DocumentsDir()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "documents directory from settings")
}

func TestHostEnvironmentDefaults(t *testing.T) {
	t.Setenv(envInstallRoot, "")
	t.Setenv(envDocumentsDir, "")

	env := NewOSHostEnvironment(NewColorLogger(), nil)

	assert.Equal(t, defaultApplicationName, env.ApplicationName())

	home, err := env.HomeDir()
	require.NoError(t, err)

	docs, err := env.DocumentsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "Documents"), docs)

	root, err := env.InstallRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)
}
