package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/fflaunch/internal/registry"
)

// TestLoadDefaults checks the zero-environment configuration.
func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvChannel, "")
	os.Unsetenv(EnvChannel)
	t.Setenv(EnvArch, "")
	os.Unsetenv(EnvArch)

	root := t.TempDir()

	cfg, err := Load(root)
	require.NoError(t, err)

	require.False(t, cfg.ChannelSet)
	require.Equal(t, DefaultFolderName, cfg.FolderName())
	require.Equal(t, filepath.Join(root, "default", "firefox"), cfg.ExecutablePath())
	require.Equal(t, registry.DefaultBaseURL, cfg.BaseURL)
	require.Equal(t, registry.DefaultLanguage, cfg.Language)
	require.Contains(t, []string{registry.ArchX86, registry.ArchX8664}, cfg.Arch)
}

// TestLoadChannelOverride validates the channel env var against the
// registry and uses it as the folder name.
func TestLoadChannelOverride(t *testing.T) {
	t.Setenv(EnvChannel, "beta")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	require.True(t, cfg.ChannelSet)
	require.Equal(t, registry.ChannelBeta, cfg.Channel)
	require.Equal(t, "beta", cfg.FolderName())
}

// TestLoadInvalidChannel fails with ErrInvalidChannel before any other
// action.
func TestLoadInvalidChannel(t *testing.T) {
	t.Setenv(EnvChannel, "release")

	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrInvalidChannel)
	require.Contains(t, err.Error(), "release")
}

// TestLoadArchOverride accepts any string without validation.
func TestLoadArchOverride(t *testing.T) {
	t.Setenv(EnvArch, "sparc")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "sparc", cfg.Arch)
}

// TestSettingsFileOverlay reads optional settings and lets environment
// overrides win over them.
func TestSettingsFileOverlay(t *testing.T) {
	root := t.TempDir()

	settings := "base_url: http://mirror.local/\nlanguage: de\ndialog_program: /usr/bin/zenity\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, SettingsFilename), []byte(settings), 0o600))

	cfg, err := Load(root)
	require.NoError(t, err)
	require.Equal(t, "http://mirror.local/", cfg.BaseURL)
	require.Equal(t, "de", cfg.Language)
	require.Equal(t, "/usr/bin/zenity", cfg.DialogProgram)
}

// TestSettingsFileBadLanguage rejects a locale the registry does not know.
func TestSettingsFileBadLanguage(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, SettingsFilename), []byte("language: xx-YY\n"), 0o600))

	_, err := Load(root)
	require.ErrorIs(t, err, registry.ErrNotFound)
}

// TestSettingsFileMalformed propagates YAML errors.
func TestSettingsFileMalformed(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, SettingsFilename), []byte(":\n\t-"), 0o600))

	_, err := Load(root)
	require.Error(t, err)
}

// TestDataRootHonorsXDG prefers XDG_DATA_HOME over the home fallback.
func TestDataRootHonorsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	root, err := DataRoot()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "fflaunch"), root)
}
