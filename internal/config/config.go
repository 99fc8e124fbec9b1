package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/oshokin/fflaunch/internal/registry"
)

const (
	// EnvChannel selects the release channel and the install folder name.
	EnvChannel = "FF_CHANNEL"

	// EnvArch overrides the inferred architecture. The value is accepted
	// verbatim; later registry lookups may fail on it.
	EnvArch = "FF_ARCH"

	// EnvLogLevel selects the zap log level (debug, info, warn, error).
	EnvLogLevel = "FF_LOG_LEVEL"

	// SettingsFilename is the optional per-user settings file under the
	// data root.
	SettingsFilename = "settings.yaml"

	// ExecutableName is the browser binary inside an extracted
	// distribution, and also the archive's root folder name.
	ExecutableName = "firefox"

	// DefaultFolderName is the install folder used when no channel
	// override is set.
	DefaultFolderName = "default"

	// appDirName is the subdirectory of the user data directory holding
	// all installs.
	appDirName = "fflaunch"
)

// ErrInvalidChannel is returned when the channel environment override is
// not a known release channel.
var ErrInvalidChannel = errors.New("invalid release channel override")

// Settings are the optional on-disk preferences. Everything here has a
// working default; absence of the file is not an error.
type Settings struct {
	// BaseURL points the resolver at a mirror of the vendor redirect
	// endpoint.
	BaseURL string `yaml:"base_url"`
	// Language is the preselected locale code for the chooser.
	Language string `yaml:"language"`
	// DialogProgram overrides the dialog binary looked up on PATH.
	DialogProgram string `yaml:"dialog_program"`
}

// Config is the fully resolved runtime configuration: on-disk settings
// plus environment overrides plus inferred values.
type Config struct {
	Settings

	// Channel is the validated channel override; meaningful only when
	// ChannelSet is true.
	Channel registry.Channel
	// ChannelSet records whether EnvChannel was present.
	ChannelSet bool
	// Arch is the architecture override or the inferred host value.
	Arch string
	// DataRoot is the per-user base directory holding install folders.
	DataRoot string
}

// DataRoot resolves the per-user application data directory:
// $XDG_DATA_HOME when set, ~/.local/share otherwise.
func DataRoot() (string, error) {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, appDirName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", appDirName), nil
}

// Load builds the runtime configuration. An empty dataRoot means the
// platform-conventional location. Channel validation happens here, before
// any network or filesystem action is taken.
func Load(dataRoot string) (*Config, error) {
	if dataRoot == "" {
		var err error
		if dataRoot, err = DataRoot(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Settings: Settings{
			BaseURL:  registry.DefaultBaseURL,
			Language: registry.DefaultLanguage,
		},
		DataRoot: dataRoot,
	}

	// The channel override is validated before anything else happens,
	// filesystem reads included.
	if value := os.Getenv(EnvChannel); value != "" {
		channel, err := registry.ParseChannel(value)
		if err != nil {
			return nil, fmt.Errorf("%s=%q is not one of stable, beta, dev, nightly, esr: %w",
				EnvChannel, value, ErrInvalidChannel)
		}

		cfg.Channel = channel
		cfg.ChannelSet = true
	}

	if err := cfg.applySettingsFile(); err != nil {
		return nil, err
	}

	cfg.Arch = os.Getenv(EnvArch)
	if cfg.Arch == "" {
		cfg.Arch = registry.HostArch()
	}

	if _, err := registry.DisplayName(cfg.Language); err != nil {
		return nil, fmt.Errorf("settings language: %w", err)
	}

	return cfg, nil
}

// applySettingsFile overlays non-empty values from the optional settings
// file. Environment overrides are applied after this and always win.
func (c *Config) applySettingsFile() error {
	contents, err := os.ReadFile(filepath.Join(c.DataRoot, SettingsFilename))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read settings: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(contents, &settings); err != nil {
		return fmt.Errorf("unmarshal settings: %w", err)
	}

	if settings.BaseURL != "" {
		c.BaseURL = settings.BaseURL
	}

	if settings.Language != "" {
		c.Language = settings.Language
	}

	if settings.DialogProgram != "" {
		c.DialogProgram = settings.DialogProgram
	}

	return nil
}

// FolderName is the install subdirectory for the selected channel, or
// "default" when no channel override is set.
func (c *Config) FolderName() string {
	if c.ChannelSet {
		return string(c.Channel)
	}

	return DefaultFolderName
}

// InstallDir is the destination directory of the extracted distribution.
func (c *Config) InstallDir() string {
	return filepath.Join(c.DataRoot, c.FolderName())
}

// ExecutablePath is the browser binary whose existence is the sole signal
// of "already installed".
func (c *Config) ExecutablePath() string {
	return filepath.Join(c.InstallDir(), ExecutableName)
}
