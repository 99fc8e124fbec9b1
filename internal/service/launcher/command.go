package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/oshokin/fflaunch/internal/config"
	"github.com/oshokin/fflaunch/internal/dialog"
	"github.com/oshokin/fflaunch/internal/logger"
	"github.com/oshokin/fflaunch/internal/registry"
	"github.com/oshokin/fflaunch/internal/service/installer"
	"github.com/oshokin/fflaunch/internal/version"
)

// ExecFunc replaces the current process image. Injected in tests.
type ExecFunc func(path string, argv, env []string) error

// Options are inputs accepted by the launcher entry point.
type Options struct {
	// Args are this program's own arguments, forwarded verbatim to the
	// browser.
	Args []string
	// DataRoot overrides the platform-conventional data directory.
	DataRoot string
	// UI overrides dialog selection; nil picks zenity or the console.
	UI dialog.UI
	// HTTPClient is passed through to the installer.
	HTTPClient installer.HTTPClient
	// Exec defaults to the real process replacement.
	Exec ExecFunc
}

// Run checks the install state, installs if needed and hands the process
// over to the browser. It returns only on failure or user abort.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "launcher")

	logger.Debugf(ctx, "fflaunch %s", version.Full())

	cfg, err := config.Load(opts.DataRoot)
	if err != nil {
		return err
	}

	executablePath := cfg.ExecutablePath()

	if _, statErr := os.Stat(executablePath); statErr != nil {
		if !errors.Is(statErr, os.ErrNotExist) {
			return fmt.Errorf("check install state: %w", statErr)
		}

		ui := opts.UI
		if ui == nil {
			ui = dialog.New(cfg.DialogProgram)
		}

		downloadURL, chooseErr := chooseURL(ctx, cfg, ui)
		if chooseErr != nil {
			return chooseErr
		}

		installErr := installer.Run(ctx, &installer.Options{
			URL:        downloadURL,
			DataRoot:   cfg.DataRoot,
			FolderName: cfg.FolderName(),
			UI:         ui,
			HTTPClient: opts.HTTPClient,
		})
		if installErr != nil {
			return installErr
		}
	}

	execFn := opts.Exec
	if execFn == nil {
		execFn = replaceProcess
	}

	argv := append([]string{executablePath}, opts.Args...)

	logger.InfoKV(ctx, "Launching browser", "path", executablePath)

	if err = execFn(executablePath, argv, os.Environ()); err != nil {
		return fmt.Errorf("launch %s: %w", executablePath, err)
	}

	return nil
}

// chooseURL runs the chooser form and turns its answer into a download
// URL: a typed override bypasses resolution entirely, otherwise the
// selection is resolved against the registry.
func chooseURL(ctx context.Context, cfg *config.Config, ui dialog.UI) (string, error) {
	spec := &dialog.ChooserSpec{
		Title:     "Firefox is not installed",
		Text:      "Select the Firefox build to download and install.",
		Languages: languageChoices(cfg.Language),
	}

	// The channel combo only appears when the channel is not already
	// fixed by the environment; the folder name stays unaffected either
	// way, it was computed before the chooser ran.
	channel := cfg.Channel
	if !cfg.ChannelSet {
		channel = registry.ChannelStable

		for _, known := range registry.Channels() {
			spec.Channels = append(spec.Channels, string(known))
		}
	}

	result, err := ui.Chooser(ctx, spec)
	if err != nil {
		return "", err
	}

	if result.URLOverride != "" {
		logger.InfoKV(ctx, "Using download URL override", "url", result.URLOverride)
		return result.URLOverride, nil
	}

	if result.Channel != "" {
		if channel, err = registry.ParseChannel(result.Channel); err != nil {
			return "", err
		}
	}

	language, err := registry.CodeForDisplayName(result.Language)
	if err != nil {
		return "", err
	}

	return registry.ResolveURL(cfg.BaseURL, channel, language, cfg.Arch)
}

// languageChoices lists all display names with the configured language
// first, so it becomes the default selection in either UI.
func languageChoices(preferred string) []string {
	names := registry.DisplayNames()

	name, err := registry.DisplayName(preferred)
	if err != nil || name == names[0] {
		return names
	}

	choices := make([]string, 0, len(names))
	choices = append(choices, name)

	for _, candidate := range names {
		if candidate != name {
			choices = append(choices, candidate)
		}
	}

	return choices
}
