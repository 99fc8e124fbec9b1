package installer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/oshokin/fflaunch/internal/config"
	"github.com/oshokin/fflaunch/internal/dialog"
	"github.com/oshokin/fflaunch/internal/logger"
)

var (
	errInstallAlreadyRunning = errors.New("an install is already running")
	errNoDistributionRoot    = errors.New("archive has no distribution root folder")
	errBadHTTPStatus         = errors.New("unexpected http status")
	errCorruptArchive        = errors.New("corrupt archive")
)

// Options are inputs accepted by the installer entry point.
type Options struct {
	// URL of the compressed archive to fetch.
	URL string
	// DataRoot is the per-user base directory; the temporary working
	// directory is created under it so the final move is a rename on the
	// same filesystem.
	DataRoot string
	// FolderName is the install subdirectory, named by channel.
	FolderName string
	// UI presents the progress dialogs.
	UI dialog.UI
	// HTTPClient defaults to http.DefaultClient when nil.
	HTTPClient HTTPClient
}

// HTTPClient is the subset of *http.Client the installer needs.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Run executes download, extraction and the atomic swap into the
// destination. The temporary directory is removed on every exit path;
// the destination is only mutated after a fully successful extraction.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "installer")

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	if err := os.MkdirAll(opts.DataRoot, 0o755); err != nil {
		return fmt.Errorf("create data root: %w", err)
	}

	if IsInstallRunningNow(ctx, opts.DataRoot) {
		return errInstallAlreadyRunning
	}

	markerPath := filepath.Join(opts.DataRoot, MarkerFilename)

	marker, err := os.Create(markerPath)
	if err != nil {
		return fmt.Errorf("create install marker: %w", err)
	}

	if err = marker.Close(); err != nil {
		return fmt.Errorf("close install marker: %w", err)
	}

	defer func() {
		_ = os.Remove(markerPath)
	}()

	tempDir, err := os.MkdirTemp(opts.DataRoot, "install-*")
	if err != nil {
		return fmt.Errorf("create temp directory: %w", err)
	}

	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	logger.InfoKV(ctx, "Downloading archive", "url", opts.URL)

	archivePath, err := download(ctx, opts, tempDir)
	if err != nil {
		return err
	}

	extractDir := filepath.Join(tempDir, "extracted")
	if err = os.MkdirAll(extractDir, 0o755); err != nil {
		return fmt.Errorf("create extraction directory: %w", err)
	}

	if err = extract(ctx, opts.UI, archivePath, extractDir); err != nil {
		return err
	}

	// The archive's root folder carries the executable's name.
	source := filepath.Join(extractDir, config.ExecutableName)
	if _, err = os.Stat(source); err != nil {
		return fmt.Errorf("%w: %s", errNoDistributionRoot, config.ExecutableName)
	}

	destination := filepath.Join(opts.DataRoot, opts.FolderName)

	if err = os.RemoveAll(destination); err != nil {
		return fmt.Errorf("remove previous install: %w", err)
	}

	if err = os.Rename(source, destination); err != nil {
		return fmt.Errorf("move distribution into place: %w", err)
	}

	logger.InfoKV(ctx, "Install complete", "destination", destination)

	return nil
}

// closeProgress closes a progress dialog and merges its outcome with the
// phase error. Close runs on every path because the dialog's exit status
// is the only reliable cancel-detection point.
func closeProgress(progress dialog.Progress, phaseErr error) error {
	closeErr := progress.Close()

	if phaseErr != nil {
		return phaseErr
	}

	return closeErr
}
