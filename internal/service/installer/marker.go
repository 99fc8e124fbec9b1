package installer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/fflaunch/internal/logger"
)

const (
	// MarkerFilename marks that an install is running right now to avoid
	// two runs racing on the same channel folder.
	MarkerFilename = "fflaunch-install-marker.bin"

	// markerLifetime is the period after which a marker is considered
	// stale, likely left behind by a crashed run.
	markerLifetime = 30 * time.Second
)

// IsInstallRunningNow checks presence of an install marker and attempts
// recovery when it looks stale.
func IsInstallRunningNow(ctx context.Context, dataRoot string) bool {
	logger.Debug(ctx, "Checking for the presence of an install marker")

	markerPath := filepath.Join(dataRoot, MarkerFilename)

	fileInfo, err := os.Stat(markerPath)
	if err == nil {
		if time.Since(fileInfo.ModTime()) <= markerLifetime {
			return true
		}

		logger.Info(ctx, "The install marker is stale, checking for a live instance")

		if otherInstanceRunning() {
			return true
		}

		if err = os.Remove(markerPath); err != nil {
			return true
		}

		return false
	}

	if errors.Is(err, os.ErrNotExist) {
		return false
	}

	logger.Infof(ctx, "Unable to read install marker: %v", err)

	return false
}

// otherInstanceRunning reports whether another process with our
// executable name exists. Errors count as "running": the marker is only
// reclaimed when it is provably safe.
func otherInstanceRunning() bool {
	processList, err := ps.Processes()
	if err != nil {
		return true
	}

	var (
		thisProcessID = os.Getpid()
		executable    = filepath.Base(os.Args[0])
	)

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == executable {
			return true
		}
	}

	return false
}
