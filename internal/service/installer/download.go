package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/oshokin/fflaunch/internal/dialog"
)

// archiveFilename is the temporary name of the fetched archive; the
// extractor sniffs the compression, so no extension is needed.
const archiveFilename = "distribution-archive"

// download streams the archive into the temporary directory, feeding a
// determinate progress dialog from the byte counts (or a pulsating one
// when the total size is unknown).
func download(ctx context.Context, opts *Options, tempDir string) (archivePath string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
	if err != nil {
		return "", fmt.Errorf("build download request: %w", err)
	}

	resp, err := opts.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: %w", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s", errBadHTTPStatus, resp.Status)
	}

	progress, err := opts.UI.StartProgress(ctx, &dialog.ProgressSpec{
		Title:     "Installing Firefox",
		Text:      "Downloading Firefox...",
		Pulsate:   resp.ContentLength <= 0,
		AutoClose: true,
	})
	if err != nil {
		return "", err
	}

	defer func() {
		err = closeProgress(progress, err)
	}()

	archivePath = filepath.Join(tempDir, archiveFilename)

	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive file: %w", err)
	}

	defer func() {
		_ = out.Close()
	}()

	reader := &progressReader{
		r:        resp.Body,
		total:    resp.ContentLength,
		progress: progress,
	}

	if _, err = io.Copy(out, reader); err != nil {
		if errors.Is(err, dialog.ErrUserAbort) {
			return "", err
		}

		return "", fmt.Errorf("download: %w", err)
	}

	if err = out.Sync(); err != nil {
		return "", fmt.Errorf("sync archive file: %w", err)
	}

	return archivePath, nil
}

// progressReader reports download progress as a percentage of the total,
// pushing an update only when the percentage changes. Percentages are
// strictly increasing and reach exactly 100 on a complete transfer.
type progressReader struct {
	r           io.Reader
	progress    dialog.Progress
	total       int64
	read        int64
	lastPercent int
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n <= 0 {
		return n, err
	}

	p.read += int64(n)

	if p.total <= 0 {
		// Unknown size: tick the pulsating dialog's label channel only.
		if updateErr := p.progress.Update(-1, ""); updateErr != nil {
			return n, updateErr
		}

		return n, err
	}

	percent := int(p.read * 100 / p.total)
	if percent > p.lastPercent {
		p.lastPercent = percent

		if updateErr := p.progress.Update(percent, ""); updateErr != nil {
			return n, updateErr
		}
	}

	return n, err
}
