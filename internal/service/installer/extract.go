package installer

import (
	"archive/tar"
	"bufio"
	"compress/bzip2"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/oshokin/fflaunch/internal/dialog"
)

// extract unpacks the archive into dest behind an indeterminate progress
// dialog.
func extract(ctx context.Context, ui dialog.UI, archivePath, dest string) (err error) {
	progress, err := ui.StartProgress(ctx, &dialog.ProgressSpec{
		Title:   "Installing Firefox",
		Text:    "Extracting...",
		Pulsate: true,
	})
	if err != nil {
		return err
	}

	defer func() {
		err = closeProgress(progress, err)
	}()

	return extractArchive(archivePath, dest, progress)
}

// extractArchive reads a tar stream compressed with bzip2 (or gzip,
// decided by the magic bytes) and materializes its entries under dest.
func extractArchive(archivePath, dest string, progress dialog.Progress) error {
	file, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	buffered := bufio.NewReader(file)

	magic, err := buffered.Peek(2)
	if err != nil {
		return fmt.Errorf("%w: %s", errCorruptArchive, "short read on header")
	}

	var decompressed io.Reader

	switch {
	case magic[0] == 'B' && magic[1] == 'Z':
		decompressed = bzip2.NewReader(buffered)
	case magic[0] == 0x1f && magic[1] == 0x8b:
		gz, gzErr := gzip.NewReader(buffered)
		if gzErr != nil {
			return fmt.Errorf("%w: %v", errCorruptArchive, gzErr)
		}

		decompressed = gz
	default:
		return fmt.Errorf("%w: unrecognized compression", errCorruptArchive)
	}

	reader := tar.NewReader(decompressed)

	for {
		header, nextErr := reader.Next()
		if errors.Is(nextErr, io.EOF) {
			return nil
		}

		if nextErr != nil {
			return fmt.Errorf("%w: %v", errCorruptArchive, nextErr)
		}

		if err = writeEntry(dest, header, reader); err != nil {
			return err
		}

		// Ticks the console spinner; zenity pulsates on its own.
		if err = progress.Update(-1, ""); err != nil {
			return err
		}
	}
}

// writeEntry materializes one tar entry, refusing paths and link targets
// that would escape the destination.
func writeEntry(dest string, header *tar.Header, r io.Reader) error {
	name := strings.TrimPrefix(header.Name, "./")
	if name == "" {
		return nil
	}

	if !filepath.IsLocal(name) {
		return fmt.Errorf("%w: unsafe path %q", errCorruptArchive, header.Name)
	}

	target := filepath.Join(dest, name)
	mode := header.FileInfo().Mode().Perm()

	switch header.Typeflag {
	case tar.TypeDir:
		if err := os.MkdirAll(target, mode|0o700); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	case tar.TypeReg:
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}

		out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
		if err != nil {
			return fmt.Errorf("create file: %w", err)
		}

		if _, err = io.Copy(out, r); err != nil {
			_ = out.Close()
			return fmt.Errorf("%w: %v", errCorruptArchive, err)
		}

		if err = out.Close(); err != nil {
			return fmt.Errorf("close file: %w", err)
		}
	case tar.TypeSymlink:
		if filepath.IsAbs(header.Linkname) {
			return fmt.Errorf("%w: absolute link target %q", errCorruptArchive, header.Linkname)
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create parent directory: %w", err)
		}

		if err := os.Symlink(header.Linkname, target); err != nil {
			return fmt.Errorf("create symlink: %w", err)
		}
	case tar.TypeLink:
		linked := strings.TrimPrefix(header.Linkname, "./")
		if !filepath.IsLocal(linked) {
			return fmt.Errorf("%w: unsafe link target %q", errCorruptArchive, header.Linkname)
		}

		if err := os.Link(filepath.Join(dest, linked), target); err != nil {
			return fmt.Errorf("create hard link: %w", err)
		}
	default:
		// PAX headers and other metadata entries carry no payload.
	}

	return nil
}
