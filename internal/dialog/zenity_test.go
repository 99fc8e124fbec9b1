package dialog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// writeScript creates a fake dialog program for subprocess tests.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-dialog")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))

	return path
}

// TestChooserParsesFields splits the pipe-separated output line into the
// three form fields.
func TestChooserParsesFields(t *testing.T) {
	t.Parallel()

	program := writeScript(t, `echo 'English (US)|stable|'`)

	result, err := NewZenity(program).Chooser(context.Background(), &ChooserSpec{
		Title:     "Install",
		Text:      "Pick a build",
		Languages: []string{"English (US)", "German"},
		Channels:  []string{"stable", "beta"},
	})
	require.NoError(t, err)
	require.Equal(t, "English (US)", result.Language)
	require.Equal(t, "stable", result.Channel)
	require.Empty(t, result.URLOverride)
}

// TestChooserWithoutChannelField maps the second field to the URL entry
// and trims stray whitespace.
func TestChooserWithoutChannelField(t *testing.T) {
	t.Parallel()

	program := writeScript(t, `echo 'German| http://mirror.local/ff.tar.bz2 '`)

	result, err := NewZenity(program).Chooser(context.Background(), &ChooserSpec{
		Languages: []string{"German"},
	})
	require.NoError(t, err)
	require.Equal(t, "German", result.Language)
	require.Empty(t, result.Channel)
	require.Equal(t, "http://mirror.local/ff.tar.bz2", result.URLOverride)
}

// TestChooserCancel maps exit status 1 to ErrUserAbort.
func TestChooserCancel(t *testing.T) {
	t.Parallel()

	program := writeScript(t, `exit 1`)

	_, err := NewZenity(program).Chooser(context.Background(), &ChooserSpec{
		Languages: []string{"English (US)"},
	})
	require.ErrorIs(t, err, ErrUserAbort)
}

// TestChooserSpawnFailure is a fatal error, not a cancel.
func TestChooserSpawnFailure(t *testing.T) {
	t.Parallel()

	_, err := NewZenity(filepath.Join(t.TempDir(), "missing")).Chooser(
		context.Background(), &ChooserSpec{Languages: []string{"x"}})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrUserAbort)
}

// TestProgressNormalFlow drives a consuming dialog to completion.
func TestProgressNormalFlow(t *testing.T) {
	t.Parallel()

	program := writeScript(t, `cat >/dev/null`)

	progress, err := NewZenity(program).StartProgress(context.Background(), &ProgressSpec{
		Title:     "Downloading",
		Text:      "Downloading Firefox...",
		AutoClose: true,
	})
	require.NoError(t, err)

	for percent := 0; percent <= 100; percent += 20 {
		require.NoError(t, progress.Update(percent, ""))
	}

	require.NoError(t, progress.Update(100, "done"))
	require.NoError(t, progress.Close())
}

// TestProgressCancel simulates the user dismissing the dialog: the
// process exits 1, a later write or the final close reports ErrUserAbort.
func TestProgressCancel(t *testing.T) {
	t.Parallel()

	program := writeScript(t, `exit 1`)

	progress, err := NewZenity(program).StartProgress(context.Background(), &ProgressSpec{
		Text: "Downloading Firefox...",
	})
	require.NoError(t, err)

	var updateErr error
	for percent := 0; percent <= 100 && updateErr == nil; percent++ {
		updateErr = progress.Update(percent, "")

		time.Sleep(time.Millisecond)
	}

	closeErr := progress.Close()

	if updateErr != nil {
		require.ErrorIs(t, updateErr, ErrUserAbort)
	}

	require.ErrorIs(t, closeErr, ErrUserAbort)
}

// TestProgressCloseIsIdempotent repeats the stored terminal result.
func TestProgressCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	program := writeScript(t, `cat >/dev/null`)

	progress, err := NewZenity(program).StartProgress(context.Background(), &ProgressSpec{Pulsate: true})
	require.NoError(t, err)

	require.NoError(t, progress.Close())
	require.NoError(t, progress.Close())
}

// TestNewFallsBackToConsole returns the console UI when neither an
// override nor zenity on PATH exists.
func TestNewFallsBackToConsole(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	ui := New("")
	_, ok := ui.(*Console)
	require.True(t, ok)
}
