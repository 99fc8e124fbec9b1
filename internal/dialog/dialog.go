package dialog

import (
	"context"
	"errors"
	"os/exec"
)

// ErrUserAbort signals that the user cancelled a dialog. It is a clean
// termination condition, not an error: callers unwind without touching
// any existing install and exit silently.
var ErrUserAbort = errors.New("cancelled by user")

// defaultProgram is the dialog binary looked up on PATH when no override
// is configured.
const defaultProgram = "zenity"

// ChooserSpec describes the install chooser form.
type ChooserSpec struct {
	// Title of the dialog window.
	Title string
	// Text shown above the fields.
	Text string
	// Languages are display names for the list field, in display order.
	Languages []string
	// Channels for the combo field; empty means the channel is already
	// fixed and the field is omitted.
	Channels []string
}

// ChooserResult carries the confirmed field values. Empty strings mean
// the field was left blank or not shown.
type ChooserResult struct {
	// Language is the selected display name.
	Language string
	// Channel is the selected channel identifier.
	Channel string
	// URLOverride bypasses URL resolution entirely when non-empty.
	URLOverride string
}

// ProgressSpec describes one long-running phase.
type ProgressSpec struct {
	// Title of the dialog window.
	Title string
	// Text is the initial label.
	Text string
	// Pulsate selects indeterminate mode; Update percentages are ignored.
	Pulsate bool
	// AutoClose lets the dialog dismiss itself at 100%. Close must still
	// be called: it is the only reliable cancel-detection point.
	AutoClose bool
}

// Progress is a handle on a running progress dialog. Close must run on
// every exit path of the enclosing operation; both Update and Close
// report ErrUserAbort once the user has dismissed the dialog.
type Progress interface {
	// Update pushes a new percentage (0-100; negative values update only
	// the label) and an optional label text.
	Update(percent int, message string) error
	// Close dismisses the dialog and reaps the subprocess.
	Close() error
}

// UI is the surface the services talk to, satisfied by both the zenity
// bridge and the console fallback.
type UI interface {
	Chooser(ctx context.Context, spec *ChooserSpec) (*ChooserResult, error)
	StartProgress(ctx context.Context, spec *ProgressSpec) (Progress, error)
}

// New selects a UI implementation. A non-empty program is used as the
// dialog binary unconditionally; otherwise zenity is looked up on PATH
// and the console fallback is returned when it is absent.
func New(program string) UI {
	if program != "" {
		return NewZenity(program)
	}

	if path, err := exec.LookPath(defaultProgram); err == nil {
		return NewZenity(path)
	}

	return NewConsole()
}

// isCancel reports whether a subprocess error is the uniform cancel
// signal: exit status 1.
func isCancel(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && exitErr.ExitCode() == 1
}
