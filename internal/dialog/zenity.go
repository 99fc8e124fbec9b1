package dialog

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Zenity drives an external dialog program speaking the zenity protocol.
type Zenity struct {
	// program is the dialog binary to spawn.
	program string
}

// NewZenity creates a bridge around the given dialog binary.
func NewZenity(program string) *Zenity {
	return &Zenity{program: program}
}

// Chooser shows a form with a language list, an optional channel combo
// and a free-text URL override entry. On confirmation zenity prints one
// line with the field values pipe-separated.
func (z *Zenity) Chooser(ctx context.Context, spec *ChooserSpec) (*ChooserResult, error) {
	args := []string{
		"--forms",
		"--title=" + spec.Title,
		"--text=" + spec.Text,
		"--separator=|",
		"--add-list=Language",
		"--list-values=" + strings.Join(spec.Languages, "|"),
	}

	hasChannel := len(spec.Channels) > 0
	if hasChannel {
		args = append(args,
			"--add-combo=Channel",
			"--combo-values="+strings.Join(spec.Channels, "|"),
		)
	}

	args = append(args, "--add-entry=Download URL (leave empty to resolve automatically)")

	output, err := exec.CommandContext(ctx, z.program, args...).Output()
	if err != nil {
		if isCancel(err) {
			return nil, ErrUserAbort
		}

		return nil, fmt.Errorf("run dialog program %q: %w", z.program, err)
	}

	fields := strings.Split(strings.TrimRight(string(output), "\r\n"), "|")
	for i := range fields {
		// Stray separators and whitespace leak into field values on some
		// zenity builds.
		fields[i] = strings.TrimSpace(fields[i])
	}

	result := &ChooserResult{Language: fieldAt(fields, 0)}

	if hasChannel {
		result.Channel = fieldAt(fields, 1)
		result.URLOverride = fieldAt(fields, 2)
	} else {
		result.URLOverride = fieldAt(fields, 1)
	}

	return result, nil
}

// fieldAt tolerates short output lines: a missing trailing field reads
// as empty.
func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}

	return ""
}

// StartProgress spawns a progress dialog. Determinate mode starts at 0%;
// pulsate mode animates on its own and ignores percentage lines.
func (z *Zenity) StartProgress(ctx context.Context, spec *ProgressSpec) (Progress, error) {
	args := []string{
		"--progress",
		"--title=" + spec.Title,
		"--text=" + spec.Text,
	}

	if spec.Pulsate {
		args = append(args, "--pulsate")
	} else {
		args = append(args, "--percentage=0")

		if spec.AutoClose {
			args = append(args, "--auto-close")
		}
	}

	cmd := exec.CommandContext(ctx, z.program, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("dialog stdin pipe: %w", err)
	}

	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("start dialog program %q: %w", z.program, err)
	}

	return &zenityProgress{cmd: cmd, stdin: stdin, pulsate: spec.Pulsate}, nil
}

// zenityProgress feeds one running progress dialog.
type zenityProgress struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	pulsate bool
	// done is set once the subprocess has been reaped; result is the
	// terminal outcome returned by any further Update/Close calls.
	done   bool
	result error
}

// Update pushes a percentage line and, when message is non-empty, a
// "# message" label line. In pulsate mode (and for negative percentages)
// only the label line is written.
func (p *zenityProgress) Update(percent int, message string) error {
	if p.done {
		return p.result
	}

	if !p.pulsate && percent >= 0 {
		if _, err := fmt.Fprintf(p.stdin, "%d\n", percent); err != nil {
			return p.finish(err)
		}
	}

	if message != "" {
		if _, err := fmt.Fprintf(p.stdin, "# %s\n", message); err != nil {
			return p.finish(err)
		}
	}

	return nil
}

// Close dismisses the dialog and reaps the subprocess. It must be called
// on every exit path, including auto-close mode: abort detection only
// happens at write or close time.
func (p *zenityProgress) Close() error {
	if p.done {
		return p.result
	}

	return p.finish(nil)
}

// finish reaps the subprocess exactly once. The exit status is consulted
// only after a write has failed or the pipe is closed; a status of 1 then
// means the user dismissed the dialog. A child that exits 1 for its own
// reasons is indistinguishable from a cancel here.
func (p *zenityProgress) finish(writeErr error) error {
	p.done = true

	_ = p.stdin.Close()

	waitErr := p.cmd.Wait()

	switch {
	case isCancel(waitErr):
		p.result = ErrUserAbort
	case writeErr != nil:
		p.result = fmt.Errorf("write to dialog: %w", writeErr)
	case waitErr != nil:
		p.result = fmt.Errorf("dialog program exited: %w", waitErr)
	default:
		p.result = nil
	}

	return p.result
}
