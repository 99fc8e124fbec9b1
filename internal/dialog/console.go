package dialog

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Console is the fallback UI used when no dialog program is available.
// Prompts are read from stdin, progress is rendered with a terminal bar.
// There is no cancel button; interrupting the process is the only way to
// abort, and closed stdin counts as a cancel.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole creates a console UI on the process's stdin and stderr.
func NewConsole() *Console {
	return newConsole(os.Stdin, os.Stderr)
}

func newConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Chooser prompts for the same three fields the form dialog shows.
func (c *Console) Chooser(ctx context.Context, spec *ChooserSpec) (*ChooserResult, error) {
	fmt.Fprintln(c.out, spec.Text)

	result := &ChooserResult{}

	language, err := c.pick(ctx, "Language", spec.Languages)
	if err != nil {
		return nil, err
	}

	result.Language = language

	if len(spec.Channels) > 0 {
		result.Channel, err = c.pick(ctx, "Channel", spec.Channels)
		if err != nil {
			return nil, err
		}
	}

	result.URLOverride, err = c.prompt(ctx, "Download URL (leave empty to resolve automatically): ")
	if err != nil {
		return nil, err
	}

	return result, nil
}

// pick shows a numbered list and reads a selection; empty input selects
// the first entry.
func (c *Console) pick(ctx context.Context, label string, options []string) (string, error) {
	fmt.Fprintf(c.out, "%s:\n", label)

	for i, option := range options {
		fmt.Fprintf(c.out, "  %3d) %s\n", i+1, option)
	}

	for {
		answer, err := c.prompt(ctx, fmt.Sprintf("%s [1]: ", label))
		if err != nil {
			return "", err
		}

		if answer == "" {
			return options[0], nil
		}

		index, err := strconv.Atoi(answer)
		if err == nil && index >= 1 && index <= len(options) {
			return options[index-1], nil
		}

		fmt.Fprintf(c.out, "enter a number between 1 and %d\n", len(options))
	}
}

// prompt prints a question and reads one trimmed line.
func (c *Console) prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, question)

	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}

		// EOF: the user closed the terminal input.
		return "", ErrUserAbort
	}

	return strings.TrimSpace(c.in.Text()), nil
}

// StartProgress renders a terminal bar (or a spinner in pulsate mode).
func (c *Console) StartProgress(_ context.Context, spec *ProgressSpec) (Progress, error) {
	total := int64(100)
	if spec.Pulsate {
		// progressbar renders a spinner for unknown totals.
		total = -1
	}

	bar := progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(spec.Text),
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(c.out)
		}),
	)

	return &consoleProgress{bar: bar, pulsate: spec.Pulsate}, nil
}

// consoleProgress adapts progressbar to the Progress interface.
type consoleProgress struct {
	bar     *progressbar.ProgressBar
	pulsate bool
}

// Update advances the bar; in pulsate mode every call ticks the spinner.
func (p *consoleProgress) Update(percent int, message string) error {
	if message != "" {
		p.bar.Describe(message)
	}

	if p.pulsate || percent < 0 {
		return p.bar.Add(1)
	}

	return p.bar.Set(percent)
}

// Close stops rendering without filling the bar.
func (p *consoleProgress) Close() error {
	return p.bar.Exit()
}
