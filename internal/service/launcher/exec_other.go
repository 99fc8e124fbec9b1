//go:build !unix

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// replaceProcess approximates execve where it does not exist: the target
// runs as a child with inherited stdio and the launcher exits with the
// child's status.
func replaceProcess(path string, argv, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}

		return err
	}

	os.Exit(0)

	return nil
}
