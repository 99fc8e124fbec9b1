//go:build unix

package launcher

import "syscall"

// replaceProcess swaps the current process image for the target binary.
// On success it never returns.
func replaceProcess(path string, argv, env []string) error {
	return syscall.Exec(path, argv, env)
}
