// SPDX-License-Identifier: MPL-2.0

//go:build unix

package launcher

import "syscall"

// handoff replaces the current process image with the target executable.
// On success it never returns; the child inherits the launcher's process
// identity, and the exit code observed by the caller is the child's own.
func handoff(path string, argv, env []string) error {
	return syscall.Exec(path, argv, env)
}
