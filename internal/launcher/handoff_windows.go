// SPDX-License-Identifier: MPL-2.0

//go:build windows

package launcher

import (
	"errors"
	"os"
	"os/exec"
)

// handoff approximates exec-style replacement on Windows, which has no
// process-image replacement primitive: the target runs as a child wired to
// the launcher's standard streams, and the launcher terminates with the
// child's exit code the moment it finishes. Launcher code after a successful
// start is limited to exit-code passthrough.
func handoff(path string, argv, env []string) error {
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
