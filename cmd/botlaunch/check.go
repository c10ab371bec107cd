// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"botlaunch/internal/config"
	"botlaunch/internal/launcher"

	"github.com/spf13/cobra"
)

// checkCmd reports which environment variables the launcher sees, without
// starting the bot. It exits 1 when required configuration is missing so it
// can serve as a deploy-time preflight.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the bot environment without launching",
	Long: `Check prints every environment variable the launcher consumes and whether
the bot executable can be resolved. Nothing is launched. The exit code is 1
when required configuration is missing, so check can gate a deployment.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, TitleStyle.Render("Environment check"))
	fmt.Fprintln(out)

	ready := true
	if os.Getenv(config.EnvToken) == "" {
		fmt.Fprintf(out, "  %s %-22s missing (required)\n", ErrorStyle.Render("✗"), config.EnvToken)
		ready = false
	} else {
		// Never echo the credential itself.
		fmt.Fprintf(out, "  %s %-22s set (redacted)\n", SuccessStyle.Render("✓"), config.EnvToken)
	}

	printOptionalVar(out, config.EnvChatID)
	for _, key := range config.ForwardKeys {
		printOptionalVar(out, key)
	}
	printTargetResolution(out)

	fmt.Fprintln(out)
	if !ready {
		fmt.Fprintln(out, ErrorStyle.Render("Not ready:")+" required credential missing")
		return &ExitError{Code: launcher.ExitConfigFailure}
	}
	fmt.Fprintln(out, SuccessStyle.Render("Ready:")+" environment is complete")
	return nil
}

func printOptionalVar(out io.Writer, key string) {
	if val := os.Getenv(key); val != "" {
		fmt.Fprintf(out, "  %s %-22s %s\n", SuccessStyle.Render("•"), key, val)
	} else {
		fmt.Fprintf(out, "  %s %-22s (unset)\n", SubtitleStyle.Render("•"), key)
	}
}

// printTargetResolution reports whether the bot executable resolves. An
// unresolvable target is a warning rather than a failure: PATH at check time
// can differ from PATH at launch time.
func printTargetResolution(out io.Writer) {
	name := target
	if name == "" {
		name = os.Getenv(config.EnvTarget)
	}
	if name == "" {
		name = config.DefaultTarget
	}

	if path, err := exec.LookPath(name); err != nil {
		fmt.Fprintf(out, "  %s %-22s %q not found in PATH\n", WarningStyle.Render("!"), "target", name)
	} else {
		fmt.Fprintf(out, "  %s %-22s %s\n", SuccessStyle.Render("✓"), "target", path)
	}
}
