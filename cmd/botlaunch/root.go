// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"botlaunch/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// target overrides the bot executable to launch
	target string

	// logger writes launcher diagnostics to stderr, keeping stdout free for
	// the bot process it hands off to.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "botlaunch",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "botlaunch [-- bot arguments...]",
		Short: "Validate bot configuration and hand off to the bot process",
		Long: TitleStyle.Render("botlaunch") + SubtitleStyle.Render(" - a guarded entry point for the bot process") + `

botlaunch validates the environment the bot needs before any process is
started: BOT_TOKEN must be set and non-empty, CHAT_ID and the API override
variables are forwarded when present. Once validation passes, control is
transferred to the bot executable, replacing the launcher's own process
image where the platform supports it. The exit code you observe is the
bot's own.

` + SubtitleStyle.Render("Examples:") + `
  botlaunch                 Validate the environment and start the bot
  botlaunch -- --poll 30s   Start the bot with extra arguments
  botlaunch check           Report the environment state without launching
  botlaunch --target ./bot  Launch a specific executable`,
		Args: cobra.ArbitraryArgs,
		RunE: runLaunch,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.Flags().StringVarP(&target, "target", "t", "", "bot executable to launch (overrides BOT_COMMAND)")

	rootCmd.AddCommand(checkCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code.Int())
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method so
// remediation suggestions are shown. In verbose mode the full error chain
// is included.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
