// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"botlaunch/internal/config"
	"botlaunch/internal/launcher"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// configProvider loads the launcher configuration. Package-level so tests can
// substitute a provider without touching the process environment.
var configProvider config.Provider = config.NewProvider()

// newLauncher builds the production launcher. Tests override this to inject
// a recording exec primitive.
var newLauncher = func() *launcher.Launcher {
	return launcher.New(launcher.WithLogger(logger))
}

// runLaunch validates the environment and transfers control to the bot.
// On unix this function does not return when the handoff succeeds.
func runLaunch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := configProvider.Load(cmd.Context(), config.LoadOptions{TargetOverride: target})
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
		return &ExitError{Code: launcher.ExitConfigFailure}
	}

	logger.Debug("configuration validated",
		"target", cfg.Target,
		"chat_id_set", cfg.ChatID != "",
		"forwarded", len(cfg.Forward),
	)

	spec := launcher.NewSpec(cfg, args)
	if err := newLauncher().Launch(cmd.Context(), spec); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))

		var launchErr *launcher.LaunchError
		if errors.As(err, &launchErr) {
			return &ExitError{Code: launchErr.ExitCode()}
		}
		return &ExitError{Code: launcher.ExitConfigFailure}
	}

	// Reached only on platforms without process-image replacement and in
	// tests; on unix the bot now owns this process.
	return nil
}
