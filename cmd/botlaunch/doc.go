// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for botlaunch.
//
// This package implements the Cobra command hierarchy: the root command,
// which validates the environment and hands off to the bot process, and the
// check subcommand, which reports the environment state without launching.
package cmd
