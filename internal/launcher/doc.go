// SPDX-License-Identifier: MPL-2.0

// Package launcher transfers control from the launcher process to the bot.
//
// A Launcher resolves the target executable, builds the child environment
// from the validated configuration, and performs the handoff. On unix the
// handoff replaces the current process image, so the launcher's own code
// never runs again after a successful transfer; platforms without exec-style
// replacement fall back to spawn-and-wait with transparent exit-code
// passthrough.
package launcher
