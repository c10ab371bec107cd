// SPDX-License-Identifier: MPL-2.0

// Command botlaunch validates the bot's environment configuration and hands
// control off to the bot process.
package main

import cmd "botlaunch/cmd/botlaunch"

func main() {
	cmd.Execute()
}
