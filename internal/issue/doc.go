// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// Errors produced here carry the failed operation, the resource involved, and
// remediation suggestions, so the CLI layer can render a diagnostic that tells
// the user how to fix the problem instead of just what went wrong.
package issue
