// SPDX-License-Identifier: MPL-2.0

// Package config handles launcher configuration loading and validation.
//
// Configuration comes exclusively from environment variables; there is no
// config file source. Required values are validated once at startup so a
// misconfigured environment fails before any process is launched.
package config
