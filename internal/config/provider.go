// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// TargetOverride forces the bot executable when set (--target flag).
	// It takes precedence over the BOT_COMMAND variable.
	TargetOverride string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(ctx context.Context, opts LoadOptions) (*Config, error)
}

type envProvider struct{}

// NewProvider creates a configuration provider backed by the process environment.
func NewProvider() Provider {
	return &envProvider{}
}

// Load reads configuration from the environment.
func (p *envProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return Load(ctx, opts)
}
