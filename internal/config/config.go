// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"fmt"

	"botlaunch/internal/issue"

	"github.com/spf13/viper"
)

const (
	// EnvToken is the required bot credential variable.
	EnvToken = "BOT_TOKEN"
	// EnvChatID is the optional target chat variable, forwarded when set.
	EnvChatID = "CHAT_ID"
	// EnvTarget names the bot executable to hand off to.
	EnvTarget = "BOT_COMMAND"

	// DefaultTarget is the bot executable launched when neither the
	// BOT_COMMAND variable nor the --target flag names one.
	DefaultTarget = "aoe2bot"
)

// ForwardKeys are the optional variables from the bot's environment contract.
// Each one that is set and non-empty is carried into the child environment;
// unset keys are simply absent (the bot applies its own defaults).
var ForwardKeys = []string{
	"AOE_API_BASE",
	"AOE_API_LASTMATCH_PATH",
	"AOE_API_MATCHES_PATH",
	"CHECK_INTERVAL",
}

// ErrMissingKey is the sentinel error wrapped by MissingKeyError.
var ErrMissingKey = errors.New("required credential missing")

type (
	// Config holds the validated launcher configuration. It is built once at
	// startup from the process environment and never mutated afterwards.
	Config struct {
		// Token is the bot credential (BOT_TOKEN). Always non-empty.
		Token string
		// ChatID is the target chat identifier (CHAT_ID). Empty when unset.
		ChatID string
		// Target is the bot executable name or path to hand off to.
		Target string
		// Forward holds the optional forwarded variables that were set and
		// non-empty, keyed by variable name.
		Forward map[string]string
	}

	// MissingKeyError reports a required environment variable that is unset
	// or empty.
	MissingKeyError struct {
		Key string
	}
)

// Error implements the error interface.
func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("required credential missing: %s", e.Key)
}

// Unwrap returns ErrMissingKey so callers can use errors.Is for programmatic detection.
func (e *MissingKeyError) Unwrap() error { return ErrMissingKey }

// Load reads the launcher configuration from the process environment and
// validates it. An unset or empty BOT_TOKEN yields an error wrapping
// ErrMissingKey; all other variables are optional.
func Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()
	v.SetDefault("target", DefaultTarget)

	bindings := map[string]string{
		"token":   EnvToken,
		"chat_id": EnvChatID,
		"target":  EnvTarget,
	}
	for _, key := range ForwardKeys {
		bindings["forward."+key] = key
	}
	for key, envVar := range bindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("bind %s: %w", envVar, err)
		}
	}

	cfg := &Config{
		Token:   v.GetString("token"),
		ChatID:  v.GetString("chat_id"),
		Target:  v.GetString("target"),
		Forward: make(map[string]string),
	}
	for _, key := range ForwardKeys {
		if val := v.GetString("forward." + key); val != "" {
			cfg.Forward[key] = val
		}
	}

	if opts.TargetOverride != "" {
		cfg.Target = opts.TargetOverride
	}

	if cfg.Token == "" {
		return nil, issue.NewErrorContext().
			WithOperation("load configuration").
			WithResource(EnvToken).
			WithSuggestion("Export BOT_TOKEN with the bot's API token before launching").
			WithSuggestion("Run 'botlaunch check' to see which variables are set").
			Wrap(&MissingKeyError{Key: EnvToken}).
			BuildError()
	}

	return cfg, nil
}

// ChildEnv returns the validated and forwarded variables to overlay onto the
// child process environment. The map is freshly allocated on each call.
func (c *Config) ChildEnv() map[string]string {
	env := make(map[string]string, len(c.Forward)+2)
	env[EnvToken] = c.Token
	if c.ChatID != "" {
		env[EnvChatID] = c.ChatID
	}
	for key, val := range c.Forward {
		env[key] = val
	}
	return env
}
