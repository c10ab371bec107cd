// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"testing"
)

func TestEnvProvider_Load(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv(EnvToken, "abc123")

	cfg, err := NewProvider().Load(context.Background(), LoadOptions{TargetOverride: "./bot"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Token != "abc123" {
		t.Errorf("Token = %q, want %q", cfg.Token, "abc123")
	}
	if cfg.Target != "./bot" {
		t.Errorf("Target = %q, want %q", cfg.Target, "./bot")
	}
}
