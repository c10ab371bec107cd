// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"
)

// clearLauncherEnv unsets every variable the loader consumes, registering
// restores via t.Setenv so tests start from a clean environment.
func clearLauncherEnv(t *testing.T) {
	t.Helper()
	keys := append([]string{EnvToken, EnvChatID, EnvTarget}, ForwardKeys...)
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_RequiredToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		wantErr bool
	}{
		{
			name:    "unset token fails",
			setup:   func(t *testing.T) {},
			wantErr: true,
		},
		{
			name: "empty token fails",
			setup: func(t *testing.T) {
				t.Setenv(EnvToken, "")
			},
			wantErr: true,
		},
		{
			name: "non-empty token passes",
			setup: func(t *testing.T) {
				t.Setenv(EnvToken, "abc123")
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLauncherEnv(t)
			tt.setup(t)

			cfg, err := Load(context.Background(), LoadOptions{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMissingKey) {
					t.Errorf("Load() error = %v, want errors.Is(err, ErrMissingKey)", err)
				}
				var missing *MissingKeyError
				if !errors.As(err, &missing) {
					t.Fatalf("Load() error = %v, want *MissingKeyError in chain", err)
				}
				if missing.Key != EnvToken {
					t.Errorf("MissingKeyError.Key = %q, want %q", missing.Key, EnvToken)
				}
				return
			}
			if cfg.Token != "abc123" {
				t.Errorf("Token = %q, want %q", cfg.Token, "abc123")
			}
		})
	}
}

func TestLoad_OptionalChatID(t *testing.T) {
	t.Run("unset chat id stays empty", func(t *testing.T) {
		clearLauncherEnv(t)
		t.Setenv(EnvToken, "abc123")

		cfg, err := Load(context.Background(), LoadOptions{})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.ChatID != "" {
			t.Errorf("ChatID = %q, want empty", cfg.ChatID)
		}
	})

	t.Run("set chat id is carried", func(t *testing.T) {
		clearLauncherEnv(t)
		t.Setenv(EnvToken, "abc123")
		t.Setenv(EnvChatID, "999")

		cfg, err := Load(context.Background(), LoadOptions{})
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		if cfg.ChatID != "999" {
			t.Errorf("ChatID = %q, want %q", cfg.ChatID, "999")
		}
	})
}

func TestLoad_TargetPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		override string
		want     string
	}{
		{name: "default when nothing set", want: DefaultTarget},
		{name: "BOT_COMMAND beats default", envValue: "mybot", want: "mybot"},
		{name: "override beats BOT_COMMAND", envValue: "mybot", override: "./other", want: "./other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearLauncherEnv(t)
			t.Setenv(EnvToken, "abc123")
			if tt.envValue != "" {
				t.Setenv(EnvTarget, tt.envValue)
			}

			cfg, err := Load(context.Background(), LoadOptions{TargetOverride: tt.override})
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if cfg.Target != tt.want {
				t.Errorf("Target = %q, want %q", cfg.Target, tt.want)
			}
		})
	}
}

func TestLoad_ForwardKeys(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv(EnvToken, "abc123")
	t.Setenv("AOE_API_BASE", "https://example.test/api")
	t.Setenv("CHECK_INTERVAL", "30")

	cfg, err := Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := map[string]string{
		"AOE_API_BASE":   "https://example.test/api",
		"CHECK_INTERVAL": "30",
	}
	if !reflect.DeepEqual(cfg.Forward, want) {
		t.Errorf("Forward = %v, want %v", cfg.Forward, want)
	}
}

func TestLoad_Deterministic(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv(EnvToken, "abc123")
	t.Setenv(EnvChatID, "999")
	t.Setenv("AOE_API_BASE", "https://example.test/api")

	first, err := Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("first Load() error: %v", err)
	}
	second, err := Load(context.Background(), LoadOptions{})
	if err != nil {
		t.Fatalf("second Load() error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Load() not deterministic: first %+v, second %+v", first, second)
	}
}

func TestLoad_CanceledContext(t *testing.T) {
	clearLauncherEnv(t)
	t.Setenv(EnvToken, "abc123")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Load(ctx, LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled in chain", err)
	}
}

func TestConfig_ChildEnv(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		want map[string]string
	}{
		{
			name: "token only",
			cfg:  &Config{Token: "abc123"},
			want: map[string]string{EnvToken: "abc123"},
		},
		{
			name: "token and chat id",
			cfg:  &Config{Token: "abc123", ChatID: "999"},
			want: map[string]string{EnvToken: "abc123", EnvChatID: "999"},
		},
		{
			name: "forwarded keys included",
			cfg: &Config{
				Token:   "abc123",
				Forward: map[string]string{"CHECK_INTERVAL": "30"},
			},
			want: map[string]string{EnvToken: "abc123", "CHECK_INTERVAL": "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.ChildEnv(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ChildEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}
