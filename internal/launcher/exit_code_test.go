// SPDX-License-Identifier: MPL-2.0

package launcher

import (
	"errors"
	"testing"
)

func TestExitCode_IsValid(t *testing.T) {
	tests := []struct {
		code ExitCode
		want bool
	}{
		{0, true},
		{1, true},
		{126, true},
		{127, true},
		{255, true},
		{-1, false},
		{256, false},
	}

	for _, tt := range tests {
		valid, errs := tt.code.IsValid()
		if valid != tt.want {
			t.Errorf("ExitCode(%d).IsValid() = %v, want %v", tt.code, valid, tt.want)
		}
		if !tt.want {
			if len(errs) != 1 {
				t.Fatalf("ExitCode(%d).IsValid() errs = %v, want one error", tt.code, errs)
			}
			if !errors.Is(errs[0], ErrInvalidExitCode) {
				t.Errorf("ExitCode(%d) validation error = %v, want ErrInvalidExitCode", tt.code, errs[0])
			}
		}
	}
}

func TestExitCode_IsSuccess(t *testing.T) {
	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitConfigFailure.IsSuccess() {
		t.Error("ExitConfigFailure.IsSuccess() = true, want false")
	}
}

func TestInvalidExitCodeError_Message(t *testing.T) {
	err := &InvalidExitCodeError{Value: 300}
	want := "invalid exit code 300 (must be in range 0-255)"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
