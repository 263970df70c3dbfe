package pindelcfg

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *Error
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     ConfigError("LG3_INPUT_ROOT is not set"),
			wantMsg: "LG3_INPUT_ROOT is not set",
		},
		{
			name:    "with cause",
			err:     newError(KindMetrics, "bad metrics file L1", ErrNoMedian),
			wantMsg: "bad metrics file L1: MEDIAN_INSERT_SIZE not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("run: %w", UsageError("expected 3 arguments"))
	kind, ok := KindOf(wrapped)
	if !ok || kind != KindUsage {
		t.Errorf("KindOf() = %v, %v, want usage, true", kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() on plain error should be false")
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d, want %d", got, ExitSuccess)
	}
	for _, err := range []error{
		UsageError("usage"),
		newError(KindResolution, "not found", nil),
		errors.New("other"),
	} {
		if got := ExitCode(err); got != ExitFailure {
			t.Errorf("ExitCode(%v) = %d, want %d", err, got, ExitFailure)
		}
	}
}

func TestKind_String(t *testing.T) {
	if got := KindResolution.String(); got != "resolution" {
		t.Errorf("String() = %q", got)
	}
	if got := Kind(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
