// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %q for flag %s", "12Q", "-to"),
			expected: `invalid value "12Q" for flag -to`,
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	var err error = ValidationError{Field: "from", Message: "must be at least 2"}
	if want := `validation error for "from": must be at least 2`; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	var validationErr ValidationError
	if !errors.As(fmt.Errorf("parse: %w", err), &validationErr) || validationErr.Field != "from" {
		t.Error("errors.As should find ValidationError through wrapping")
	}
}

func TestSinkError(t *testing.T) {
	t.Parallel()
	err := SinkError{Path: "zeros_fast.txt", Op: "open", Cause: os.ErrPermission}

	if want := "open zeros_fast.txt: permission denied"; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is should find the I/O cause")
	}
	if err.Unwrap() != os.ErrPermission {
		t.Error("Unwrap should return the original cause")
	}
}

func TestRunError(t *testing.T) {
	t.Parallel()
	err := RunError{Engine: "Fast", Cause: context.Canceled}
	if want := "Fast: context canceled"; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, context.Canceled) {
		t.Error("errors.Is should find context.Canceled in the chain")
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{Reference: "fast", Other: "reference", Detail: "a(Y) 3 != 4"}
	if !strings.Contains(err.Error(), `"fast" and "reference"`) || !strings.Contains(err.Error(), "3 != 4") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	var err error = TimeoutError{Operation: "sequence run", Limit: 30 * time.Second}
	if want := `operation "sequence run" timed out after 30s`; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("TimeoutError should match context.DeadlineExceeded")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		checkIs     error
		expectNil   bool
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("file not found"),
			format:      "failed to open sequence log",
			expectedMsg: "failed to open sequence log: file not found",
		},
		{
			name:        "preserves error chain",
			original:    context.DeadlineExceeded,
			format:      "run timed out",
			expectedMsg: "run timed out: context deadline exceeded",
			checkIs:     context.DeadlineExceeded,
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("short write"),
			format:      "chunk %d ending at %d",
			args:        []any{3, 3000},
			expectedMsg: "chunk 3 ending at 3000: short write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "run stopped"), true},
		{"regular error", errors.New("some error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", fmt.Errorf("wrap: %w", ValidationError{Field: "to"}), ExitErrorConfig},
		{"sink", RunError{Engine: "fast", Cause: SinkError{Op: "write", Cause: os.ErrClosed}}, ExitErrorSink},
		{"mismatch", MismatchError{}, ExitErrorMismatch},
		{"deadline", RunError{Engine: "fast", Cause: context.DeadlineExceeded}, ExitErrorTimeout},
		{"timeout type", TimeoutError{}, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleRunError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		contains string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"sink", SinkError{Path: "z.txt", Op: "write", Cause: errors.New("no space")}, ExitErrorSink, "z.txt"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleRunError(tt.err, 1500*time.Millisecond, &buf, nil)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q should contain %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":       ExitSuccess,
		"ExitErrorGeneric":  ExitErrorGeneric,
		"ExitErrorTimeout":  ExitErrorTimeout,
		"ExitErrorMismatch": ExitErrorMismatch,
		"ExitErrorConfig":   ExitErrorConfig,
		"ExitErrorSink":     ExitErrorSink,
		"ExitErrorCanceled": ExitErrorCanceled,
	}

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess should be 0, got %d", ExitSuccess)
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
