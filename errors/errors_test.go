package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name:     "kind only",
			err:      &Error{Kind: KindInternal},
			contains: []string{"[internal]"},
		},
		{
			name:     "kind and detail",
			err:      NotSupportedf("rank is immutable: old=%d, new=%d", 2, 3),
			contains: []string{"[not_supported]", "rank is immutable", "old=2", "new=3"},
		},
		{
			name:     "with cause",
			err:      Wrap(KindInvalidArgument, errors.New("boom"), "bad dim order"),
			contains: []string{"[invalid_argument]", "bad dim order", "caused by: boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := NotSupportedf("attempted to resize a static tensor")

	if !errors.Is(err, ErrNotSupported) {
		t.Error("expected match against ErrNotSupported")
	}
	if errors.Is(err, ErrInternal) {
		t.Error("unexpected match against ErrInternal")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Error("unexpected match against ErrInvalidArgument")
	}
}

func TestError_IsThroughWrapping(t *testing.T) {
	inner := Internalf("strides storage is nil")
	wrapped := fmt.Errorf("resize failed: %w", inner)

	if !errors.Is(wrapped, ErrInternal) {
		t.Error("expected kind match through fmt.Errorf wrapping")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(KindInternal, cause, "")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if errors.Unwrap(err) != cause {
		t.Error("Unwrap() did not return the cause")
	}
}

func TestKindOf(t *testing.T) {
	if got := KindOf(NotSupportedf("x")); got != KindNotSupported {
		t.Errorf("KindOf() = %q, want %q", got, KindNotSupported)
	}
	if got := KindOf(errors.New("plain")); got != Kind("") {
		t.Errorf("KindOf(plain) = %q, want empty", got)
	}
}
