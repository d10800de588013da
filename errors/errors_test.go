package errors

import (
	"errors"
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
			name: "full error",
			err: &Error{
				Kind:   KindSizeMismatch,
				Axis:   AxisRow,
				Index:  2,
				Want:   3,
				Got:    5,
				Detail: "rows must have uniform length",
			},
			contains: []string{"size_mismatch", "row axis", "index 2", "want 3", "got 5", "uniform length"},
		},
		{
			name:     "minimal error",
			err:      &Error{Kind: KindOutOfRange, Index: -1, Want: -1, Got: -1},
			contains: []string{"out_of_range"},
		},
		{
			name: "error with cause",
			err: &Error{
				Kind:   KindConstructionFailed,
				Index:  1,
				Want:   -1,
				Got:    -1,
				Cause:  errors.New("underlying error"),
				Detail: "factory failed",
			},
			contains: []string{"construction_failed", "index 1", "factory failed", "caused by", "underlying error"},
		},
		{
			name:     "limit only",
			err:      CapacityExceeded(AxisColumn, 8),
			contains: []string{"capacity_exceeded", "column axis", "limit 8"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := ConstructionFailed(0, cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
}

func TestError_Is_MatchesByKind(t *testing.T) {
	a := CapacityExceeded(AxisRow, 2)
	b := CapacityExceeded(AxisColumn, 99)

	if !errors.Is(a, b) {
		t.Error("errors with the same kind should match")
	}

	c := SizeMismatch(AxisRow, 1, 2)
	if errors.Is(a, c) {
		t.Error("errors with different kinds should not match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("disk full")
	err := New(KindStorage).
		Detail("append %s", "cell record").
		Cause(cause).
		Build()

	if err.Kind != KindStorage {
		t.Errorf("kind = %q, want %q", err.Kind, KindStorage)
	}
	if err.Detail != "append cell record" {
		t.Errorf("detail = %q", err.Detail)
	}
	if err.Cause != cause {
		t.Error("cause not set")
	}
	if err.Index != -1 || err.Want != -1 || err.Got != -1 {
		t.Error("unset numeric fields should default to -1")
	}
}

func TestIsKind(t *testing.T) {
	inner := SizeMismatch(AxisRow, 2, 3)
	outer := Wrap(KindInvalidData, inner, "while loading snapshot")

	if !IsKind(outer, KindInvalidData) {
		t.Error("should match outer kind")
	}
	if !IsKind(outer, KindSizeMismatch) {
		t.Error("should match wrapped kind")
	}
	if IsKind(outer, KindClosed) {
		t.Error("should not match absent kind")
	}
	if IsKind(nil, KindClosed) {
		t.Error("nil error never matches")
	}
}
