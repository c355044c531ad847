package kerr_test

import (
	"errors"
	"testing"

	"github.com/stewi1014/kstream/kerr"
)

func TestIOErrorUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := kerr.NewIOError(cause, "reading block")

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) is false, want true")
	}

	var ioErr kerr.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("errors.As failed to find IOError")
	}
	if ioErr.Message != "reading block" {
		t.Errorf("message = %q, want %q", ioErr.Message, "reading block")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := kerr.ValidationError{
		Kind:     kerr.NotEqual,
		Actual:   5,
		Expected: 6,
		Pos:      12,
		Path:     "my_struct.field",
	}

	want := "my_struct.field: at position 12, validation failed (not equal): got 5, expected 6"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestJoinClose(t *testing.T) {
	flushErr := errors.New("flush failed")
	closeErr := errors.New("close failed")

	if err := kerr.JoinClose(nil, flushErr); err != flushErr {
		t.Errorf("JoinClose(nil, flushErr) = %v, want flushErr", err)
	}
	if err := kerr.JoinClose(closeErr, nil); err != closeErr {
		t.Errorf("JoinClose(closeErr, nil) = %v, want closeErr", err)
	}

	err := kerr.JoinClose(closeErr, flushErr)
	var ce kerr.CloseError
	if !errors.As(err, &ce) {
		t.Fatalf("JoinClose(closeErr, flushErr) did not produce a CloseError")
	}
	if ce.Err != closeErr || ce.Suppressed != flushErr {
		t.Errorf("CloseError = %+v, want Err=closeErr Suppressed=flushErr", ce)
	}
}
