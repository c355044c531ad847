// Package kerr provides the error taxonomy surfaced by the stream runtime.
//
// Errors are grouped the same way this codebase's older encio package split
// its own io/caller errors: IOError for failures originating in a
// BackingStore (bad reader, short write, a file vanishing underneath us),
// and UnexpectedFixedContent and ValidationError for failures a schema
// author asked the runtime to detect (fixed-content mismatches, bounds
// checks, enum membership). Callers distinguish them with errors.As, not
// type switches.
package kerr

import (
	"errors"
	"fmt"
	"runtime"
)

// Sentinel errors. These are wrapped by IOError or returned directly.
var (
	// EndOfStream is returned when a read or write would cross size().
	EndOfStream = errors.New("end of stream")

	// UndecidedEndianness is returned when a schema-level switch on
	// endianness produced no match.
	UndecidedEndianness = errors.New("undecided endianness")

	// Arithmetic is returned by Mod when given a non-positive divisor.
	Arithmetic = errors.New("arithmetic error")

	// UnsupportedOperation is returned for operations that are well-formed
	// but not implemented for the given arguments, e.g. a rotate with a
	// group size other than 1, or a write attempted on a read-only store.
	UnsupportedOperation = errors.New("unsupported operation")

	// TooBig is returned when a length decoded from the stream itself
	// (a substream size, a remaining-bytes count) exceeds Config.TooBig,
	// before that length is used for allocation.
	TooBig = errors.New("length exceeds sanity limit")
)

// NewIOError returns an error wrapping err, annotated with the calling
// function's name unless message is given explicitly.
func NewIOError(err error, message string) error {
	if err == nil {
		err = errors.New("unknown io error")
	}
	if message == "" {
		message = "in " + GetCaller(1)
	}
	return IOError{Err: err, Message: message}
}

// IOError is returned when the backing store misbehaves: a read or write
// past size(), a closed file, or a wrapped os/unix syscall failure.
type IOError struct {
	Err     error
	Message string
}

func (e IOError) Error() string {
	if e.Message != "" {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap implements errors.Unwrap.
func (e IOError) Unwrap() error { return e.Err }

// UnexpectedFixedContent is returned by EnsureFixedContents when the bytes
// read do not match the schema's expected constant.
type UnexpectedFixedContent struct {
	Actual   []byte
	Expected []byte
	Pos      int64
	Path     string
}

func (e UnexpectedFixedContent) Error() string {
	return fmt.Sprintf("%s: at position %d, fixed content mismatch: got %x, expected %x", e.Path, e.Pos, e.Actual, e.Expected)
}

// ValidationKind tags the variant of a ValidationError.
type ValidationKind int

const (
	NotEqual ValidationKind = iota
	LessThan
	GreaterThan
	NotAnyOf
	NotInEnum
	ExprFailed
)

func (k ValidationKind) String() string {
	switch k {
	case NotEqual:
		return "not equal"
	case LessThan:
		return "less than minimum"
	case GreaterThan:
		return "greater than maximum"
	case NotAnyOf:
		return "not any of the allowed values"
	case NotInEnum:
		return "not a member of the enum"
	case ExprFailed:
		return "expression failed"
	default:
		return "unknown validation failure"
	}
}

// ValidationError is raised by generated code when a schema-declared
// constraint (==, <, >, in, enum membership, or an arbitrary expression)
// does not hold for a parsed value.
type ValidationError struct {
	Kind     ValidationKind
	Actual   interface{}
	Expected interface{}
	Pos      int64
	Path     string
}

func (e ValidationError) Error() string {
	if e.Expected != nil {
		return fmt.Sprintf("%s: at position %d, validation failed (%s): got %v, expected %v", e.Path, e.Pos, e.Kind, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%s: at position %d, validation failed (%s): got %v", e.Path, e.Pos, e.Kind, e.Actual)
}

// GetCaller returns the name of the calling function, skipping skip
// additional frames above the caller of GetCaller itself.
func GetCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "unknown function"
	}
	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
