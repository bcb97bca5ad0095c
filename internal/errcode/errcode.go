// Package errcode defines the stable error taxonomy exposed across the
// decoder's component boundaries.
package errcode

import (
	"errors"
	"fmt"
)

// Code is a stable numeric error code. Values never change across releases;
// new codes are appended, never renumbered.
type Code int

const (
	Ok Code = iota
	BadArgument
	Unknown
	Internal
	InvalidPacket
	InvalidState
	Unimplemented
	AllocationFailure

	// Truncated and Malformed are raised by OBU framing. Truncated is
	// transient: the caller can feed more bytes and retry.
	Truncated
	Malformed

	// InvalidValue is raised by descriptor parsers for out-of-range
	// enumerated fields.
	InvalidValue

	// UnsupportedProfile is raised when a stream declares a profile the
	// decoder does not implement.
	UnsupportedProfile

	// CodecError is propagated from a codec adapter; the frame is dropped
	// and its output is zero-filled.
	CodecError

	// NeedMoreData is not a failure; it means a pull arrived before enough
	// frames were fed.
	NeedMoreData

	// FrameTooLarge is raised when fed frame bytes exceed the declared
	// frame size.
	FrameTooLarge

	// NoParameter is raised by value_at when no segment has ever been
	// appended for a parameter id.
	NoParameter
)

func (c Code) String() string {
	switch c {
	case Ok:
		return "Ok"
	case BadArgument:
		return "BadArgument"
	case Unknown:
		return "Unknown"
	case Internal:
		return "Internal"
	case InvalidPacket:
		return "InvalidPacket"
	case InvalidState:
		return "InvalidState"
	case Unimplemented:
		return "Unimplemented"
	case AllocationFailure:
		return "AllocationFailure"
	case Truncated:
		return "Truncated"
	case Malformed:
		return "Malformed"
	case InvalidValue:
		return "InvalidValue"
	case UnsupportedProfile:
		return "UnsupportedProfile"
	case CodecError:
		return "CodecError"
	case NeedMoreData:
		return "NeedMoreData"
	case FrameTooLarge:
		return "FrameTooLarge"
	case NoParameter:
		return "NoParameter"
	default:
		return "Unknown"
	}
}

// Error wraps a Code with the operation that raised it and, optionally, an
// underlying cause. It satisfies the standard errors.Is/As protocol via
// Unwrap.
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("iamf: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("iamf: %s: %s", e.Op, e.Code)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error for op with no wrapped cause.
func New(code Code, op string) *Error {
	return &Error{Code: code, Op: op}
}

// Wrap builds an *Error for op around an existing cause.
func Wrap(code Code, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// CodeOf extracts the Code from err if it (or something it wraps) is an
// *Error; returns Ok for a nil err and Unknown otherwise.
func CodeOf(err error) Code {
	var e *Error
	if err == nil {
		return Ok
	}
	if errors.As(err, &e) {
		return e.Code
	}
	return Unknown
}
