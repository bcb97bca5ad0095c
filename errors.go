package iamf

import "github.com/iamfgo/iamf/internal/errcode"

// Code re-exports the stable, numeric error taxonomy shared across every
// component boundary, so callers embedding this decoder need only import
// the top-level package.
type Code = errcode.Code

// Error codes exposed to callers; numeric values are stable across
// releases.
const (
	Ok                 = errcode.Ok
	BadArgument        = errcode.BadArgument
	Unknown            = errcode.Unknown
	Internal           = errcode.Internal
	InvalidPacket      = errcode.InvalidPacket
	InvalidState       = errcode.InvalidState
	Unimplemented      = errcode.Unimplemented
	AllocationFailure  = errcode.AllocationFailure
	Truncated          = errcode.Truncated
	Malformed          = errcode.Malformed
	InvalidValue       = errcode.InvalidValue
	UnsupportedProfile = errcode.UnsupportedProfile
	CodecError         = errcode.CodecError
	NeedMoreData       = errcode.NeedMoreData
	FrameTooLarge      = errcode.FrameTooLarge
	NoParameter        = errcode.NoParameter
)

// CodeOf extracts the stable Code from err, or Unknown if err was not
// raised by this module.
func CodeOf(err error) Code { return errcode.CodeOf(err) }
