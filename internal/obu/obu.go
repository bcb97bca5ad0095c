// Package obu implements IAMF Open Bitstream Unit framing: a stateless
// split of a byte span into (type, flags, payload) records with leb128
// length prefixes, optional trim and extension fields.
package obu

import "github.com/iamfgo/iamf/internal/errcode"

// Type identifies the kind of OBU payload, decoded from the top 5 bits of
// the header byte. The numeric values mirror the IAMF OBU type registry.
type Type uint8

const (
	TypeCodecConfig     Type = 0
	TypeAudioElement     Type = 1
	TypeMixPresentation  Type = 2
	TypeParameterBlock   Type = 3
	TypeTemporalDelimiter Type = 4
	TypeAudioFrame       Type = 5
	TypeAudioFrameID0    Type = 6 // implicit substream id 0-17 encoded in type
	TypeIAMFVersion      Type = 31
)

// OBU is one decoded Open Bitstream Unit: a header plus the payload span
// (aliasing the caller's buffer, not copied) and any trim/extension fields.
type OBU struct {
	Type      Type
	Redundant bool
	Payload   []byte

	HasTrim    bool
	TrimStart  uint64
	TrimEnd    uint64

	HasExtension bool
	Extension    []byte

	// Size is the total number of bytes this OBU occupied in the input,
	// header included — callers advance their cursor by this amount.
	Size int
}

// Read splits the leading OBU out of b. It returns the decoded OBU, whose
// Size field is the number of bytes consumed. Read is stateless: it does not validate that
// Type is a recognised value, and never mutates or retains b beyond the
// returned Payload/Extension slices (which alias it).
func Read(b []byte) (OBU, error) {
	if len(b) < 1 {
		return OBU{}, errcode.New(errcode.Truncated, "obu.Read")
	}

	header := b[0]
	o := OBU{
		Type:      Type(header >> 3),
		Redundant: header&0x04 != 0,
	}
	trimming := header&0x02 != 0
	extension := header&0x01 != 0

	cursor := 1
	size, n, err := readLeb128(b[cursor:])
	if err != nil {
		return OBU{}, err
	}
	cursor += n
	payloadSize := int(size)
	if payloadSize < 0 || uint64(payloadSize) != size {
		return OBU{}, errcode.New(errcode.Malformed, "obu.Read")
	}

	declaredEnd := cursor + payloadSize
	if declaredEnd < cursor || declaredEnd > len(b) {
		return OBU{}, errcode.New(errcode.Truncated, "obu.Read")
	}

	if trimming {
		o.HasTrim = true
		// Wire order is trim_end before trim_start — preserve this in any
		// round-trip encoder.
		trimEnd, n, err := readLeb128(b[cursor:declaredEnd])
		if err != nil {
			return OBU{}, err
		}
		cursor += n
		trimStart, n, err := readLeb128(b[cursor:declaredEnd])
		if err != nil {
			return OBU{}, err
		}
		cursor += n
		o.TrimEnd = trimEnd
		o.TrimStart = trimStart
	}

	if extension {
		o.HasExtension = true
		extSize, n, err := readLeb128(b[cursor:declaredEnd])
		if err != nil {
			return OBU{}, err
		}
		cursor += n
		extEnd := cursor + int(extSize)
		if extEnd < cursor || extEnd > declaredEnd {
			return OBU{}, errcode.New(errcode.Truncated, "obu.Read")
		}
		o.Extension = b[cursor:extEnd]
		cursor = extEnd
	}

	if cursor > declaredEnd {
		return OBU{}, errcode.New(errcode.Malformed, "obu.Read")
	}
	o.Payload = b[cursor:declaredEnd]
	o.Size = declaredEnd

	return o, nil
}

// ReadAll splits every OBU out of b in order. It stops (returning the OBUs
// decoded so far, plus the error) at the first framing error, so a caller
// that got Truncated can append more bytes and resume from the start of b.
func ReadAll(b []byte) ([]OBU, error) {
	var out []OBU
	for len(b) > 0 {
		o, err := Read(b)
		if err != nil {
			return out, err
		}
		out = append(out, o)
		b = b[o.Size:]
	}
	return out, nil
}
