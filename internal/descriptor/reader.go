package descriptor

import (
	"encoding/binary"

	"github.com/iamfgo/iamf/internal/errcode"
	"github.com/iamfgo/iamf/internal/obu"
)

// byteReader is a small cursor over a descriptor OBU payload. Every method
// returns errcode.Truncated when the span is exhausted and errcode.Malformed
// for a null-terminated string with no terminator.
type byteReader struct {
	b   []byte
	pos int
}

func newByteReader(b []byte) *byteReader { return &byteReader{b: b} }

func (r *byteReader) remaining() []byte { return r.b[r.pos:] }

func (r *byteReader) u8() (uint8, error) {
	if r.pos >= len(r.b) {
		return 0, errcode.New(errcode.Truncated, "descriptor.byteReader.u8")
	}
	v := r.b[r.pos]
	r.pos++
	return v, nil
}

func (r *byteReader) u16be() (uint16, error) {
	if r.pos+2 > len(r.b) {
		return 0, errcode.New(errcode.Truncated, "descriptor.byteReader.u16be")
	}
	v := binary.BigEndian.Uint16(r.b[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *byteReader) u32be() (uint32, error) {
	if r.pos+4 > len(r.b) {
		return 0, errcode.New(errcode.Truncated, "descriptor.byteReader.u32be")
	}
	v := binary.BigEndian.Uint32(r.b[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *byteReader) bytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.b) {
		return nil, errcode.New(errcode.Truncated, "descriptor.byteReader.bytes")
	}
	v := r.b[r.pos : r.pos+n]
	r.pos += n
	return v, nil
}

func (r *byteReader) leb128() (uint64, error) {
	v, n, err := obu.ReadLeb128(r.b[r.pos:])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// cstring reads a null-terminated UTF-8 label; an unterminated string is
// Malformed.
func (r *byteReader) cstring() (string, error) {
	start := r.pos
	for r.pos < len(r.b) {
		if r.b[r.pos] == 0 {
			s := string(r.b[start:r.pos])
			r.pos++
			return s, nil
		}
		r.pos++
	}
	return "", errcode.New(errcode.Malformed, "descriptor.byteReader.cstring")
}

func (r *byteReader) atEnd() bool { return r.pos >= len(r.b) }
