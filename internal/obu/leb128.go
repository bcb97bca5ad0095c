package obu

import "github.com/iamfgo/iamf/internal/errcode"

// maxLeb128Bytes bounds leb128 decoding: an encoding longer than 8 bytes
// (8 bytes that all carry the continuation bit) is malformed, not merely
// large.
const maxLeb128Bytes = 8

// ReadLeb128 decodes a little-endian base-128 variable-length integer from
// the start of b, for use by descriptor/parameter payload parsers that need
// the same leb128 id/length encoding the OBU header itself uses.
func ReadLeb128(b []byte) (value uint64, consumed int, err error) {
	return readLeb128(b)
}

// readLeb128 decodes a little-endian base-128 variable-length integer
// starting at b[0]. It returns the decoded value, the number of bytes
// consumed, and an error if the span is too short or the encoding overflows.
func readLeb128(b []byte) (value uint64, consumed int, err error) {
	var shift uint
	for i := 0; i < maxLeb128Bytes; i++ {
		if i >= len(b) {
			return 0, 0, errcode.New(errcode.Truncated, "obu.readLeb128")
		}
		byt := b[i]
		chunk := uint64(byt & 0x7f)
		if shift >= 64 || (shift == 63 && chunk > 1) {
			return 0, 0, errcode.New(errcode.Malformed, "obu.readLeb128")
		}
		value |= chunk << shift
		if byt&0x80 == 0 {
			return value, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, errcode.New(errcode.Malformed, "obu.readLeb128")
}
