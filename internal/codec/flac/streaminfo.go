// Package flac implements the FLAC codec adapter: STREAMINFO parsing plus
// a concrete decode path backed by github.com/mewkiz/flac/frame, the one
// codec in this module with a self-contained, fetchable Go decoder.
package flac

import "github.com/iamfgo/iamf/internal/errcode"

// StreamInfo is the fixed 34-byte fLaC METADATA_BLOCK_STREAMINFO.
type StreamInfo struct {
	MinBlockSize  uint16
	MaxBlockSize  uint16
	MinFrameSize  uint32
	MaxFrameSize  uint32
	SampleRate    uint32
	Channels      uint8 // actual channel count, not the on-wire value-1
	BitsPerSample uint8 // actual bit depth, not the on-wire value-1
	TotalSamples  uint64
	MD5           [16]byte
}

// ParseStreamInfo parses the 34-byte STREAMINFO block carried as a
// CodecConfig's decoder_specific_bytes for the fLaC four-cc.
func ParseStreamInfo(b []byte) (StreamInfo, error) {
	if len(b) < 34 {
		return StreamInfo{}, errcode.New(errcode.Truncated, "flac.ParseStreamInfo")
	}
	br := &bitCursor{b: b}

	minBlock, _ := br.bits(16)
	maxBlock, _ := br.bits(16)
	minFrame, _ := br.bits(24)
	maxFrame, _ := br.bits(24)
	sampleRate, _ := br.bits(20)
	channelsMinus1, _ := br.bits(3)
	bpsMinus1, _ := br.bits(5)
	totalSamples, err := br.bits64(36)
	if err != nil {
		return StreamInfo{}, err
	}
	var md5 [16]byte
	copy(md5[:], b[br.pos/8:br.pos/8+16])

	return StreamInfo{
		MinBlockSize:  uint16(minBlock),
		MaxBlockSize:  uint16(maxBlock),
		MinFrameSize:  uint32(minFrame),
		MaxFrameSize:  uint32(maxFrame),
		SampleRate:    uint32(sampleRate),
		Channels:      uint8(channelsMinus1) + 1,
		BitsPerSample: uint8(bpsMinus1) + 1,
		TotalSamples:  totalSamples,
		MD5:           md5,
	}, nil
}

type bitCursor struct {
	b   []byte
	pos int
}

func (c *bitCursor) bits(n int) (uint32, error) {
	v, err := c.bits64(n)
	return uint32(v), err
}

func (c *bitCursor) bits64(n int) (uint64, error) {
	var v uint64
	for i := 0; i < n; i++ {
		byteIdx := c.pos / 8
		if byteIdx >= len(c.b) {
			return 0, errcode.New(errcode.Truncated, "flac.bitCursor.bits")
		}
		bitIdx := 7 - uint(c.pos%8)
		bit := (c.b[byteIdx] >> bitIdx) & 1
		v = v<<1 | uint64(bit)
		c.pos++
	}
	return v, nil
}
