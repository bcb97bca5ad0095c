// Package pcm implements the raw linear-PCM codec adapter: the one codec
// port whose "decode" step is pure arithmetic rather than a call into a
// native decode library.
package pcm

import (
	"encoding/binary"

	"github.com/iamfgo/iamf/internal/errcode"
)

// Config is the parsed PCM codec-specific-bytes: flags(1) | sample_size(1)
// | sample_rate(4 BE).
type Config struct {
	LittleEndian bool
	SampleSize   int // 16, 24, or 32
	SampleRate   uint32
}

// ParseConfig parses the PCM codec-specific-bytes layout.
func ParseConfig(cspecBytes []byte) (Config, error) {
	if len(cspecBytes) < 6 {
		return Config{}, errcode.New(errcode.Truncated, "pcm.ParseConfig")
	}
	flags := cspecBytes[0]
	sampleSize := int(cspecBytes[1])
	switch sampleSize {
	case 16, 24, 32:
	default:
		return Config{}, errcode.New(errcode.InvalidValue, "pcm.ParseConfig")
	}
	sampleRate := binary.BigEndian.Uint32(cspecBytes[2:6])
	return Config{
		LittleEndian: flags&0x01 != 0,
		SampleSize:   sampleSize,
		SampleRate:   sampleRate,
	}, nil
}

// Adapter is the PCM codec.Port implementation. A coupled substream
// carries two interleaved channels (L, R) per sample; an uncoupled
// substream carries one.
type Adapter struct {
	cfg     Config
	coupled bool
}

// NewAdapter returns an uninitialized PCM adapter. Init must be called
// before Decode.
func NewAdapter(coupled bool) *Adapter {
	return &Adapter{coupled: coupled}
}

func (a *Adapter) Init(cspecBytes []byte) error {
	cfg, err := ParseConfig(cspecBytes)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func (a *Adapter) Reset() error { return nil }
func (a *Adapter) Close() error { return nil }

// SampleRate returns the rate parsed from the PCM codec-specific-bytes.
func (a *Adapter) SampleRate() uint32 { return a.cfg.SampleRate }

// Decode converts raw PCM bytes to float planar samples. For a coupled
// substream, outPlanar must have 2 channels (L, R); otherwise 1.
func (a *Adapter) Decode(framesIn [][]byte, outPlanar [][]float64, frameSize int) (int, error) {
	if len(framesIn) != 1 {
		return 0, errcode.New(errcode.BadArgument, "pcm.Adapter.Decode")
	}
	channels := 1
	if a.coupled {
		channels = 2
	}
	if len(outPlanar) != channels {
		return 0, errcode.New(errcode.BadArgument, "pcm.Adapter.Decode")
	}

	raw := framesIn[0]
	bytesPerSample := a.cfg.SampleSize / 8
	frameBytes := bytesPerSample * channels
	n := len(raw) / frameBytes
	if n > frameSize {
		n = frameSize
	}

	scale := float64(int64(1) << (uint(a.cfg.SampleSize) - 1))
	for i := 0; i < n; i++ {
		for ch := 0; ch < channels; ch++ {
			off := i*frameBytes + ch*bytesPerSample
			sample := a.readSample(raw[off : off+bytesPerSample])
			outPlanar[ch][i] = float64(sample) / scale
		}
	}
	return n, nil
}

// readSample decodes one sample of a.cfg.SampleSize bits, sign-extended,
// honoring a.cfg.LittleEndian.
func (a *Adapter) readSample(b []byte) int32 {
	var u uint32
	n := len(b)
	if a.cfg.LittleEndian {
		for i := n - 1; i >= 0; i-- {
			u = u<<8 | uint32(b[i])
		}
	} else {
		for i := 0; i < n; i++ {
			u = u<<8 | uint32(b[i])
		}
	}
	bits := uint(n * 8)
	shift := 32 - bits
	return int32(u<<shift) >> shift
}
