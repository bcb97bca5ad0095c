// Package aac parses MPEG-4 AudioSpecificConfig codec-specific-bytes and
// exposes a Port whose decode step is injected by the caller: native
// AAC-LC decode math is out of scope for this module.
package aac

import "github.com/iamfgo/iamf/internal/errcode"

// sampleRates mirrors the 13 explicit MPEG-4 sampling-frequency-index
// entries; index 15 signals an explicit 24-bit rate follows in the
// bitstream, and 13/14 are reserved.
var sampleRates = [13]uint32{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000, 7350,
}

const sampleRateIndexExplicit = 0x0f

// Config is the subset of AudioSpecificConfig this port needs: the object
// type, sample rate, and channel configuration that determine frame shape.
type Config struct {
	ObjectType       uint8
	SampleRate       uint32
	ChannelConfig    uint8
}

type bitReader struct {
	b   []byte
	pos int // bit position
}

func (r *bitReader) bits(n int) (uint32, error) {
	var v uint32
	for i := 0; i < n; i++ {
		byteIdx := r.pos / 8
		if byteIdx >= len(r.b) {
			return 0, errcode.New(errcode.Truncated, "aac.bitReader.bits")
		}
		bitIdx := 7 - uint(r.pos%8)
		bit := (r.b[byteIdx] >> bitIdx) & 1
		v = v<<1 | uint32(bit)
		r.pos++
	}
	return v, nil
}

// ParseConfig parses the leading fields of an AudioSpecificConfig: a 5-bit
// (or 11-bit extended) object type, a 4-bit (or 24-bit explicit) sampling
// frequency index, and a 4-bit channel configuration.
func ParseConfig(cspecBytes []byte) (Config, error) {
	r := &bitReader{b: cspecBytes}

	objType, err := r.bits(5)
	if err != nil {
		return Config{}, err
	}
	if objType == 31 {
		ext, err := r.bits(6)
		if err != nil {
			return Config{}, err
		}
		objType = 32 + ext
	}

	srIndex, err := r.bits(4)
	if err != nil {
		return Config{}, err
	}
	var sampleRate uint32
	if srIndex == sampleRateIndexExplicit {
		sampleRate, err = r.bits(24)
		if err != nil {
			return Config{}, err
		}
	} else if int(srIndex) < len(sampleRates) {
		sampleRate = sampleRates[srIndex]
	} else {
		return Config{}, errcode.New(errcode.InvalidValue, "aac.ParseConfig")
	}

	chanConfig, err := r.bits(4)
	if err != nil {
		return Config{}, err
	}

	return Config{
		ObjectType:    uint8(objType),
		SampleRate:    sampleRate,
		ChannelConfig: uint8(chanConfig),
	}, nil
}

// Port is the injected AAC-LC decode port; see opus.Port for the same
// injection shape.
type Port struct {
	Config     Config
	DecodeFunc func(framesIn [][]byte, outPlanar [][]float64, frameSize int) (int, error)
}

func (p *Port) Init(cspecBytes []byte) error {
	cfg, err := ParseConfig(cspecBytes)
	if err != nil {
		return err
	}
	p.Config = cfg
	return nil
}

func (p *Port) Decode(framesIn [][]byte, outPlanar [][]float64, frameSize int) (int, error) {
	if p.DecodeFunc == nil {
		return 0, errcode.New(errcode.Unimplemented, "aac.Port.Decode")
	}
	return p.DecodeFunc(framesIn, outPlanar, frameSize)
}

func (p *Port) Reset() error { return nil }
func (p *Port) Close() error { return nil }

// SampleRate returns the rate parsed from the AudioSpecificConfig bytes.
func (p *Port) SampleRate() uint32 { return p.Config.SampleRate }
