// Package opus parses Opus codec-specific-bytes and exposes a Port whose
// decode step is injected by the caller: native CELT/SILK decode math is
// out of scope for this module.
package opus

import (
	"encoding/binary"

	"github.com/iamfgo/iamf/internal/errcode"
)

// Config is the parsed Opus codec-specific-bytes (an OpusHead-shaped
// record): version, channels, pre-skip, input sample rate, output gain
// (Q7.8 dB), and channel mapping family.
type Config struct {
	Version       uint8
	Channels      uint8
	PreSkip       uint16
	InputSampleHz uint32
	OutputGainQ7_8 int16
	MappingFamily uint8
	MappingTable  []byte // present iff MappingFamily != 0
}

// ParseConfig parses the fixed 11-byte Opus header plus an optional
// mapping table.
func ParseConfig(cspecBytes []byte) (Config, error) {
	if len(cspecBytes) < 11 {
		return Config{}, errcode.New(errcode.Truncated, "opus.ParseConfig")
	}
	cfg := Config{
		Version:        cspecBytes[0],
		Channels:       cspecBytes[1],
		PreSkip:        binary.BigEndian.Uint16(cspecBytes[2:4]),
		InputSampleHz:  binary.BigEndian.Uint32(cspecBytes[4:8]),
		OutputGainQ7_8: int16(binary.BigEndian.Uint16(cspecBytes[8:10])),
		MappingFamily:  cspecBytes[10],
	}
	if cfg.MappingFamily != 0 {
		cfg.MappingTable = append([]byte(nil), cspecBytes[11:]...)
	}
	return cfg, nil
}

// Port is the injected Opus decode port. Decode is supplied by the host
// application's native Opus library; this type only carries the parsed
// configuration and forwards calls.
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
		return 0, errcode.New(errcode.Unimplemented, "opus.Port.Decode")
	}
	return p.DecodeFunc(framesIn, outPlanar, frameSize)
}

func (p *Port) Reset() error { return nil }
func (p *Port) Close() error { return nil }

// SampleRate returns the rate parsed from the OpusHead codec-specific-bytes.
func (p *Port) SampleRate() uint32 { return p.Config.InputSampleHz }
