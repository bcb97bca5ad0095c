package flac

import (
	"bytes"

	"github.com/mewkiz/flac/frame"

	"github.com/iamfgo/iamf/internal/errcode"
)

// Adapter is the FLAC codec.Port implementation. Unlike opus/aac, its
// Decode is not injected: github.com/mewkiz/flac/frame parses and decodes
// a FLAC frame's subframes directly into integer samples.
type Adapter struct {
	info StreamInfo
}

// NewAdapter returns an uninitialized FLAC adapter. Init must be called
// before Decode.
func NewAdapter() *Adapter { return &Adapter{} }

func (a *Adapter) Init(cspecBytes []byte) error {
	info, err := ParseStreamInfo(cspecBytes)
	if err != nil {
		return err
	}
	a.info = info
	return nil
}

func (a *Adapter) Reset() error { return nil }
func (a *Adapter) Close() error { return nil }

// SampleRate returns the rate parsed from the STREAMINFO metadata block.
func (a *Adapter) SampleRate() uint32 { return a.info.SampleRate }

// Decode parses one encoded FLAC frame and converts its subframes to
// float planar samples. framesIn must hold exactly one frame's bytes.
func (a *Adapter) Decode(framesIn [][]byte, outPlanar [][]float64, frameSize int) (int, error) {
	if len(framesIn) != 1 {
		return 0, errcode.New(errcode.BadArgument, "flac.Adapter.Decode")
	}
	if len(outPlanar) != int(a.info.Channels) {
		return 0, errcode.New(errcode.BadArgument, "flac.Adapter.Decode")
	}

	fr, err := frame.Parse(bytes.NewReader(framesIn[0]))
	if err != nil {
		return 0, errcode.Wrap(errcode.CodecError, "flac.Adapter.Decode", err)
	}
	if len(fr.Subframes) != int(a.info.Channels) {
		return 0, errcode.New(errcode.CodecError, "flac.Adapter.Decode")
	}

	bps := int(a.info.BitsPerSample)
	scale := float64(int64(1) << uint(bps-1))
	n := int(fr.SampleCount)
	if n > frameSize {
		n = frameSize
	}

	for ch, sub := range fr.Subframes {
		for i := 0; i < n && i < len(sub.Samples); i++ {
			outPlanar[ch][i] = float64(sub.Samples[i]) / scale
		}
	}
	return n, nil
}
