// Package codec defines the uniform codec adapter port every per-codec
// decoder implements. The adapters themselves live in the subpackages
// opus, aac, flac and pcm.
package codec

// Port is the interface a native codec decoder is consumed through. The
// core never implements Opus/AAC/FLAC decode math itself; it calls
// through this port.
type Port interface {
	// Init configures the port from a CodecConfig's decoder_specific_bytes.
	Init(cspecBytes []byte) error

	// Decode converts one frame's encoded bytes per coupled/uncoupled
	// substream into planar float samples in outPlanar, one slice per
	// channel of this substream, each sized frameSize (or less on a short
	// final frame). Coupled substreams emit the fixed (L, R) channel pair.
	Decode(framesIn [][]byte, outPlanar [][]float64, frameSize int) (int, error)

	// Reset discards internal decode state (used after a CodecError
	// triggers a re-initialise).
	Reset() error

	// Close releases any resources held by the underlying native decoder.
	Close() error

	// SampleRate returns the stream's actual decode sample rate, as parsed
	// from this codec's codec-specific-bytes by Init. Callers deriving
	// sample-rate-dependent filter coefficients (the LFE low-pass, for
	// instance) must use this rather than assume a fixed rate.
	SampleRate() uint32
}
