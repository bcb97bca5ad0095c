package render

import "github.com/iamfgo/iamf/internal/errcode"

// BinauralPort renders a planar loudspeaker or ambisonics signal to a
// stereo binaural pair. Its concrete HRTF/BRIR convolution is injected by
// the caller: original_source/code/dep_external/src/binaural/iamf2bear
// shells out to a C++ binaural renderer with no Go equivalent in this
// module's dependency pack, matching the same out-of-scope-native-math
// reasoning applied to codec decode.
type BinauralPort struct {
	RenderFunc func(inPlanar [][]float64, inOrder []Ch, outL, outR []float64, n int) error
}

// Render renders inPlanar (one buffer per inOrder entry) to a binaural
// pair. Returns Unimplemented if no RenderFunc was supplied.
func (p *BinauralPort) Render(inPlanar [][]float64, inOrder []Ch, outL, outR []float64, n int) error {
	if p.RenderFunc == nil {
		return errcode.New(errcode.Unimplemented, "render.BinauralPort.Render")
	}
	return p.RenderFunc(inPlanar, inOrder, outL, outR, n)
}
