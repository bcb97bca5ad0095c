package render

// Matrix is a static loudspeaker-to-loudspeaker mixing matrix: Weights[o]
// gives, for output channel o, the per-input-channel gain to sum.
type Matrix struct {
	InChannels  []Ch
	OutChannels []Ch
	Weights     [][]float64 // Weights[o][i]
}

// IdentityMatrix returns a pass-through matrix when in and out name the
// same channels in the same order (the common case: decode layer already
// matches the output layout).
func IdentityMatrix(order []Ch) Matrix {
	n := len(order)
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		w[i][i] = 1
	}
	return Matrix{InChannels: order, OutChannels: order, Weights: w}
}

// Apply renders in (one []float64 buffer per m.InChannels entry, all of
// length n) into out (one buffer per m.OutChannels entry, pre-allocated
// with length >= n). The per-sample inner loop is dispatched to an
// architecture-specific implementation where one is available.
func (m Matrix) Apply(in [][]float64, out [][]float64, n int) {
	applyMatrix(m.Weights, in, out, n)
}

func applyMatrixGo(weights [][]float64, in [][]float64, out [][]float64, n int) {
	for o, row := range weights {
		dst := out[o]
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
		for ch, g := range row {
			if g == 0 {
				continue
			}
			src := in[ch]
			for i := 0; i < n; i++ {
				dst[i] += src[i] * g
			}
		}
	}
}
