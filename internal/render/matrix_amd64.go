//go:build amd64 && !purego

package render

import "golang.org/x/sys/cpu"

// applyMatrixImpl is swapped for a 4-wide unrolled variant on AVX2-capable
// hosts. Both paths stay in pure Go: CELT's IMDCT package backs its AVX2
// path with real assembly kernels, but there is no equivalent
// hand-verified assembly available here, so the "fast path" is an
// unrolled loop rather than vector instructions — the dispatch pattern is
// kept, not CELT's code.
var applyMatrixImpl = applyMatrixGo

func init() {
	if cpu.X86.HasAVX2 {
		applyMatrixImpl = applyMatrixUnrolled
	}
}

func applyMatrix(weights [][]float64, in [][]float64, out [][]float64, n int) {
	applyMatrixImpl(weights, in, out, n)
}

func applyMatrixUnrolled(weights [][]float64, in [][]float64, out [][]float64, n int) {
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
			i := 0
			for ; i+4 <= n; i += 4 {
				dst[i] += src[i] * g
				dst[i+1] += src[i+1] * g
				dst[i+2] += src[i+2] * g
				dst[i+3] += src[i+3] * g
			}
			for ; i < n; i++ {
				dst[i] += src[i] * g
			}
		}
	}
}
