//go:build !amd64 || purego

package render

func applyMatrix(weights [][]float64, in [][]float64, out [][]float64, n int) {
	applyMatrixGo(weights, in, out, n)
}
