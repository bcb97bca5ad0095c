package render

import (
	"fmt"
	"math"
)

// speakerDirections gives each named loudspeaker position's nominal
// azimuth (degrees, positive = left of center, matching ITU-R BS.2051's
// convention) and elevation (degrees, positive = up), used to sample the
// ambisonic sound field an HOAMatrix decodes. LFE carries no directional
// program content in an ambisonic scene and is intentionally absent: its
// row in an HOAMatrix is left all-zero.
var speakerDirections = map[Ch][2]float64{
	ChL:   {30, 0},
	ChR:   {-30, 0},
	ChC:   {0, 0},
	ChSL:  {110, 0},
	ChSR:  {-110, 0},
	ChBL:  {135, 0},
	ChBR:  {-135, 0},
	ChHL:  {110, 45},
	ChHR:  {-110, 45},
	ChHFL: {45, 35},
	ChHFR: {-45, 35},
	ChHBL: {135, 35},
	ChHBR: {-135, 35},
}

// maxSupportedACN is the highest ACN index this decoder's basis functions
// cover: orders 0 and 1, ACN 0-3 (W, Y, Z, X).
const maxSupportedACN = 3

// AmbisonicsBasis evaluates the real, SN3D-normalized spherical-harmonic
// basis function for ambisonic channel acn at the direction given by
// azimuthDeg/elevationDeg. Only orders 0-1 (ACN 0-3, i.e. W/Y/Z/X) are
// implemented; higher-order channels decode as silence (basis 0), a
// documented scope limit rather than an attempt at the full recursive
// SN3D family.
func AmbisonicsBasis(acn int, azimuthDeg, elevationDeg float64) float64 {
	az := azimuthDeg * math.Pi / 180
	el := elevationDeg * math.Pi / 180
	switch acn {
	case 0: // W
		return 1
	case 1: // Y
		return math.Sin(az) * math.Cos(el)
	case 2: // Z
		return math.Sin(el)
	case 3: // X
		return math.Cos(az) * math.Cos(el)
	default:
		return 0
	}
}

// HOAMatrix builds a basic sampling ambisonic decoder: one row per output
// loudspeaker, one column per transmitted ACN-ordered ambisonic channel
// (§4.7 H2M). Each row is the basis function evaluated at that
// loudspeaker's nominal direction, normalized by the count of directional
// (non-LFE) speakers so a W-only (zeroth order) signal's per-speaker gains
// sum to unity across the layout. numACN channels beyond maxSupportedACN are
// carried as all-zero columns rather than rejected, so a higher-order
// stream still renders its first-order content.
func HOAMatrix(numACN int, order []Ch) Matrix {
	directed := 0
	for _, ch := range order {
		if _, ok := speakerDirections[ch]; ok {
			directed++
		}
	}
	if directed == 0 {
		directed = 1
	}
	norm := 1 / float64(directed)

	inChannels := make([]Ch, numACN)
	for i := range inChannels {
		inChannels[i] = Ch(fmt.Sprintf("ACN%d", i))
	}

	weights := make([][]float64, len(order))
	for o, ch := range order {
		row := make([]float64, numACN)
		dir, ok := speakerDirections[ch]
		if ok {
			for acn := 0; acn < numACN && acn < maxSupportedACN+1; acn++ {
				row[acn] = AmbisonicsBasis(acn, dir[0], dir[1]) * norm
			}
		}
		weights[o] = row
	}
	return Matrix{InChannels: inChannels, OutChannels: order, Weights: weights}
}

// ReorderToACN applies an AmbisonicsConfig's transmitted-channel-to-ACN
// mapping, producing ACN-indexed buffers from the decoder's transmission
// order. mapping[i] gives the ACN index that transmitted channel i
// carries; transmitted carries numACN buffers worth of decoded samples in
// whatever order the bitstream used. ACN indices with no transmitted
// channel mapped to them come back as nil (callers must zero-fill before
// use in a Matrix.Apply, since Apply indexes positionally).
func ReorderToACN(transmitted [][]float64, mapping []byte, numACN int) [][]float64 {
	acn := make([][]float64, numACN)
	for i, buf := range transmitted {
		if i >= len(mapping) {
			break
		}
		idx := int(mapping[i])
		if idx < 0 || idx >= numACN {
			continue
		}
		acn[idx] = buf
	}
	return acn
}
