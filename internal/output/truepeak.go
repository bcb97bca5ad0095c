package output

// truePeakFilters are the 4-phase, 12-tap oversampling polyphase filter
// bank used by the true-peak meter, ported verbatim from
// original_source/code/src/common/audio_true_peak_meter.c's
// sample_phase_filters_init.
var truePeakFilters = [4][12]float64{
	{
		0.0017089843750, 0.0109863281250, -0.0196533203125, 0.0332031250000,
		-0.0594482421875, 0.1373291015625, 0.9721679687500, -0.1022949218750,
		0.0476074218750, -0.0266113281250, 0.0148925781250, -0.0083007812500,
	},
	{
		-0.0291748046875, 0.0292968750000, -0.0517578125000, 0.0891113281250,
		-0.1665039062500, 0.4650878906250, 0.7797851562500, -0.2003173828125,
		0.1015625000000, -0.0582275390625, 0.0330810546875, -0.0189208984375,
	},
	{
		-0.0189208984375, 0.0330810546875, -0.0582275390625, 0.1015625000000,
		-0.2003173828125, 0.7797851562500, 0.4650878906250, -0.1665039062500,
		0.0891113281250, -0.0517578125000, 0.0292968750000, -0.0291748046875,
	},
	{
		-0.0083007812500, 0.0148925781250, -0.0266113281250, 0.0476074218750,
		-0.1022949218750, 0.9721679687500, 0.1373291015625, -0.0594482421875,
		0.0332031250000, -0.0196533203125, 0.0109863281250, 0.0017089843750,
	},
}

// TruePeakMeter estimates inter-sample peaks by running each incoming
// sample through a 4x oversampling polyphase filter bank and taking the
// maximum absolute value across the four phases.
type TruePeakMeter struct {
	history [12]float64 // history[0] is the most recent sample
	peak    float64
}

// NewTruePeakMeter returns a meter with zeroed filter history.
func NewTruePeakMeter() *TruePeakMeter { return &TruePeakMeter{} }

// Next feeds one sample through the meter, updates the running peak, and
// returns the oversampled peak for that sample alone.
func (m *TruePeakMeter) Next(sample float64) float64 {
	for i := 11; i > 0; i-- {
		m.history[i] = m.history[i-1]
	}
	m.history[0] = sample

	var samplePeak float64
	for phase := 0; phase < 4; phase++ {
		var sum float64
		coeffs := truePeakFilters[phase]
		for c := 0; c < 12; c++ {
			sum += m.history[c] * coeffs[c]
		}
		if abs := absf(sum); abs > samplePeak {
			samplePeak = abs
		}
	}
	if samplePeak > m.peak {
		m.peak = samplePeak
	}
	return samplePeak
}

// Peak returns the maximum oversampled absolute value seen so far.
func (m *TruePeakMeter) Peak() float64 { return m.peak }

// Reset clears filter history and the running peak, e.g. between program
// boundaries.
func (m *TruePeakMeter) Reset() {
	m.history = [12]float64{}
	m.peak = 0
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
