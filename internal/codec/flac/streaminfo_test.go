package flac

import "testing"

// bitWriter is a minimal sequential bit writer, used only to construct
// STREAMINFO fixtures for these tests.
type bitWriter struct {
	b   []byte
	pos int
}

func (w *bitWriter) write(v uint64, n int) {
	for i := n - 1; i >= 0; i-- {
		bit := byte((v >> uint(i)) & 1)
		byteIdx := w.pos / 8
		bitIdx := 7 - uint(w.pos%8)
		if bit == 1 {
			w.b[byteIdx] |= 1 << bitIdx
		}
		w.pos++
	}
}

func buildStreamInfo(sampleRate uint32, channels, bps uint8, totalSamples uint64) []byte {
	b := make([]byte, 34)
	w := &bitWriter{b: b}
	w.write(0, 16) // min block size
	w.write(0, 16) // max block size
	w.write(0, 24) // min frame size
	w.write(0, 24) // max frame size
	w.write(uint64(sampleRate), 20)
	w.write(uint64(channels-1), 3)
	w.write(uint64(bps-1), 5)
	w.write(totalSamples, 36)
	return b
}

func TestParseStreamInfo(t *testing.T) {
	b := buildStreamInfo(48000, 2, 16, 44100)
	info, err := ParseStreamInfo(b)
	if err != nil {
		t.Fatalf("ParseStreamInfo: %v", err)
	}
	if info.SampleRate != 48000 || info.Channels != 2 || info.BitsPerSample != 16 {
		t.Fatalf("info = %+v", info)
	}
	if info.TotalSamples != 44100 {
		t.Fatalf("TotalSamples = %d, want 44100", info.TotalSamples)
	}
}

func TestParseStreamInfo_Truncated(t *testing.T) {
	_, err := ParseStreamInfo(make([]byte, 10))
	if err == nil {
		t.Fatal("ParseStreamInfo should reject a short buffer")
	}
}
