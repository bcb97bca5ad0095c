package aac

import "testing"

// buildASC packs object_type(5) | sample_rate_index(4) | channel_config(4)
// into the leading 13 bits of a byte slice.
func buildASC(objType, srIndex, chanConfig uint8) []byte {
	bits := uint32(objType)<<8 | uint32(srIndex)<<4 | uint32(chanConfig)
	bits <<= 3 // left-align the 13 bits within 2 bytes
	return []byte{byte(bits >> 8), byte(bits)}
}

func TestParseConfig_AACLCStereo48k(t *testing.T) {
	b := buildASC(2, 3, 2) // AAC LC, 48000 Hz, stereo
	cfg, err := ParseConfig(b)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.ObjectType != 2 || cfg.SampleRate != 48000 || cfg.ChannelConfig != 2 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseConfig_InvalidSampleRateIndex(t *testing.T) {
	b := buildASC(2, 13, 2) // 13 is reserved
	_, err := ParseConfig(b)
	if err == nil {
		t.Fatal("ParseConfig should reject reserved sample-rate index")
	}
}
