package opus

import "testing"

func TestParseConfig(t *testing.T) {
	cspec := []byte{
		1,          // version
		2,          // channels
		0x01, 0x00, // pre-skip = 256
		0x00, 0x00, 0xBB, 0x80, // 48000 Hz
		0x00, 0x00, // gain = 0
		0,          // mapping family 0: no table
	}
	cfg, err := ParseConfig(cspec)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Version != 1 || cfg.Channels != 2 || cfg.PreSkip != 256 || cfg.InputSampleHz != 48000 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.MappingTable != nil {
		t.Fatalf("MappingTable = %v, want nil for family 0", cfg.MappingTable)
	}
}

func TestParseConfig_WithMappingTable(t *testing.T) {
	cspec := []byte{1, 6, 0, 0, 0, 0, 0xBB, 0x80, 0, 0, 1, 0, 1, 2, 3, 4, 5}
	cfg, err := ParseConfig(cspec)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if len(cfg.MappingTable) != 6 {
		t.Fatalf("len(MappingTable) = %d, want 6", len(cfg.MappingTable))
	}
}

func TestPort_DecodeWithoutFunc(t *testing.T) {
	p := &Port{}
	if err := p.Init([]byte{1, 1, 0, 0, 0, 0, 0xBB, 0x80, 0, 0, 0}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := p.Decode(nil, nil, 0); err == nil {
		t.Fatal("Decode without DecodeFunc should error")
	}
}
