package obu

import (
	"testing"

	"github.com/iamfgo/iamf/internal/errcode"
)

func TestRead_Simple(t *testing.T) {
	// type=IAMFVersion(31), redundant=0, trim=0, ext=0; payload_size=4; payload="iamf"
	header := byte(31<<3) | 0x00
	b := append([]byte{header, 0x04}, []byte("iamf")...)

	o, err := Read(b)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if o.Type != TypeIAMFVersion {
		t.Fatalf("Type = %v, want TypeIAMFVersion", o.Type)
	}
	if string(o.Payload) != "iamf" {
		t.Fatalf("Payload = %q, want %q", o.Payload, "iamf")
	}
	if o.Size != len(b) {
		t.Fatalf("Size = %d, want %d", o.Size, len(b))
	}
}

func TestRead_Trimming(t *testing.T) {
	// trim_end=0 (1 byte), trim_start=240 (2 bytes: 0xF0 0x01), then 15 payload bytes.
	payload := make([]byte, 15)
	header := byte(byte(TypeAudioFrameID0)<<3) | 0x02
	body := append([]byte{0x00, 0xF0, 0x01}, payload...)
	b := append([]byte{header, byte(len(body))}, body...)

	o, err := Read(b)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !o.HasTrim {
		t.Fatal("HasTrim = false, want true")
	}
	if o.TrimEnd != 0 || o.TrimStart != 240 {
		t.Fatalf("trim = (%d,%d), want (0,240)", o.TrimEnd, o.TrimStart)
	}
	if len(o.Payload) != 15 {
		t.Fatalf("len(Payload) = %d, want 15", len(o.Payload))
	}
}

func TestRead_Truncated(t *testing.T) {
	b := []byte{byte(TypeCodecConfig << 3), 0x10} // declares 16 bytes, none present
	_, err := Read(b)
	if errcode.CodeOf(err) != errcode.Truncated {
		t.Fatalf("err = %v, want Truncated", err)
	}
}

func TestRead_MalformedLeb128(t *testing.T) {
	b := []byte{byte(TypeCodecConfig << 3)}
	for i := 0; i < 9; i++ {
		b = append(b, 0x80) // continuation bit always set, never terminates
	}
	_, err := Read(b)
	if errcode.CodeOf(err) != errcode.Malformed {
		t.Fatalf("err = %v, want Malformed", err)
	}
}

func TestReadAll(t *testing.T) {
	one := append([]byte{byte(TypeTemporalDelimiter << 3), 0x00})
	two := append([]byte{byte(TypeTemporalDelimiter << 3), 0x00})
	b := append(append([]byte{}, one...), two...)

	obus, err := ReadAll(b)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(obus) != 2 {
		t.Fatalf("len(obus) = %d, want 2", len(obus))
	}
}

func TestReadAll_StopsAtTruncated(t *testing.T) {
	complete := []byte{byte(TypeTemporalDelimiter << 3), 0x00}
	partial := []byte{byte(TypeCodecConfig << 3), 0x10}
	b := append(append([]byte{}, complete...), partial...)

	obus, err := ReadAll(b)
	if errcode.CodeOf(err) != errcode.Truncated {
		t.Fatalf("err = %v, want Truncated", err)
	}
	if len(obus) != 1 {
		t.Fatalf("len(obus) = %d, want 1 (partial stream resumable)", len(obus))
	}
}
