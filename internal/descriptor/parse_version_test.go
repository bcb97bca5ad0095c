package descriptor

import (
	"testing"

	"github.com/iamfgo/iamf/internal/errcode"
)

func TestParseVersion_Simple(t *testing.T) {
	payload := append([]byte("iamf"), byte(ProfileBase), byte(ProfileBaseEnhanced))
	v, err := ParseVersion(payload)
	if err != nil {
		t.Fatalf("ParseVersion: %v", err)
	}
	if string(v.Magic[:]) != "iamf" {
		t.Fatalf("Magic = %q, want %q", v.Magic, "iamf")
	}
	if v.ProfilePrimary != ProfileBase || v.ProfileAdditional != ProfileBaseEnhanced {
		t.Fatalf("profiles = (%v,%v), want (%v,%v)", v.ProfilePrimary, v.ProfileAdditional, ProfileBase, ProfileBaseEnhanced)
	}
}

func TestParseVersion_InvalidProfile(t *testing.T) {
	payload := append([]byte("iamf"), byte(0xff), byte(ProfileSimple))
	_, err := ParseVersion(payload)
	if errcode.CodeOf(err) != errcode.InvalidValue {
		t.Fatalf("err = %v, want InvalidValue", err)
	}
}

func TestParseVersion_Truncated(t *testing.T) {
	_, err := ParseVersion([]byte("ia"))
	if errcode.CodeOf(err) != errcode.Truncated {
		t.Fatalf("err = %v, want Truncated", err)
	}
}
