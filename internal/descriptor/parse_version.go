package descriptor

import "github.com/iamfgo/iamf/internal/errcode"

// ParseVersion parses the IAMFVersion descriptor payload: a 4-byte magic
// ("iamf") followed by a primary and an additional profile byte.
func ParseVersion(payload []byte) (Version, error) {
	r := newByteReader(payload)
	magic, err := r.bytes(4)
	if err != nil {
		return Version{}, err
	}
	primary, err := r.u8()
	if err != nil {
		return Version{}, err
	}
	additional, err := r.u8()
	if err != nil {
		return Version{}, err
	}
	if primary > uint8(ProfileBaseEnhanced) || additional > uint8(ProfileBaseEnhanced) {
		return Version{}, errcode.New(errcode.InvalidValue, "descriptor.ParseVersion")
	}
	var v Version
	copy(v.Magic[:], magic)
	v.ProfilePrimary = Profile(primary)
	v.ProfileAdditional = Profile(additional)
	return v, nil
}
