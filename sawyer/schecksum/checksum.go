// Package schecksum computes the checksum stored in the identity header.
//
// The checksum is a rolling 32-bit value seeded with a fixed constant. It covers the low byte of
// the identity flags, the 8 name bytes and every byte of the decoded payload, so it does not depend
// on the encoding a payload is stored with.
package schecksum

import (
	"math/bits"

	"loco-savior/sawyer/serr"
	"loco-savior/sawyer/sheader"
)

const Seed uint32 = 0xF369A75B

func mix(checksum uint32, bs ...byte) uint32 {
	for _, b := range bs {
		checksum ^= uint32(b)
		checksum = bits.RotateLeft32(checksum, 11)
	}
	return checksum
}

func ComputeBytes(flagsLow byte, name sheader.Name, data []byte) uint32 {
	checksum := mix(Seed, flagsLow)
	checksum = mix(checksum, name[:]...)
	return mix(checksum, data...)
}

// Compute ignores the checksum already stored in identity.
func Compute(identity sheader.Identity, data []byte) uint32 {
	return ComputeBytes(byte(identity.Flags), identity.Name, data)
}

func Verify(identity sheader.Identity, data []byte) error {
	actual := Compute(identity, data)
	if actual != identity.Checksum {
		return serr.ErrCorruptFile{
			Name:     identity.Name.String(),
			Expected: identity.Checksum,
			Actual:   actual,
		}
	}
	return nil
}

// Sign returns identity with its checksum set for data.
func Sign(identity sheader.Identity, data []byte) sheader.Identity {
	identity.Checksum = Compute(identity, data)
	return identity
}
