package sheader

import (
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/skind"
)

type (
	// Name is the 8 byte object name, space padded and not null terminated.
	Name [NameSize]byte

	Identity struct {
		Flags    uint32 `json:"flags"`
		Name     Name   `json:"name"`
		Checksum uint32 `json:"checksum"`
	}

	Payload struct {
		Encoding scompress.Encoding `json:"encoding"`
		// Length is the decoded length of the payload.
		Length uint32 `json:"length"`
	}
)

const (
	NameSize        = 8
	IdentitySize    = 16
	PayloadSize     = 5
	Size            = IdentitySize + PayloadSize
	KindMask        = 0x3F
	SourceGameShift = 6
	SourceGameMask  = 0x03
)

func (r Identity) Kind() skind.Kind {
	return skind.Kind(r.Flags & KindMask)
}

func (r Identity) SourceGame() skind.SourceGame {
	return skind.SourceGame((r.Flags >> SourceGameShift) & SourceGameMask)
}

// NewIdentity builds an identity with an empty checksum.
func NewIdentity(kind skind.Kind, source skind.SourceGame, name Name) Identity {
	flags := uint32(kind)&KindMask | (uint32(source)&SourceGameMask)<<SourceGameShift
	return Identity{
		Flags: flags,
		Name:  name,
	}
}

// WithKind replaces the kind bits, keeping every other flag.
func (r Identity) WithKind(kind skind.Kind) Identity {
	r.Flags = r.Flags&^KindMask | uint32(kind)&KindMask
	return r
}
