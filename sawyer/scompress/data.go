// Package scompress implements the payload encodings of an object file.
//
// Every decoder produces exactly the declared number of bytes or fails; there is no
// padding or truncation of the output.
package scompress

import (
	"fmt"

	"github.com/samber/lo"
)

type Encoding uint8

const (
	Uncompressed Encoding = iota
	RunLengthSingle
	RunLengthMulti
	Rotate
)

const (
	// MaxRun is the longest repeat a single control byte can express.
	MaxRun = 129
	// MaxLiteral is the longest literal block a single control byte can express.
	MaxLiteral = 128
	// Window is how far back a RunLengthMulti back-reference can reach.
	Window = 32
	// MaxCopy is the longest RunLengthMulti back-reference.
	MaxCopy = 8
	// Escape marks a literal byte in the RunLengthMulti layer.
	Escape = 0xFF
)

var encodingNames = map[Encoding]string{
	Uncompressed:    "uncompressed",
	RunLengthSingle: "run_length_single",
	RunLengthMulti:  "run_length_multi",
	Rotate:          "rotate",
}

func (e Encoding) Valid() bool {
	return e <= Rotate
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("unknown_encoding_%d", uint8(e))
}

func (e Encoding) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("scompress.Encoding.MarshalText: invalid encoding %d", uint8(e))
	}
	return []byte(e.String()), nil
}

func (e *Encoding) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Parse turns an encoding name into its Encoding.
func Parse(name string) (Encoding, error) {
	found, ok := lo.Invert(encodingNames)[name]
	if !ok {
		return 0, fmt.Errorf(`scompress.Parse: unknown encoding "%s"`, name)
	}
	return found, nil
}

// All returns every known encoding in discriminant order.
func All() []Encoding {
	return []Encoding{Uncompressed, RunLengthSingle, RunLengthMulti, Rotate}
}
