package lbytes

import (
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
)

// Text in object files is stored in the game's 8-bit code page. Windows-1252 maps every
// byte value to a distinct rune, so decoding and encoding back is lossless.

func DecodeText(bs []byte) (string, error) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(bs)
	if err != nil {
		return "", errors.Wrap(err, "lbytes.DecodeText error")
	}
	return string(decoded), nil
}

func EncodeText(s string) ([]byte, error) {
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, errors.Wrapf(err, `lbytes.EncodeText error encoding "%s"`, s)
	}
	return encoded, nil
}
