package sheader

import (
	"fmt"
	"strings"

	"loco-savior/sawyer/lbytes"
)

// NewName converts text into a space padded Name.
func NewName(s string) (Name, error) {
	var name Name
	err := name.UnmarshalText([]byte(s))
	return name, err
}

// String returns the name without its padding. Bytes are shown as-is.
func (n Name) String() string {
	return strings.TrimRight(string(n[:]), " ")
}

// Equal compares names ignoring case and trailing spaces.
func (n Name) Equal(other Name) bool {
	return strings.EqualFold(n.String(), other.String())
}

func (n Name) MarshalText() ([]byte, error) {
	text, err := lbytes.DecodeText(n[:])
	if err != nil {
		return nil, err
	}
	return []byte(strings.TrimRight(text, " ")), nil
}

func (n *Name) UnmarshalText(text []byte) error {
	bs, err := lbytes.EncodeText(string(text))
	if err != nil {
		return err
	}
	if len(bs) > NameSize {
		return fmt.Errorf(`sheader.Name: "%s" is longer than %d bytes`, text, NameSize)
	}
	for i := range n {
		n[i] = ' '
	}
	copy(n[:], bs)
	return nil
}
