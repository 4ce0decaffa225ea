// Package sstring reads and writes the string table that follows the fixed region of a payload.
//
// For every string id the table holds any number of entries, each a language byte followed by
// null terminated text, and a single 0xFF byte closing the id.
package sstring

import (
	"github.com/pkg/errors"

	"loco-savior/sawyer/lbytes"
	"loco-savior/sawyer/serr"
)

const section = "string_table"

// Decode reads the entries of stringCount ids from the start of buf. It returns the table and the
// number of bytes it occupied.
func Decode(buf []byte, stringCount int) (*Table, int, error) {
	reader := lbytes.NewBytesReader(buf)
	truncated := func() error {
		return serr.ErrTruncatedPayload{
			Section: section,
			Offset:  reader.Offset(),
			Want:    reader.Offset() + 1,
			Got:     len(buf),
		}
	}

	entries := make([]Entry, 0, stringCount)
	for id := 0; id < stringCount; id++ {
		for {
			language, err := reader.ReadUint8()
			if err != nil {
				return nil, 0, truncated()
			}
			if Language(language) == End {
				break
			}
			raw, err := reader.ReadCString()
			if err != nil {
				return nil, 0, truncated()
			}
			text, err := lbytes.DecodeText(raw)
			if err != nil {
				return nil, 0, errors.Wrapf(err, "sstring.Decode error decoding string %d", id)
			}
			entries = append(entries, Entry{
				Language: Language(language),
				ID:       id,
				Text:     text,
			})
		}
	}

	return &Table{Entries: entries}, reader.Offset(), nil
}
