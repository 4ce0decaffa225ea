package sstring

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"loco-savior/sawyer/lbytes"
)

// Encode writes the table for stringCount ids. Entries must be grouped by id in ascending order.
func Encode(table *Table, stringCount int) ([]byte, error) {
	var entries []Entry
	if table != nil {
		entries = table.Entries
	}

	bs := make([]byte, 0, len(entries)*16+stringCount)
	next := 0
	for id := 0; id < stringCount; id++ {
		for ; next < len(entries) && entries[next].ID == id; next++ {
			entry := entries[next]
			if entry.Language == End {
				return nil, fmt.Errorf("sstring.Encode: string %d uses the end marker as language", id)
			}
			if strings.ContainsRune(entry.Text, 0) {
				return nil, fmt.Errorf("sstring.Encode: string %d contains a zero byte", id)
			}
			text, err := lbytes.EncodeText(entry.Text)
			if err != nil {
				return nil, errors.Wrapf(err, "sstring.Encode error encoding string %d", id)
			}
			bs = append(bs, byte(entry.Language))
			bs = append(bs, text...)
			bs = append(bs, 0)
		}
		bs = append(bs, byte(End))
	}

	if next < len(entries) {
		return nil, fmt.Errorf(
			"sstring.Encode: entry %d has id %d, ids must be ascending and below %d",
			next, entries[next].ID, stringCount,
		)
	}
	return bs, nil
}
