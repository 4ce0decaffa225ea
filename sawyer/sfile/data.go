// Package sfile decodes and encodes whole object files.
//
// A file is an identity header, a payload header and the encoded payload. Once decoded, the
// payload is the fixed region of the object record, then the string table, then the graphics
// table, then any trailing bytes. The checksum in the identity header covers the decoded payload.
package sfile

import (
	"loco-savior/sawyer/sgraphics"
	"loco-savior/sawyer/sheader"
	"loco-savior/sawyer/slayout"
	"loco-savior/sawyer/sstring"

	// registers the object layouts
	_ "loco-savior/sawyer/sobjects"
)

type (
	File struct {
		Identity sheader.Identity
		// Payload.Encoding picks the encoding used by Encode; Payload.Length is recomputed.
		Payload sheader.Payload
		Object  slayout.Record
		// Strings is nil when the payload ends right after the fixed region. A nil table followed
		// by graphics is written as empty ids and reads back as an empty, non nil table.
		Strings *sstring.Table
		// Graphics is nil when the payload ends right after the string table.
		Graphics *sgraphics.Table
		// Trailing holds bytes found after the graphics table, written back verbatim.
		Trailing []byte
	}

	// Headers is the result of the header-only fast path.
	Headers struct {
		Identity sheader.Identity `json:"identity"`
		Payload  sheader.Payload  `json:"payload"`
		// Verified is set when the checksum could be checked without decompressing.
		Verified bool `json:"verified"`
	}
)
