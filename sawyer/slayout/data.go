// Package slayout maps the fixed region of a decoded payload onto typed records.
//
// Each object kind declares its layout once, as a list of fields with absolute offsets into the
// fixed region. Fields carry accessor closures into the record struct, so projecting and
// unprojecting never needs reflection. Layouts are registered during package initialization and
// are read-only afterwards.
package slayout

import (
	"loco-savior/sawyer/skind"
)

type (
	// Record is implemented by every typed object record.
	Record interface {
		Kind() skind.Kind
	}

	// Descriptor is the geometry of one field: Count elements of Size bytes each, starting at Offset.
	Descriptor struct {
		Name   string `json:"name"`
		Offset int    `json:"offset"`
		Size   int    `json:"size"`
		Count  int    `json:"count"`
	}

	Field[T any] struct {
		Descriptor
		decode func(t *T, bs []byte)
		encode func(t *T, bs []byte)
		value  func(t *T) any
	}
)

// Length is the number of bytes the field occupies.
func (d Descriptor) Length() int {
	return d.Size * d.Count
}

func (d Descriptor) End() int {
	return d.Offset + d.Length()
}
