// Package serr holds the error taxonomy of the object file codec.
//
// Every error is a plain struct carrying enough context to diagnose the offending file;
// callers match them with errors.As. Nothing in the codec substitutes defaults for
// malformed data, so each of these ends the decode of the file it was raised for.
package serr

import (
	"fmt"

	"loco-savior/sawyer/skind"
)

type (
	// ErrCorruptFile is a checksum mismatch.
	ErrCorruptFile struct {
		Name     string
		Expected uint32
		Actual   uint32
	}
	// ErrTruncatedPayload means a stream ended before the declared amount of data was produced.
	ErrTruncatedPayload struct {
		Section string
		Offset  int
		Want    int
		Got     int
	}
	ErrUnsupportedObjectKind struct {
		Kind   skind.Kind
		Reason string
	}
	// ErrLayoutOverrun means declared field geometry exceeds the buffer it is applied to.
	ErrLayoutOverrun struct {
		Kind         string
		Field        string
		Offset       int
		Size         int
		BufferLength int
	}
	ErrInvalidImageReference struct {
		Index  int
		Target int
		Reason string
	}
	ErrLengthMismatch struct {
		Section  string
		Declared int
		Actual   int
	}
	ErrUnsupportedEncoding struct {
		Encoding uint8
	}
	// ErrInvalidBackReference is a back-reference reaching before the start of the output.
	ErrInvalidBackReference struct {
		Position int
		Distance int
		Produced int
	}
)

func (r ErrCorruptFile) Error() string {
	return fmt.Sprintf(
		`corrupt file "%s": stored checksum 0x%08X, computed 0x%08X`,
		r.Name, r.Expected, r.Actual,
	)
}

func (r ErrTruncatedPayload) Error() string {
	return fmt.Sprintf(
		`truncated %s at offset %d: wanted %d bytes, got %d`,
		r.Section, r.Offset, r.Want, r.Got,
	)
}

func (r ErrUnsupportedObjectKind) Error() string {
	return fmt.Sprintf(`unsupported object kind %d (%s): %s`, uint8(r.Kind), r.Kind, r.Reason)
}

func (r ErrLayoutOverrun) Error() string {
	return fmt.Sprintf(
		`layout overrun in %s field "%s": offset %d size %d exceeds buffer length %d`,
		r.Kind, r.Field, r.Offset, r.Size, r.BufferLength,
	)
}

func (r ErrInvalidImageReference) Error() string {
	return fmt.Sprintf(`invalid image reference from image %d to %d: %s`, r.Index, r.Target, r.Reason)
}

func (r ErrLengthMismatch) Error() string {
	return fmt.Sprintf(
		`length mismatch in %s: declared %d bytes, actual %d`,
		r.Section, r.Declared, r.Actual,
	)
}

func (r ErrUnsupportedEncoding) Error() string {
	return fmt.Sprintf(`unsupported payload encoding %d`, r.Encoding)
}

func (r ErrInvalidBackReference) Error() string {
	return fmt.Sprintf(
		`back-reference at position %d reaches %d bytes back with only %d bytes produced`,
		r.Position, r.Distance, r.Produced,
	)
}
