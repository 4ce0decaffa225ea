package sfile

import (
	"github.com/pkg/errors"

	"loco-savior/sawyer/schecksum"
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/serr"
	"loco-savior/sawyer/sgraphics"
	"loco-savior/sawyer/sheader"
	"loco-savior/sawyer/slayout"
	"loco-savior/sawyer/sstring"
)

func decodeHeaders(bs []byte) (*sheader.Identity, *sheader.Payload, error) {
	identity, payload, err := sheader.Decode(bs)
	if err != nil {
		return nil, nil, err
	}
	if kind := identity.Kind(); !kind.Valid() {
		return nil, nil, serr.ErrUnsupportedObjectKind{
			Kind:   kind,
			Reason: "unknown kind discriminant",
		}
	}
	return identity, payload, nil
}

// DecodeHeaders reads both headers without running the compression codec. An uncompressed
// payload is checked against its declared length and checksum as well.
func DecodeHeaders(bs []byte) (*Headers, error) {
	identity, payload, err := decodeHeaders(bs)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.DecodeHeaders error")
	}

	headers := Headers{
		Identity: *identity,
		Payload:  *payload,
	}
	if payload.Encoding != scompress.Uncompressed {
		return &headers, nil
	}

	stream := bs[sheader.Size:]
	declared := int(payload.Length)
	switch {
	case len(stream) < declared:
		return nil, serr.ErrTruncatedPayload{
			Section: "payload",
			Offset:  sheader.Size + len(stream),
			Want:    declared,
			Got:     len(stream),
		}
	case len(stream) > declared:
		return nil, serr.ErrLengthMismatch{
			Section:  "payload",
			Declared: declared,
			Actual:   len(stream),
		}
	}
	if err := schecksum.Verify(*identity, stream); err != nil {
		return nil, err
	}
	headers.Verified = true
	return &headers, nil
}

// Decode reads a whole object file. The payload is decoded before the checksum is verified since
// the checksum covers decoded bytes.
func Decode(bs []byte) (*File, error) {
	identity, payload, err := decodeHeaders(bs)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.Decode error")
	}
	mapper, err := slayout.Lookup(identity.Kind())
	if err != nil {
		return nil, err
	}

	data, err := scompress.Decode(payload.Encoding, bs[sheader.Size:], int(payload.Length))
	if err != nil {
		return nil, errors.Wrap(err, "sfile.Decode error")
	}
	if err := schecksum.Verify(*identity, data); err != nil {
		return nil, err
	}

	return decodePayload(*identity, *payload, mapper, data)
}

func decodePayload(
	identity sheader.Identity,
	payload sheader.Payload,
	mapper slayout.Mapper,
	data []byte,
) (*File, error) {
	object, err := mapper.Project(data)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.Decode error projecting object")
	}
	file := File{
		Identity: identity,
		Payload:  payload,
		Object:   object,
	}

	rest := data[mapper.StructSize():]
	if len(rest) == 0 {
		return &file, nil
	}
	strings, n, err := sstring.Decode(rest, mapper.StringCount())
	if err != nil {
		return nil, errors.Wrap(err, "sfile.Decode error decoding string table")
	}
	file.Strings = strings

	rest = rest[n:]
	if len(rest) == 0 {
		return &file, nil
	}
	graphics, n, err := sgraphics.Decode(rest)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.Decode error decoding graphics table")
	}
	file.Graphics = graphics

	if rest = rest[n:]; len(rest) > 0 {
		file.Trailing = append([]byte{}, rest...)
	}
	return &file, nil
}
