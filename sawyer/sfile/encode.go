package sfile

import (
	"fmt"

	"github.com/pkg/errors"

	"loco-savior/sawyer/schecksum"
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/sgraphics"
	"loco-savior/sawyer/sheader"
	"loco-savior/sawyer/slayout"
	"loco-savior/sawyer/sstring"
)

// EncodePayload lays out the decoded payload of file.
func EncodePayload(file File) ([]byte, error) {
	if file.Object == nil {
		return nil, errors.New("sfile.EncodePayload: file has no object")
	}
	if file.Object.Kind() != file.Identity.Kind() {
		return nil, fmt.Errorf(
			"sfile.EncodePayload: object is a %s but the identity header says %s",
			file.Object.Kind(), file.Identity.Kind(),
		)
	}
	mapper, err := slayout.Lookup(file.Identity.Kind())
	if err != nil {
		return nil, err
	}

	data, err := mapper.Unproject(file.Object)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.EncodePayload error")
	}

	hasGraphics := file.Graphics != nil || len(file.Trailing) > 0
	if file.Strings == nil && !hasGraphics {
		return data, nil
	}
	strings, err := sstring.Encode(file.Strings, mapper.StringCount())
	if err != nil {
		return nil, errors.Wrap(err, "sfile.EncodePayload error")
	}
	data = append(data, strings...)

	if !hasGraphics {
		return data, nil
	}
	graphics := file.Graphics
	if graphics == nil {
		graphics = &sgraphics.Table{}
	}
	images, err := sgraphics.Encode(graphics)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.EncodePayload error")
	}
	data = append(data, images...)

	return append(data, file.Trailing...), nil
}

// Encode writes file with the encoding in file.Payload, recomputing the declared length and
// the checksum.
func Encode(file File) ([]byte, error) {
	data, err := EncodePayload(file)
	if err != nil {
		return nil, err
	}
	encoded, err := scompress.Encode(file.Payload.Encoding, data)
	if err != nil {
		return nil, errors.Wrap(err, "sfile.Encode error")
	}

	identity := schecksum.Sign(file.Identity, data)
	payload := sheader.Payload{
		Encoding: file.Payload.Encoding,
		Length:   uint32(len(data)),
	}

	bs := make([]byte, 0, sheader.Size+len(encoded))
	bs = append(bs, sheader.Encode(identity, payload)...)
	bs = append(bs, encoded...)
	return bs, nil
}
