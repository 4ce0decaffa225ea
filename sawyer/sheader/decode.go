package sheader

import (
	"github.com/pkg/errors"

	"loco-savior/sawyer/lbytes"
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/serr"
)

func createNameReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return lbytes.CreateFixedReadFunction(
		reader, NameSize,
		func(bs []byte) (any, error) {
			var name Name
			copy(name[:], bs)
			return name, nil
		},
	)
}

func createEncodingReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		b, err := reader.ReadUint8()
		if err != nil {
			return nil, err
		}
		encoding := scompress.Encoding(b)
		if !encoding.Valid() {
			return nil, serr.ErrUnsupportedEncoding{Encoding: b}
		}
		return encoding, nil
	}
}

func DecodeIdentity(reader *lbytes.Reader) (*Identity, error) {
	readUint32 := lbytes.CreateUint32ReadFunction(reader)
	readName := createNameReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "flags", ReadFunction: readUint32},
		{Key: "name", ReadFunction: readName},
		{Key: "checksum", ReadFunction: readUint32},
	}

	identity, err := lbytes.ExecuteInstructions[Identity](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "sheader.DecodeIdentity error")
	}
	return identity, nil
}

func DecodePayload(reader *lbytes.Reader) (*Payload, error) {
	instructions := []lbytes.Instruction{
		{Key: "encoding", ReadFunction: createEncodingReadFunction(reader)},
		{Key: "length", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
	}

	payload, err := lbytes.ExecuteInstructions[Payload](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "sheader.DecodePayload error")
	}
	return payload, nil
}

// Decode reads both headers from the start of bs.
func Decode(bs []byte) (*Identity, *Payload, error) {
	if len(bs) < Size {
		return nil, nil, serr.ErrTruncatedPayload{
			Section: "header",
			Offset:  0,
			Want:    Size,
			Got:     len(bs),
		}
	}
	reader := lbytes.NewBytesReader(bs[:Size])
	identity, err := DecodeIdentity(reader)
	if err != nil {
		return nil, nil, err
	}
	payload, err := DecodePayload(reader)
	if err != nil {
		return nil, nil, err
	}
	return identity, payload, nil
}
