package scompress

import (
	"math/bits"

	"github.com/pkg/errors"

	"loco-savior/ds"
	"loco-savior/sawyer/serr"
)

// Decode inflates src into exactly declared bytes using the given encoding.
func Decode(encoding Encoding, src []byte, declared int) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch encoding {
	case Uncompressed:
		out, err = DecodeUncompressed(src, declared)
	case RunLengthSingle:
		out, err = DecodeRunLengthSingle(src, declared)
	case RunLengthMulti:
		out, err = DecodeRunLengthMulti(src, declared)
	case Rotate:
		out, err = DecodeRotate(src, declared)
	default:
		return nil, serr.ErrUnsupportedEncoding{Encoding: uint8(encoding)}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "scompress.Decode error decoding %s payload", encoding)
	}
	return out, nil
}

func checkLength(section string, src []byte, declared int) error {
	switch {
	case len(src) < declared:
		return serr.ErrTruncatedPayload{
			Section: section,
			Offset:  len(src),
			Want:    declared,
			Got:     len(src),
		}
	case len(src) > declared:
		return serr.ErrLengthMismatch{
			Section:  section,
			Declared: declared,
			Actual:   len(src),
		}
	}
	return nil
}

func DecodeUncompressed(src []byte, declared int) ([]byte, error) {
	if err := checkLength(Uncompressed.String(), src, declared); err != nil {
		return nil, err
	}
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}

func DecodeRotate(src []byte, declared int) ([]byte, error) {
	if err := checkLength(Rotate.String(), src, declared); err != nil {
		return nil, err
	}
	out := make([]byte, len(src))
	k := 1
	for i, b := range src {
		out[i] = bits.RotateLeft8(b, -k)
		k = (k + 2) % 8
	}
	return out, nil
}

func DecodeRunLengthSingle(src []byte, declared int) ([]byte, error) {
	section := RunLengthSingle.String()
	out, pos, err := expand(src, 0, declared, section)
	if err != nil {
		return nil, err
	}
	if pos < len(src) {
		actual := len(out)
		if rest, _, err := expand(src, pos, -1, section); err == nil {
			actual += len(rest)
		}
		return nil, serr.ErrLengthMismatch{
			Section:  section,
			Declared: declared,
			Actual:   actual,
		}
	}
	return out, nil
}

// DecodeSpans decodes one run-length span list starting at the beginning of src until exactly
// width bytes are produced. It returns the decoded bytes and the number of input bytes consumed.
func DecodeSpans(src []byte, width int) ([]byte, int, error) {
	return expand(src, 0, width, "image_row")
}

func DecodeRunLengthMulti(src []byte, declared int) ([]byte, error) {
	section := RunLengthMulti.String()
	expanded, _, err := expand(src, 0, -1, section)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, min(max(declared, 0), len(expanded)*MaxCopy))
	for i := 0; i < len(expanded); i++ {
		c := expanded[i]
		if c == Escape {
			if i+1 >= len(expanded) {
				return nil, serr.ErrTruncatedPayload{
					Section: section,
					Offset:  i,
					Want:    len(out) + 1,
					Got:     len(out),
				}
			}
			i++
			out = append(out, expanded[i])
			continue
		}

		count := int(c&0x07) + 1
		distance := Window - int(c>>3)
		start := len(out) - distance
		if start < 0 {
			return nil, serr.ErrInvalidBackReference{
				Position: i,
				Distance: distance,
				Produced: len(out),
			}
		}
		// byte by byte, a copy may read what it has just written
		for j := 0; j < count; j++ {
			out = append(out, out[start+j])
		}
	}

	if err := checkLength(section, out, declared); err != nil {
		return nil, err
	}
	return out, nil
}

// expand runs the run-length alphabet over src from pos until want bytes are produced.
// A negative want consumes the whole stream instead.
//
// A control byte c with the high bit set repeats the following byte 257-c times;
// otherwise the next c+1 bytes are copied verbatim.
func expand(src []byte, pos int, want int, section string) ([]byte, int, error) {
	capacity := (len(src) - pos) * 2
	if want >= 0 {
		capacity = min(want, (len(src)-pos)*(MaxRun/2+1))
	}
	out := make([]byte, 0, capacity)

	truncated := func(need int) error {
		return serr.ErrTruncatedPayload{
			Section: section,
			Offset:  pos,
			Want:    len(out) + need,
			Got:     len(out),
		}
	}

	for want < 0 || len(out) < want {
		if pos >= len(src) {
			if want < 0 {
				break
			}
			return nil, pos, serr.ErrTruncatedPayload{
				Section: section,
				Offset:  pos,
				Want:    want,
				Got:     len(out),
			}
		}

		c := src[pos]
		pos++
		if c&0x80 != 0 {
			run := 257 - int(c)
			if pos >= len(src) {
				return nil, pos, truncated(run)
			}
			b := src[pos]
			pos++
			out = append(out, ds.Repeat(run, b)...)
			continue
		}

		n := int(c) + 1
		if pos+n > len(src) {
			return nil, pos, truncated(n)
		}
		out = append(out, src[pos:pos+n]...)
		pos += n
	}

	if want >= 0 && len(out) > want {
		return nil, pos, serr.ErrLengthMismatch{
			Section:  section,
			Declared: want,
			Actual:   len(out),
		}
	}
	return out, pos, nil
}
