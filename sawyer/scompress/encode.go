package scompress

import (
	"math/bits"

	"loco-savior/sawyer/serr"
)

// Encode compresses data with the given encoding.
// Decode(encoding, Encode(encoding, data), len(data)) gives data back.
func Encode(encoding Encoding, data []byte) ([]byte, error) {
	switch encoding {
	case Uncompressed:
		return EncodeUncompressed(data), nil
	case RunLengthSingle:
		return EncodeRunLengthSingle(data), nil
	case RunLengthMulti:
		return EncodeRunLengthMulti(data), nil
	case Rotate:
		return EncodeRotate(data), nil
	default:
		return nil, serr.ErrUnsupportedEncoding{Encoding: uint8(encoding)}
	}
}

func EncodeUncompressed(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

func EncodeRotate(data []byte) []byte {
	out := make([]byte, len(data))
	k := 1
	for i, b := range data {
		out[i] = bits.RotateLeft8(b, k)
		k = (k + 2) % 8
	}
	return out
}

// EncodeRunLengthSingle emits a repeat for every run of at least two equal bytes
// and groups everything else into literal blocks.
func EncodeRunLengthSingle(data []byte) []byte {
	out := make([]byte, 0, len(data)+len(data)/MaxLiteral+1)
	literalStart := 0
	flush := func(end int) {
		for literalStart < end {
			n := min(end-literalStart, MaxLiteral)
			out = append(out, byte(n-1))
			out = append(out, data[literalStart:literalStart+n]...)
			literalStart += n
		}
	}

	for i := 0; i < len(data); {
		run := 1
		for i+run < len(data) && run < MaxRun && data[i+run] == data[i] {
			run++
		}
		if run < 2 {
			i++
			continue
		}
		flush(i)
		out = append(out, byte(257-run), data[i])
		i += run
		literalStart = i
	}
	flush(len(data))

	return out
}

// EncodeRunLengthMulti picks the longest back-reference inside the window at every position,
// escapes bytes that have none, then run-length encodes the result.
func EncodeRunLengthMulti(data []byte) []byte {
	layer := make([]byte, 0, len(data)*2)
	for i := 0; i < len(data); {
		bestLength, bestDistance := 0, 0
		for distance := 1; distance <= Window && distance <= i; distance++ {
			n := 0
			for n < MaxCopy && i+n < len(data) && data[i-distance+n] == data[i+n] {
				n++
			}
			// distance 1 with length 8 would encode as the escape byte
			if distance == 1 && n == MaxCopy {
				n = MaxCopy - 1
			}
			if n > bestLength {
				bestLength, bestDistance = n, distance
			}
		}

		if bestLength == 0 {
			layer = append(layer, Escape, data[i])
			i++
			continue
		}
		layer = append(layer, byte((Window-bestDistance)<<3|(bestLength-1)))
		i += bestLength
	}

	return EncodeRunLengthSingle(layer)
}
