package slayout

import (
	"encoding/binary"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// Scalar declares a single integer field at offset.
func Scalar[T any, V constraints.Integer](name string, offset int, ref func(t *T) *V) Field[T] {
	size := sizeOf[V]()
	return Field[T]{
		Descriptor: Descriptor{
			Name:   name,
			Offset: offset,
			Size:   size,
			Count:  1,
		},
		decode: func(t *T, bs []byte) {
			*ref(t) = V(getInt(bs))
		},
		encode: func(t *T, bs []byte) {
			putInt(bs, uint64(*ref(t)))
		},
		value: func(t *T) any {
			return *ref(t)
		},
	}
}

// Array declares a fixed length run of integers at offset. ref must return a slice over an array
// inside the record so that the element count is known from the zero value.
func Array[T any, V constraints.Integer](name string, offset int, ref func(t *T) []V) Field[T] {
	size := sizeOf[V]()
	count := len(ref(new(T)))
	return Field[T]{
		Descriptor: Descriptor{
			Name:   name,
			Offset: offset,
			Size:   size,
			Count:  count,
		},
		decode: func(t *T, bs []byte) {
			elems := ref(t)
			for i := range elems {
				elems[i] = V(getInt(bs[i*size : (i+1)*size]))
			}
		},
		encode: func(t *T, bs []byte) {
			for i, elem := range ref(t) {
				putInt(bs[i*size:(i+1)*size], uint64(elem))
			}
		},
		value: func(t *T) any {
			// a plain []uint8 would be dumped as base64
			return lo.Map(ref(t), func(elem V, _ int) any {
				return elem
			})
		},
	}
}

// sizeOf counts the bits of V by shifting a one out of it, which also works for named integer types.
func sizeOf[V constraints.Integer]() int {
	n := 0
	for x := V(1); x != 0; x <<= 1 {
		n++
	}
	return n / 8
}

func getInt(bs []byte) uint64 {
	switch len(bs) {
	case 1:
		return uint64(bs[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(bs))
	case 4:
		return uint64(binary.LittleEndian.Uint32(bs))
	default:
		return binary.LittleEndian.Uint64(bs)
	}
}

func putInt(bs []byte, value uint64) {
	switch len(bs) {
	case 1:
		bs[0] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(bs, uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(bs, uint32(value))
	default:
		binary.LittleEndian.PutUint64(bs, value)
	}
}
