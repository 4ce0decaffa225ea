package slayout

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"

	"loco-savior/sawyer/serr"
	"loco-savior/sawyer/skind"
)

// Mapper projects the fixed region of one object kind.
type Mapper interface {
	Kind() skind.Kind
	// StructSize is where the fixed region ends and the string table starts.
	StructSize() int
	// StringCount is the number of string ids the string table holds for this kind.
	StringCount() int
	Descriptors() []Descriptor
	// New returns a zero record of the mapped kind.
	New() Record
	Project(buf []byte) (Record, error)
	Unproject(record Record) ([]byte, error)
	// Describe lists field values in declaration order.
	Describe(record Record) (*orderedmap.OrderedMap, error)
	Validate() error
}

// Layout is the Mapper of record type T, with P being *T.
type Layout[T any, P interface {
	*T
	Record
}] struct {
	kind        skind.Kind
	structSize  int
	stringCount int
	fields      []Field[T]
}

func New[T any, P interface {
	*T
	Record
}](kind skind.Kind, structSize int, stringCount int, fields ...Field[T]) *Layout[T, P] {
	return &Layout[T, P]{
		kind:        kind,
		structSize:  structSize,
		stringCount: stringCount,
		fields:      fields,
	}
}

func (l *Layout[T, P]) Kind() skind.Kind {
	return l.kind
}

func (l *Layout[T, P]) StructSize() int {
	return l.structSize
}

func (l *Layout[T, P]) StringCount() int {
	return l.stringCount
}

func (l *Layout[T, P]) Descriptors() []Descriptor {
	return lo.Map(l.fields, func(field Field[T], _ int) Descriptor {
		return field.Descriptor
	})
}

func (l *Layout[T, P]) New() Record {
	return P(new(T))
}

// Project reads every field from buf. buf may extend past the fixed region.
func (l *Layout[T, P]) Project(buf []byte) (Record, error) {
	t := new(T)
	for _, field := range l.fields {
		if field.End() > len(buf) {
			return nil, serr.ErrLayoutOverrun{
				Kind:         l.kind.String(),
				Field:        field.Name,
				Offset:       field.Offset,
				Size:         field.Length(),
				BufferLength: len(buf),
			}
		}
		field.decode(t, buf[field.Offset:field.End()])
	}
	return P(t), nil
}

// Unproject writes the record back into a fixed region of StructSize bytes.
func (l *Layout[T, P]) Unproject(record Record) ([]byte, error) {
	t, err := l.cast(record)
	if err != nil {
		return nil, err
	}
	bs := make([]byte, l.structSize)
	for _, field := range l.fields {
		field.encode(t, bs[field.Offset:field.End()])
	}
	return bs, nil
}

func (l *Layout[T, P]) Describe(record Record) (*orderedmap.OrderedMap, error) {
	t, err := l.cast(record)
	if err != nil {
		return nil, err
	}
	om := orderedmap.New()
	for _, field := range l.fields {
		om.Set(field.Name, field.value(t))
	}
	return om, nil
}

func (l *Layout[T, P]) cast(record Record) (*T, error) {
	p, ok := record.(P)
	if !ok || p == nil {
		return nil, fmt.Errorf(
			"slayout: %s layout cannot map a record of type %T",
			l.kind, record,
		)
	}
	return (*T)(p), nil
}

// Validate checks that every field lies inside the fixed region, that names are unique and that
// every byte of the region belongs to some field, so padding is carried through a round trip.
func (l *Layout[T, P]) Validate() error {
	if l.structSize <= 0 {
		return fmt.Errorf("slayout: %s layout has struct size %d", l.kind, l.structSize)
	}
	covered := make([]bool, l.structSize)
	names := map[string]bool{}
	for _, field := range l.fields {
		if field.Length() <= 0 || field.Offset < 0 || field.End() > l.structSize {
			return fmt.Errorf(
				`slayout: %s field "%s" at offset %d size %d lies outside struct size %d`,
				l.kind, field.Name, field.Offset, field.Length(), l.structSize,
			)
		}
		if names[field.Name] {
			return fmt.Errorf(`slayout: %s field "%s" is declared twice`, l.kind, field.Name)
		}
		names[field.Name] = true
		for i := field.Offset; i < field.End(); i++ {
			covered[i] = true
		}
	}
	if gap := lo.IndexOf(covered, false); gap >= 0 {
		return fmt.Errorf("slayout: %s layout leaves byte %d uncovered", l.kind, gap)
	}
	return nil
}
