package slayout

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"loco-savior/sawyer/serr"
	"loco-savior/sawyer/skind"
)

// registry is filled by Register during package initialization only.
var registry = map[skind.Kind]Mapper{}

// Register adds the layout of one kind. An invalid or duplicate layout is a bug in the
// declarations, so it panics.
func Register(mapper Mapper) {
	if err := mapper.Validate(); err != nil {
		panic(err)
	}
	if _, ok := registry[mapper.Kind()]; ok {
		panic(fmt.Sprintf("slayout.Register: %s layout registered twice", mapper.Kind()))
	}
	registry[mapper.Kind()] = mapper
}

func Lookup(kind skind.Kind) (Mapper, error) {
	if !kind.Valid() {
		return nil, serr.ErrUnsupportedObjectKind{
			Kind:   kind,
			Reason: "unknown kind discriminant",
		}
	}
	mapper, ok := registry[kind]
	if !ok {
		return nil, serr.ErrUnsupportedObjectKind{
			Kind:   kind,
			Reason: "no layout declared",
		}
	}
	return mapper, nil
}

func Project(buf []byte, kind skind.Kind) (Record, error) {
	mapper, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	record, err := mapper.Project(buf)
	if err != nil {
		return nil, errors.Wrap(err, "slayout.Project error")
	}
	return record, nil
}

func Unproject(record Record) ([]byte, error) {
	if record == nil {
		return nil, errors.New("slayout.Unproject: nil record")
	}
	mapper, err := Lookup(record.Kind())
	if err != nil {
		return nil, err
	}
	bs, err := mapper.Unproject(record)
	if err != nil {
		return nil, errors.Wrap(err, "slayout.Unproject error")
	}
	return bs, nil
}

// Kinds lists the kinds with a declared layout.
func Kinds() []skind.Kind {
	kinds := lo.Keys(registry)
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	})
	return kinds
}
