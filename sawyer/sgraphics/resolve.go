package sgraphics

import (
	"github.com/samber/lo"

	"loco-savior/ds"
	"loco-savior/sawyer/serr"
)

// resolve follows duplicate references and returns the canonical index of every image.
func resolve(descriptors []Descriptor) ([]int, error) {
	canonical := lo.Times(len(descriptors), func(_ int) int {
		return -1
	})

	for i := range descriptors {
		chain := ds.NewStack[int]()
		current := i
		for canonical[current] < 0 && descriptors[current].Flags.Has(Duplicate) {
			chain.Push(current)

			target := int(descriptors[current].Offset)
			switch {
			case target == current:
				return nil, serr.ErrInvalidImageReference{Index: current, Target: target, Reason: "self reference"}
			case target >= len(descriptors):
				return nil, serr.ErrInvalidImageReference{Index: current, Target: target, Reason: "dangling reference"}
			case chain.Any(func(index int) bool { return index == target }):
				return nil, serr.ErrInvalidImageReference{Index: current, Target: target, Reason: "reference cycle"}
			}
			current = target
		}

		root := canonical[current]
		if root < 0 {
			root = current
			canonical[current] = current
		}
		for chain.Len() > 0 {
			canonical[chain.Pop()] = root
		}
	}

	return canonical, nil
}

// Resolve recomputes Canonical for every image, for tables not produced by Decode.
func (t *Table) Resolve() error {
	descriptors := lo.Map(t.Images, func(image Image, _ int) Descriptor {
		return image.Descriptor
	})
	canonical, err := resolve(descriptors)
	if err != nil {
		return err
	}
	for i := range t.Images {
		t.Images[i].Canonical = canonical[i]
	}
	return nil
}
