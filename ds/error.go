package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode is returned from switch arms that a valid value never reaches.
	ErrUnreachableCode struct {
		Caller string
		Value  any
	}
)

func (r ErrUnreachableCode) Error() string {
	if r.Value == nil {
		return fmt.Sprintf("%s: unreachable code", r.Caller)
	}
	return fmt.Sprintf("%s: unreachable code for %v", r.Caller, r.Value)
}
