package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepeat(t *testing.T) {
	assert.Equal(t, []byte{7, 7, 7}, Repeat(3, byte(7)))
	assert.Empty(t, Repeat(0, "x"))
}

func TestShallowCopy(t *testing.T) {
	original := []int{1, 2, 3}
	copied := ShallowCopy(original)
	copied[0] = 9
	assert.Equal(t, []int{1, 2, 3}, original)
	assert.Nil(t, ShallowCopy[int](nil))
}

func TestErrUnreachableCode(t *testing.T) {
	assert.Equal(t, "f: unreachable code", ErrUnreachableCode{Caller: "f"}.Error())
	assert.Equal(t, "f: unreachable code for 7", ErrUnreachableCode{Caller: "f", Value: 7}.Error())
}
