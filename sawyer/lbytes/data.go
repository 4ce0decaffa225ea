// Package lbytes reads and writes the little endian integers and legacy text of object files.
package lbytes

import (
	"bytes"
)

type (
	// Reader tracks how far into an object file it has read, for error offsets.
	Reader struct {
		bytes.Reader
	}
	// Instruction names one header field and how to read it.
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)
