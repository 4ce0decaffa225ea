// Package index keeps a cache of object file headers and scans directories of object files.
package index

import (
	"fmt"
	"os"
	"time"

	"loco-savior/sawyer/sfile"
)

type (
	// Entry is what the index remembers about one file on disk.
	Entry struct {
		Path    string    `json:"path"`
		Size    int64     `json:"size"`
		ModTime time.Time `json:"mod_time"`
		// Hash is the xxhash64 of the whole file content.
		Hash uint64 `json:"hash"`
		sfile.Headers
	}

	Mode int

	// Result is reported once per scanned file.
	Result struct {
		Path  string
		Entry Entry
		// Cached is set when the entry came from the index without reading the file.
		Cached bool
		Err    error
	}

	ErrCorruptSnapshot struct {
		Path     string
		Expected uint64
		Actual   uint64
	}
)

const (
	// ModePeek reads the headers only.
	ModePeek Mode = iota
	// ModeFull decodes every file completely.
	ModeFull
)

const (
	DefaultSize = 4096
	footerSize  = 8
)

func (r Mode) String() string {
	switch r {
	case ModePeek:
		return "peek"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", int(r))
	}
}

// Fresh tells whether the entry still describes the file behind info.
func (r Entry) Fresh(info os.FileInfo) bool {
	return r.Size == info.Size() && r.ModTime.Equal(info.ModTime())
}

func (r ErrCorruptSnapshot) Error() string {
	return fmt.Sprintf(
		`index snapshot "%s" is corrupt: expected hash %016x, got %016x`,
		r.Path, r.Expected, r.Actual,
	)
}
