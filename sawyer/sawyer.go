// Package sawyer is the entry point for reading and writing Locomotion object files.
package sawyer

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"loco-savior/sawyer/sfile"
)

const Extension = ".dat"

var defaultCodec = sfile.NewCodec(nil)

// NewCodec returns a codec logging to logger.
func NewCodec(logger hclog.Logger) *sfile.Codec {
	return sfile.NewCodec(logger)
}

// IsObjectFile tells by extension whether path looks like an object file.
func IsObjectFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Extension)
}

func Load(path string) (*sfile.File, error) {
	return defaultCodec.Load(path)
}

func Save(path string, file *sfile.File) error {
	return defaultCodec.Save(path, file)
}

func PeekHeader(path string) (*sfile.Headers, error) {
	return defaultCodec.PeekHeader(path)
}

func Decode(bs []byte) (*sfile.File, error) {
	return sfile.Decode(bs)
}

func Encode(file *sfile.File) ([]byte, error) {
	return sfile.Encode(*file)
}

// DecodeJSON reads an object file and returns its JSON dump.
func DecodeJSON(bs []byte) ([]byte, error) {
	file, err := sfile.Decode(bs)
	if err != nil {
		return nil, err
	}
	return file.MarshalJSON()
}

// EncodeJSON builds an object file from its JSON dump.
func EncodeJSON(bs []byte) ([]byte, error) {
	file, err := sfile.FromJSON(bs)
	if err != nil {
		return nil, err
	}
	return sfile.Encode(*file)
}
