package sfile

import (
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"loco-savior/ds"
)

// Codec loads and saves object files on disk.
type Codec struct {
	logger hclog.Logger
}

func NewCodec(logger hclog.Logger) *Codec {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Codec{
		logger: logger,
	}
}

func (c *Codec) Load(path string) (*File, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `sfile.Codec.Load error reading "%s"`, path)
	}
	file, err := Decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `sfile.Codec.Load error decoding "%s"`, path)
	}

	c.logger.Debug(
		"loaded object",
		"path", path,
		"name", file.Identity.Name.String(),
		"kind", file.Identity.Kind().String(),
		"encoding", file.Payload.Encoding.String(),
		"length", file.Payload.Length,
	)
	if file.Graphics != nil {
		for _, overlap := range file.Graphics.Suspicious {
			c.logger.Warn(
				"images share pixel bytes without being aliases",
				"path", path,
				"first", overlap.First,
				"second", overlap.Second,
			)
		}
	}
	return file, nil
}

func (c *Codec) Save(path string, file *File) error {
	bs, err := Encode(*file)
	if err != nil {
		return errors.Wrapf(err, `sfile.Codec.Save error encoding "%s"`, path)
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return errors.Wrapf(err, `sfile.Codec.Save error writing "%s"`, path)
	}
	c.logger.Debug("saved object", "path", path, "size", len(bs))
	return nil
}

// PeekHeader decodes the headers of the file at path without decompressing its payload.
func (c *Codec) PeekHeader(path string) (*Headers, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `sfile.Codec.PeekHeader error reading "%s"`, path)
	}
	headers, err := DecodeHeaders(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `sfile.Codec.PeekHeader error decoding "%s"`, path)
	}
	c.logger.Trace("peeked header", "path", path, "headers", ds.DumpJSON(headers))
	return headers, nil
}
