package index

import (
	"encoding/json"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"loco-savior/sawyer/lbytes"
)

// MarshalSnapshot encodes the entries as zstd compressed JSON followed by the little endian
// xxhash64 of the compressed bytes.
func (r *Index) MarshalSnapshot() ([]byte, error) {
	bs, err := json.Marshal(r.Entries())
	if err != nil {
		return nil, errors.Wrap(err, "index.MarshalSnapshot error")
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, errors.Wrap(err, "index.MarshalSnapshot error creating encoder")
	}
	defer encoder.Close()

	compressed := encoder.EncodeAll(bs, nil)
	return append(compressed, lbytes.EncodeUint64(xxhash.Sum64(compressed))...), nil
}

// UnmarshalSnapshot adds the entries of a snapshot to the index.
func (r *Index) UnmarshalSnapshot(bs []byte) error {
	if len(bs) < footerSize {
		return ErrCorruptSnapshot{}
	}
	compressed := bs[:len(bs)-footerSize]
	expected, err := lbytes.NewBytesReader(bs[len(bs)-footerSize:]).ReadUint64()
	if err != nil {
		return errors.Wrap(err, "index.UnmarshalSnapshot error reading footer")
	}
	actual := xxhash.Sum64(compressed)
	if expected != actual {
		return ErrCorruptSnapshot{
			Expected: expected,
			Actual:   actual,
		}
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return errors.Wrap(err, "index.UnmarshalSnapshot error creating decoder")
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return errors.Wrap(err, "index.UnmarshalSnapshot error decompressing")
	}
	entries := make([]Entry, 0)
	if err := json.Unmarshal(decompressed, &entries); err != nil {
		return errors.Wrap(err, "index.UnmarshalSnapshot error")
	}
	for _, entry := range entries {
		r.Put(entry)
	}
	return nil
}

func (r *Index) SaveFile(path string) error {
	bs, err := r.MarshalSnapshot()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, bs, 0644); err != nil {
		return errors.Wrapf(err, `index.SaveFile error writing "%s"`, path)
	}
	return nil
}

// LoadFile reads a snapshot into a new index of the given size.
// A missing file yields an empty index.
func LoadFile(path string, size int) (*Index, error) {
	index, err := New(size)
	if err != nil {
		return nil, err
	}
	bs, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return index, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, `index.LoadFile error reading "%s"`, path)
	}
	if err := index.UnmarshalSnapshot(bs); err != nil {
		var errCorrupt ErrCorruptSnapshot
		if errors.As(err, &errCorrupt) {
			errCorrupt.Path = path
			return nil, errCorrupt
		}
		return nil, errors.Wrapf(err, `index.LoadFile error decoding "%s"`, path)
	}
	return index, nil
}
