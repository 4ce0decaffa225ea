package sfile

import (
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"

	"loco-savior/sawyer/sgraphics"
	"loco-savior/sawyer/sheader"
	"loco-savior/sawyer/slayout"
	"loco-savior/sawyer/sstring"
)

// document is the JSON form of a File read back by FromJSON. The object stays raw until the
// identity header tells which record type to decode it into.
type document struct {
	Identity sheader.Identity `json:"identity"`
	Payload  sheader.Payload  `json:"payload"`
	Object   json.RawMessage  `json:"object"`
	Strings  *sstring.Table   `json:"strings"`
	Graphics *sgraphics.Table `json:"graphics"`
	Trailing []byte           `json:"trailing"`
}

// MarshalJSON dumps the file with object fields in layout order.
func (f File) MarshalJSON() ([]byte, error) {
	identity := orderedmap.New()
	identity.Set("kind", f.Identity.Kind())
	identity.Set("source_game", f.Identity.SourceGame().String())
	identity.Set("flags", f.Identity.Flags)
	identity.Set("name", f.Identity.Name)
	identity.Set("checksum", f.Identity.Checksum)

	om := orderedmap.New()
	om.Set("identity", identity)
	om.Set("payload", f.Payload)

	if f.Object != nil {
		mapper, err := slayout.Lookup(f.Object.Kind())
		if err != nil {
			return nil, err
		}
		object, err := mapper.Describe(f.Object)
		if err != nil {
			return nil, errors.Wrap(err, "sfile.File.MarshalJSON error")
		}
		om.Set("object", object)
	}
	if f.Strings != nil {
		om.Set("strings", f.Strings)
	}
	if f.Graphics != nil {
		om.Set("graphics", f.Graphics)
	}
	if len(f.Trailing) > 0 {
		om.Set("trailing", f.Trailing)
	}

	return json.Marshal(om)
}

// FromJSON reads a file back from its JSON dump.
func FromJSON(bs []byte) (*File, error) {
	doc := document{}
	if err := json.Unmarshal(bs, &doc); err != nil {
		return nil, errors.Wrap(err, "sfile.FromJSON error")
	}

	mapper, err := slayout.Lookup(doc.Identity.Kind())
	if err != nil {
		return nil, err
	}
	object := mapper.New()
	if len(doc.Object) == 0 {
		return nil, errors.New("sfile.FromJSON: document has no object")
	}
	if err := json.Unmarshal(doc.Object, object); err != nil {
		return nil, errors.Wrapf(err, "sfile.FromJSON error reading %s object", mapper.Kind())
	}
	if doc.Graphics != nil {
		if err := doc.Graphics.Resolve(); err != nil {
			return nil, errors.Wrap(err, "sfile.FromJSON error")
		}
	}

	return &File{
		Identity: doc.Identity,
		Payload:  doc.Payload,
		Object:   object,
		Strings:  doc.Strings,
		Graphics: doc.Graphics,
		Trailing: doc.Trailing,
	}, nil
}
