// Package sgraphics reads and writes the graphics table that closes a payload.
//
// The table is a count, the size of the pixel region, one 16 byte descriptor per image and the
// pixel region itself. Descriptors address the region by absolute offset. A duplicate image stores
// no pixels and holds the index of the image it reuses in its offset field instead.
package sgraphics

type (
	Flags uint16

	Descriptor struct {
		Offset     uint32 `json:"offset"`
		Width      int16  `json:"width"`
		Height     int16  `json:"height"`
		XOffset    int16  `json:"x_offset"`
		YOffset    int16  `json:"y_offset"`
		Flags      Flags  `json:"flags"`
		ZoomOffset uint16 `json:"zoom_offset"`
	}

	Image struct {
		Descriptor
		// Pixels holds palette indices, row by row, already expanded from any run-length form.
		// Duplicates have none.
		Pixels []byte `json:"pixels,omitempty"`
		// Canonical is the index of the image owning the pixels, the image itself unless duplicated.
		Canonical int `json:"-"`
	}

	// Overlap is a pair of images sharing part of the pixel region without being aliases.
	Overlap struct {
		First  int `json:"first"`
		Second int `json:"second"`
	}

	Table struct {
		Images     []Image   `json:"images"`
		Suspicious []Overlap `json:"suspicious,omitempty"`
	}
)

const (
	HasTransparency Flags = 0x01
	Unknown1        Flags = 0x02
	RLECompressed   Flags = 0x04
	IsPalette       Flags = 0x08
	HasZoomSprites  Flags = 0x10
	NoZoomDraw      Flags = 0x20
	Duplicate       Flags = 0x40
)

const (
	// MaxImageArea bounds the pixels of one run-length image, whose rows may all share span data.
	MaxImageArea   = 1 << 24
	HeaderSize     = 8
	DescriptorSize = 16
	section        = "graphics_table"
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// PixelCount is the number of palette indices the image holds once expanded.
func (d Descriptor) PixelCount() int {
	if d.Width <= 0 || d.Height <= 0 {
		return 0
	}
	if d.Flags.Has(IsPalette) {
		return int(d.Width) * 3
	}
	return int(d.Width) * int(d.Height)
}

// Pixels returns the pixels of image index, following duplicates.
func (t *Table) Pixels(index int) []byte {
	return t.Images[t.Images[index].Canonical].Pixels
}
