package sgraphics

import (
	"fmt"
	"image"
	"image/color"
)

// PaletteFileSize is the size of a palette stored as 256 RGB triples.
const PaletteFileSize = 256 * 3

// Palette maps the 256 palette indices to colours. It comes from the game, not from object files.
type Palette [256]color.RGBA

func LoadPalette(bs []byte) (*Palette, error) {
	if len(bs) != PaletteFileSize {
		return nil, fmt.Errorf("sgraphics.LoadPalette: expected %d bytes, got %d", PaletteFileSize, len(bs))
	}
	var palette Palette
	for i := range palette {
		palette[i] = color.RGBA{
			R: bs[i*3],
			G: bs[i*3+1],
			B: bs[i*3+2],
			A: 0xFF,
		}
	}
	return &palette, nil
}

func GrayscalePalette() *Palette {
	var palette Palette
	for i := range palette {
		palette[i] = color.RGBA{R: uint8(i), G: uint8(i), B: uint8(i), A: 0xFF}
	}
	return &palette
}

// Colors converts the palette for image.Paletted. With transparent set, index 0 becomes clear.
func (p *Palette) Colors(transparent bool) color.Palette {
	colors := make(color.Palette, len(p))
	for i, c := range p {
		colors[i] = c
	}
	if transparent {
		colors[0] = color.RGBA{}
	}
	return colors
}

// Render draws image index with palette, following duplicates to the pixels they reuse.
func (t *Table) Render(index int, palette *Palette) (*image.Paletted, error) {
	if index < 0 || index >= len(t.Images) {
		return nil, fmt.Errorf("sgraphics.Render: no image %d in a table of %d", index, len(t.Images))
	}
	owner := t.Images[t.Images[index].Canonical]
	if owner.Flags.Has(IsPalette) {
		return nil, fmt.Errorf("sgraphics.Render: image %d is a palette, not a picture", index)
	}

	width, height := int(owner.Width), int(owner.Height)
	out := image.NewPaletted(
		image.Rect(0, 0, width, height),
		palette.Colors(owner.Flags.Has(HasTransparency)),
	)
	copy(out.Pix, owner.Pixels)
	return out, nil
}
