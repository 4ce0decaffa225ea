package sgraphics

import (
	"image/color"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loco-savior/sawyer/lbytes"
	"loco-savior/sawyer/serr"
)

func sampleTable() *Table {
	return &Table{
		Images: []Image{
			{
				Descriptor: Descriptor{Width: 2, Height: 2, Flags: HasTransparency},
				Pixels:     []byte{0, 2, 3, 4},
			},
			{
				Descriptor: Descriptor{Width: 3, Height: 2, XOffset: -1, YOffset: -2, Flags: RLECompressed},
				Pixels:     []byte{0, 0, 0, 5, 6, 7},
			},
			{Descriptor: Descriptor{Offset: 1, Width: 3, Height: 2, Flags: Duplicate}},
			{Descriptor: Descriptor{Offset: 2, Width: 3, Height: 2, Flags: Duplicate}},
			{
				Descriptor: Descriptor{Width: 2, Height: 1, Flags: IsPalette},
				Pixels:     []byte{10, 20, 30, 40, 50, 60},
			},
		},
	}
}

// rawTable builds a table by hand so that offsets can be anything.
func rawTable(totalSize uint32, region []byte, descriptors ...Descriptor) []byte {
	bs := lbytes.EncodeUint32(uint32(len(descriptors)))
	bs = append(bs, lbytes.EncodeUint32(totalSize)...)
	for _, descriptor := range descriptors {
		bs = append(bs, EncodeDescriptor(descriptor)...)
	}
	return append(bs, region...)
}

func TestEncode_RoundTrip(t *testing.T) {
	bs, err := Encode(sampleTable())
	require.NoError(t, err)
	numEntries, err := lbytes.NewBytesReader(bs).ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(5), numEntries)

	table, consumed, err := Decode(append(bs, 0xEE))
	require.NoError(t, err)
	assert.Equal(t, len(bs), consumed)
	assert.Empty(t, table.Suspicious)

	expected := sampleTable()
	require.Len(t, table.Images, len(expected.Images))
	for i, image := range table.Images {
		assert.Equal(t, expected.Images[i].Pixels, image.Pixels, "image %d", i)
		assert.Equal(t, expected.Images[i].Flags, image.Flags, "image %d", i)
		assert.Equal(t, expected.Images[i].XOffset, image.XOffset, "image %d", i)
	}
	assert.Equal(t, []int{0, 1, 1, 1, 4}, []int{
		table.Images[0].Canonical,
		table.Images[1].Canonical,
		table.Images[2].Canonical,
		table.Images[3].Canonical,
		table.Images[4].Canonical,
	})
	assert.Equal(t, []byte{0, 0, 0, 5, 6, 7}, table.Pixels(3))

	// raw 4 bytes, then 4 bytes of row offsets and two rows, then the palette
	assert.Equal(t, uint32(0), table.Images[0].Offset)
	assert.Equal(t, uint32(4), table.Images[1].Offset)
	assert.Equal(t, uint32(1), table.Images[2].Offset)
	assert.Equal(t, uint32(2), table.Images[3].Offset)
	assert.Equal(t, uint32(14), table.Images[4].Offset)

	again, err := Encode(table)
	require.NoError(t, err)
	assert.Equal(t, bs, again)
}

func TestEncode_SharesIdenticalPixels(t *testing.T) {
	table := &Table{
		Images: []Image{
			{Descriptor: Descriptor{Width: 2, Height: 1}, Pixels: []byte{1, 2}},
			{Descriptor: Descriptor{Width: 2, Height: 1}, Pixels: []byte{1, 2}},
		},
	}
	bs, err := Encode(table)
	require.NoError(t, err)

	decoded, _, err := Decode(bs)
	require.NoError(t, err)
	assert.Equal(t, decoded.Images[0].Offset, decoded.Images[1].Offset)
	assert.Empty(t, decoded.Suspicious)
}

func TestEncode_WrongPixelCount(t *testing.T) {
	table := &Table{
		Images: []Image{
			{Descriptor: Descriptor{Width: 2, Height: 2, Flags: RLECompressed}, Pixels: []byte{1, 2, 3}},
		},
	}
	_, err := Encode(table)
	assert.Error(t, err)
}

func TestDecode_DuplicateChain(t *testing.T) {
	descriptors := []Descriptor{{Width: 1, Height: 1}}
	for i := 1; i <= 10; i++ {
		descriptors = append(descriptors, Descriptor{Offset: uint32(i - 1), Flags: Duplicate})
	}
	table, _, err := Decode(rawTable(1, []byte{9}, descriptors...))
	require.NoError(t, err)

	for i := range table.Images {
		// follow the chain by hand
		current := i
		for table.Images[current].Flags.Has(Duplicate) {
			current = int(table.Images[current].Offset)
		}
		assert.Equal(t, current, table.Images[i].Canonical)
		assert.Equal(t, []byte{9}, table.Pixels(i))
	}
}

func TestDecode_InvalidReference(t *testing.T) {
	cases := map[string][]Descriptor{
		"self reference": {
			{Offset: 0, Flags: Duplicate},
		},
		"reference cycle": {
			{Offset: 1, Flags: Duplicate},
			{Offset: 2, Flags: Duplicate},
			{Offset: 0, Flags: Duplicate},
		},
		"dangling reference": {
			{Width: 1, Height: 1},
			{Offset: 5, Flags: Duplicate},
		},
	}
	for reason, descriptors := range cases {
		_, _, err := Decode(rawTable(1, []byte{0}, descriptors...))
		var invalid serr.ErrInvalidImageReference
		require.True(t, errors.As(err, &invalid), reason)
		assert.Equal(t, reason, invalid.Reason)

		table := &Table{Images: make([]Image, len(descriptors))}
		for i, descriptor := range descriptors {
			table.Images[i] = Image{Descriptor: descriptor, Pixels: []byte{0}}
		}
		_, err = Encode(table)
		assert.ErrorAs(t, err, &serr.ErrInvalidImageReference{}, reason)
	}
}

func TestDecode_Overlap(t *testing.T) {
	table, _, err := Decode(rawTable(
		3, []byte{1, 2, 3},
		Descriptor{Offset: 0, Width: 2, Height: 1},
		Descriptor{Offset: 1, Width: 2, Height: 1},
		Descriptor{Offset: 0, Width: 2, Height: 1},
	))
	require.NoError(t, err)
	assert.Equal(t, []Overlap{{First: 0, Second: 1}, {First: 1, Second: 2}}, table.Suspicious)
	assert.Equal(t, []byte{2, 3}, table.Images[1].Pixels)
}

func TestDecode_Overrun(t *testing.T) {
	_, _, err := Decode(rawTable(4, []byte{1, 2, 3, 4}, Descriptor{Offset: 2, Width: 2, Height: 2}))
	var overrun serr.ErrLayoutOverrun
	require.True(t, errors.As(err, &overrun))
	assert.Equal(t, "graphics_table", overrun.Kind)
	assert.Equal(t, "image[0]", overrun.Field)
	assert.Equal(t, 2, overrun.Offset)
	assert.Equal(t, 4, overrun.Size)
	assert.Equal(t, 4, overrun.BufferLength)

	_, _, err = Decode(rawTable(2, []byte{0xFF, 0x00}, Descriptor{Width: 2, Height: 2, Flags: RLECompressed}))
	assert.ErrorAs(t, err, &serr.ErrLayoutOverrun{})
}

func TestDecode_RowsSharingSpans(t *testing.T) {
	const width, height = 256, 64
	region := make([]byte, 0, 2*height+4)
	for row := 0; row < height; row++ {
		region = append(region, lbytes.EncodeUint16(2*height)...)
	}
	// 129 then 127 copies of 9
	region = append(region, 0x80, 9, 0x82, 9)

	table, _, err := Decode(rawTable(
		uint32(len(region)),
		region,
		Descriptor{Width: width, Height: height, Flags: RLECompressed},
	))
	require.NoError(t, err)
	assert.Len(t, table.Images[0].Pixels, width*height)
	assert.Equal(t, byte(9), table.Images[0].Pixels[width*height-1])

	_, _, err = Decode(rawTable(2, []byte{0, 0}, Descriptor{Width: 8192, Height: 4096, Flags: RLECompressed}))
	var overrun serr.ErrLayoutOverrun
	require.True(t, errors.As(err, &overrun))
	assert.Equal(t, "image[0]", overrun.Field)
	assert.Equal(t, 8192*4096, overrun.Size)
}

func TestDecode_Truncated(t *testing.T) {
	bs := rawTable(4, []byte{1, 2, 3, 4}, Descriptor{Width: 2, Height: 2})
	for _, n := range []int{0, 7, HeaderSize + DescriptorSize, len(bs) - 1} {
		_, _, err := Decode(bs[:n])
		assert.ErrorAs(t, err, &serr.ErrTruncatedPayload{}, "prefix %d", n)
	}
}

func TestRender(t *testing.T) {
	bs, err := Encode(sampleTable())
	require.NoError(t, err)
	table, _, err := Decode(bs)
	require.NoError(t, err)

	img, err := table.Render(0, GrayscalePalette())
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, []byte{0, 2, 3, 4}, img.Pix)
	assert.Equal(t, color.RGBA{}, img.Palette[0])
	assert.Equal(t, color.RGBA{R: 2, G: 2, B: 2, A: 0xFF}, img.Palette[2])

	duplicate, err := table.Render(3, GrayscalePalette())
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 5, 6, 7}, duplicate.Pix)
	assert.Equal(t, color.RGBA{A: 0xFF}, duplicate.Palette[0])

	_, err = table.Render(4, GrayscalePalette())
	assert.Error(t, err)
	_, err = table.Render(5, GrayscalePalette())
	assert.Error(t, err)
}

func TestLoadPalette(t *testing.T) {
	bs := make([]byte, PaletteFileSize)
	bs[3], bs[4], bs[5] = 10, 20, 30

	palette, err := LoadPalette(bs)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}, palette[1])

	_, err = LoadPalette(bs[:10])
	assert.Error(t, err)
}

func TestTable_Resolve(t *testing.T) {
	table := sampleTable()
	require.NoError(t, table.Resolve())
	assert.Equal(t, 1, table.Images[3].Canonical)
	assert.Equal(t, 4, table.Images[4].Canonical)

	table.Images[1].Flags |= Duplicate
	table.Images[1].Offset = 3
	assert.ErrorAs(t, table.Resolve(), &serr.ErrInvalidImageReference{})
}
