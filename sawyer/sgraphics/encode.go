package sgraphics

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/samber/lo"

	"loco-savior/ds"
	"loco-savior/sawyer/lbytes"
	"loco-savior/sawyer/scompress"
)

func EncodeDescriptor(descriptor Descriptor) []byte {
	bs := make([]byte, 0, DescriptorSize)
	bs = append(bs, lbytes.EncodeUint32(descriptor.Offset)...)
	bs = append(bs, lbytes.EncodeInt16(descriptor.Width)...)
	bs = append(bs, lbytes.EncodeInt16(descriptor.Height)...)
	bs = append(bs, lbytes.EncodeInt16(descriptor.XOffset)...)
	bs = append(bs, lbytes.EncodeInt16(descriptor.YOffset)...)
	bs = append(bs, lbytes.EncodeUint16(uint16(descriptor.Flags))...)
	bs = append(bs, lbytes.EncodeUint16(descriptor.ZoomOffset)...)
	return bs
}

// Encode rebuilds the pixel region from the decoded pixels. Images with identical stored bytes
// share one range; duplicates keep their reference index.
func Encode(table *Table) ([]byte, error) {
	descriptors := lo.Map(table.Images, func(image Image, _ int) Descriptor {
		return image.Descriptor
	})
	if _, err := resolve(descriptors); err != nil {
		return nil, err
	}

	region := make([]byte, 0)
	offsets := map[string]uint32{}
	for i, image := range table.Images {
		if image.Flags.Has(Duplicate) {
			continue
		}
		stored, err := encodePixels(i, image)
		if err != nil {
			return nil, err
		}
		offset, ok := offsets[string(stored)]
		if !ok {
			offset = uint32(len(region))
			region = append(region, stored...)
			if len(stored) > 0 {
				offsets[string(stored)] = offset
			}
		}
		descriptors[i].Offset = offset
	}

	bs := make([]byte, 0, HeaderSize+len(descriptors)*DescriptorSize+len(region))
	bs = append(bs, lbytes.EncodeUint32(uint32(len(descriptors)))...)
	bs = append(bs, lbytes.EncodeUint32(uint32(len(region)))...)
	for _, descriptor := range descriptors {
		bs = append(bs, EncodeDescriptor(descriptor)...)
	}
	bs = append(bs, region...)
	return bs, nil
}

func encodePixels(index int, image Image) ([]byte, error) {
	width, height := int(image.Width), int(image.Height)
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("sgraphics.Encode: image %d has size %dx%d", index, width, height)
	}

	if !image.Flags.Has(RLECompressed) || image.Flags.Has(IsPalette) {
		if len(image.Pixels) != image.PixelCount() {
			return nil, fmt.Errorf(
				"sgraphics.Encode: image %d holds %d pixels, expected %d",
				index, len(image.Pixels), image.PixelCount(),
			)
		}
		return ds.ShallowCopy(image.Pixels), nil
	}

	if len(image.Pixels) != width*height {
		return nil, fmt.Errorf(
			"sgraphics.Encode: image %d holds %d pixels, expected %d",
			index, len(image.Pixels), width*height,
		)
	}
	rows := lo.Times(height, func(_ int) []byte {
		return nil
	})
	if width > 0 {
		rows = ds.MakeChunks(image.Pixels, width)
	}

	stored := make([]byte, 2*height)
	for row, pixels := range rows {
		if len(stored) > math.MaxUint16 {
			return nil, fmt.Errorf("sgraphics.Encode: row %d of image %d starts past 64KiB", row, index)
		}
		binary.LittleEndian.PutUint16(stored[2*row:], uint16(len(stored)))
		stored = append(stored, scompress.EncodeRunLengthSingle(pixels)...)
	}
	return stored, nil
}
