package sgraphics

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"loco-savior/sawyer/lbytes"
	"loco-savior/sawyer/scompress"
	"loco-savior/sawyer/serr"
)

type extent struct {
	index int
	start int
	end   int
}

func DecodeDescriptor(reader *lbytes.Reader) (*Descriptor, error) {
	readInt16 := lbytes.CreateInt16ReadFunction(reader)
	readUint16 := lbytes.CreateUint16ReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "offset", ReadFunction: lbytes.CreateUint32ReadFunction(reader)},
		{Key: "width", ReadFunction: readInt16},
		{Key: "height", ReadFunction: readInt16},
		{Key: "x_offset", ReadFunction: readInt16},
		{Key: "y_offset", ReadFunction: readInt16},
		{Key: "flags", ReadFunction: readUint16},
		{Key: "zoom_offset", ReadFunction: readUint16},
	}

	descriptor, err := lbytes.ExecuteInstructions[Descriptor](instructions)
	if err != nil {
		return nil, errors.Wrap(err, "sgraphics.DecodeDescriptor error")
	}
	return descriptor, nil
}

// Decode reads the graphics table at the start of buf and returns it with the number of bytes
// it occupied.
func Decode(buf []byte) (*Table, int, error) {
	if len(buf) < HeaderSize {
		return nil, 0, serr.ErrTruncatedPayload{
			Section: section,
			Offset:  0,
			Want:    HeaderSize,
			Got:     len(buf),
		}
	}
	reader := lbytes.NewBytesReader(buf)
	numEntries, _ := reader.ReadUint32()
	totalSize, _ := reader.ReadUint32()

	regionStart := HeaderSize + int(numEntries)*DescriptorSize
	end := regionStart + int(totalSize)
	if end > len(buf) {
		return nil, 0, serr.ErrTruncatedPayload{
			Section: section,
			Offset:  HeaderSize,
			Want:    end,
			Got:     len(buf),
		}
	}

	descriptors := make([]Descriptor, 0, numEntries)
	for i := 0; i < int(numEntries); i++ {
		descriptor, err := DecodeDescriptor(reader)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "sgraphics.Decode error reading descriptor %d", i)
		}
		descriptors = append(descriptors, *descriptor)
	}

	canonical, err := resolve(descriptors)
	if err != nil {
		return nil, 0, err
	}

	region := buf[regionStart:end]
	images := make([]Image, len(descriptors))
	extents := make([]extent, 0, len(descriptors))
	for i, descriptor := range descriptors {
		images[i] = Image{
			Descriptor: descriptor,
			Canonical:  canonical[i],
		}
		if descriptor.Flags.Has(Duplicate) {
			continue
		}
		pixels, ext, err := decodePixels(region, i, descriptor)
		if err != nil {
			return nil, 0, err
		}
		images[i].Pixels = pixels
		extents = append(extents, ext)
	}

	table := Table{
		Images:     images,
		Suspicious: findOverlaps(extents),
	}
	return &table, end, nil
}

func decodePixels(region []byte, index int, descriptor Descriptor) ([]byte, extent, error) {
	start := int(descriptor.Offset)
	overrun := func(offset int, size int) error {
		return serr.ErrLayoutOverrun{
			Kind:         section,
			Field:        fmt.Sprintf("image[%d]", index),
			Offset:       offset,
			Size:         size,
			BufferLength: len(region),
		}
	}

	width, height := int(descriptor.Width), int(descriptor.Height)
	if width < 0 || height < 0 {
		return nil, extent{}, overrun(start, width*height)
	}

	if !descriptor.Flags.Has(RLECompressed) || descriptor.Flags.Has(IsPalette) {
		size := descriptor.PixelCount()
		if start+size > len(region) {
			return nil, extent{}, overrun(start, size)
		}
		pixels := make([]byte, size)
		copy(pixels, region[start:start+size])
		return pixels, extent{index, start, start + size}, nil
	}

	if width*height > MaxImageArea {
		return nil, extent{}, overrun(start, width*height)
	}
	if start+2*height > len(region) {
		return nil, extent{}, overrun(start, 2*height)
	}
	pixels := make([]byte, 0, min(width*height, len(region)*scompress.MaxRun))
	end := start + 2*height
	for row := 0; row < height; row++ {
		rowStart := start + int(binary.LittleEndian.Uint16(region[start+2*row:]))
		if rowStart > len(region) {
			return nil, extent{}, overrun(rowStart, width)
		}
		decoded, consumed, err := scompress.DecodeSpans(region[rowStart:], width)
		if err != nil {
			return nil, extent{}, errors.Wrapf(err, "sgraphics.Decode error in row %d of image %d", row, index)
		}
		pixels = append(pixels, decoded...)
		end = max(end, rowStart+consumed)
	}
	return pixels, extent{index, start, end}, nil
}

// findOverlaps reports pairs of images whose pixel ranges intersect without being identical.
func findOverlaps(extents []extent) []Overlap {
	sorted := make([]extent, 0, len(extents))
	for _, ext := range extents {
		if ext.end > ext.start {
			sorted = append(sorted, ext)
		}
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].start != sorted[j].start {
			return sorted[i].start < sorted[j].start
		}
		return sorted[i].index < sorted[j].index
	})

	var overlaps []Overlap
	for i := range sorted {
		for j := i + 1; j < len(sorted) && sorted[j].start < sorted[i].end; j++ {
			if sorted[j].start == sorted[i].start && sorted[j].end == sorted[i].end {
				continue
			}
			overlaps = append(overlaps, Overlap{
				First:  min(sorted[i].index, sorted[j].index),
				Second: max(sorted[i].index, sorted[j].index),
			})
		}
	}
	sort.Slice(overlaps, func(i, j int) bool {
		if overlaps[i].First != overlaps[j].First {
			return overlaps[i].First < overlaps[j].First
		}
		return overlaps[i].Second < overlaps[j].Second
	})
	return overlaps
}
