package gif

import (
	"image/color"
	"io"
)

// colorTable holds packed 0xAARRGGBB colors. Entries past the table's
// declared size stay 0, transparent black.
type colorTable [256]uint32

// read fills the table with count RGB triplets from r, using raw as scratch.
func (ct *colorTable) read(r io.Reader, count int, raw []byte) error {
	raw = raw[:3*count]
	if _, err := io.ReadFull(r, raw); err != nil {
		return readErr(err, "color table")
	}

	j := 0
	for i := 0; i < count; i++ {
		ct[i] = 0xFF000000 | uint32(raw[j])<<16 | uint32(raw[j+1])<<8 | uint32(raw[j+2])
		j += 3
	}
	for i := count; i < len(ct); i++ {
		ct[i] = 0
	}
	return nil
}

func tableSize(packed byte) int {
	return 2 << (packed & fColorTableSize)
}

func rgba(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}
