package gif

import (
	"image"
	"testing"

	"github.com/matryer/is"
)

func TestNormalizeDisposal(t *testing.T) {
	is := is.New(t)
	is.Equal(normalizeDisposal(DisposalUnspecified), DisposalNone)
	is.Equal(normalizeDisposal(DisposalBackground), DisposalBackground)
	is.Equal(normalizeDisposal(DisposalPrevious), DisposalPrevious)
	for d := Disposal(4); d < 8; d++ {
		is.Equal(normalizeDisposal(d), DisposalNone)
	}
}

func TestFillRectStaysInsideRect(t *testing.T) {
	is := is.New(t)
	dst := image.NewRGBA(image.Rect(0, 0, 3, 3))

	fillRect(dst, image.Rect(1, 1, 2, 3), 0xFF0000FF)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			c := dst.RGBAAt(x, y)
			if x == 1 && y >= 1 {
				is.Equal([4]uint8{c.R, c.G, c.B, c.A}, [4]uint8{0, 0, 0xFF, 0xFF})
				continue
			}
			is.Equal(c.A, uint8(0))
		}
	}
}
