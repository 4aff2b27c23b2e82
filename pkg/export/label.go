package export

import (
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const labelPadding = 3

type labeler struct {
	face font.Face
}

func newLabeler(size float64) (*labeler, error) {
	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &labeler{
		face: truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// draw writes text into the bottom left corner, white over a one pixel
// black shadow so it stays readable on any frame.
func (l *labeler) draw(canvas *image.RGBA, text string) {
	descent := l.face.Metrics().Descent.Ceil()
	x := labelPadding
	y := canvas.Bounds().Max.Y - labelPadding - descent

	drawer := &font.Drawer{Dst: canvas, Face: l.face}
	for _, pass := range []struct {
		src    image.Image
		offset int
	}{
		{image.Black, 1},
		{image.White, 0},
	} {
		drawer.Src = pass.src
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(x + pass.offset),
			Y: fixed.I(y + pass.offset),
		}
		drawer.DrawString(text)
	}
}
