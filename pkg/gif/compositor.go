package gif

import "image"

// Disposal says how a frame's area is treated before the next frame paints.
type Disposal uint8

const (
	DisposalUnspecified Disposal = 0
	DisposalNone        Disposal = 1
	DisposalBackground  Disposal = 2
	DisposalPrevious    Disposal = 3
)

// normalizeDisposal folds unspecified and the reserved values 4-7 into
// leave in place.
func normalizeDisposal(d Disposal) Disposal {
	switch d {
	case DisposalBackground, DisposalPrevious:
		return d
	default:
		return DisposalNone
	}
}

// graphicControl is the state carried by the last graphic control extension.
type graphicControl struct {
	disposal    Disposal
	transparent bool
	transIndex  uint8
	delay       int
}

// priorFrame is what the compositor needs to know about the frame that was
// painted last.
type priorFrame struct {
	disposal   Disposal
	rect       image.Rectangle
	background uint32
}

type compositor struct {
	bounds image.Rectangle
}

// base builds the canvas the next frame paints onto from the frames decoded
// so far, which are only read from.
func (c compositor) base(history []Frame, prev *priorFrame, transparent bool) *image.RGBA {
	dst := image.NewRGBA(c.bounds)
	if prev == nil || len(history) == 0 {
		return dst
	}

	switch prev.disposal {
	case DisposalPrevious:
		if len(history) < 2 {
			return dst
		}
		copy(dst.Pix, history[len(history)-2].Image.Pix)
	case DisposalBackground:
		copy(dst.Pix, history[len(history)-1].Image.Pix)
		fill := prev.background
		if transparent {
			fill = 0
		}
		fillRect(dst, prev.rect.Intersect(c.bounds), fill)
	default:
		copy(dst.Pix, history[len(history)-1].Image.Pix)
	}
	return dst
}

// paintRow draws one decoded row of a frame onto dst. row is the frame row
// it belongs to. The transparent index is skipped and anything past the
// canvas edge is dropped.
func (c compositor) paintRow(dst *image.RGBA, line []byte, rect image.Rectangle, row int, ct *colorTable, gc graphicControl) {
	y := rect.Min.Y + row
	if y >= c.bounds.Max.Y {
		return
	}
	visible := len(line)
	if over := rect.Min.X + visible - c.bounds.Max.X; over > 0 {
		visible -= over
	}
	if visible <= 0 {
		return
	}

	o := dst.PixOffset(rect.Min.X, y)
	for _, idx := range line[:visible] {
		if !gc.transparent || idx != gc.transIndex {
			setPixel(dst.Pix[o:o+4], ct[idx])
		}
		o += 4
	}
}

func fillRect(dst *image.RGBA, r image.Rectangle, c uint32) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		o := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			setPixel(dst.Pix[o:o+4], c)
			o += 4
		}
	}
}

// setPixel stores a packed color. Table colors are opaque or fully
// transparent, so they are already premultiplied.
func setPixel(p []byte, c uint32) {
	p[0] = uint8(c >> 16)
	p[1] = uint8(c >> 8)
	p[2] = uint8(c)
	p[3] = uint8(c >> 24)
}
