// Package gif decodes GIF animations into fully composited RGBA frames.
package gif

import (
	"bufio"
	"errors"
	"image"
	"io"

	"github.com/tauraamui/gifreel/pkg/log"
)

// Section indicators.
const (
	sExtension       = 0x21
	sImageDescriptor = 0x2C
	sTrailer         = 0x3B
)

// Extensions.
const (
	eGraphicControl = 0xF9
	eApplication    = 0xFF
)

// Masks etc.
const (
	// Fields.
	fColorTable     = 1 << 7
	fColorTableSize = 7

	// Image fields.
	ifLocalColorTable = 1 << 7
	ifInterlace       = 1 << 6

	// Graphic control flags.
	gcTransparentColorSet = 1 << 0
	gcDisposalMethod      = 7 << 2
)

// loopingApplications are the application identifiers whose data
// sub-blocks carry a loop count.
var loopingApplications = map[string]bool{
	"NETSCAPE2.0": true,
	"ANIMEXTS1.0": true,
}

type decoder struct {
	r  reader
	br blockReader
	ws *workspace

	width, height int
	bgIndex       uint8
	global        *colorTable
	globalSize    int
	comp          compositor

	gc        graphicControl
	prev      *priorFrame
	loopCount int
	frames    []Frame

	tmp [16]byte
}

func newDecoder(r io.Reader) *decoder {
	rr, ok := r.(reader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	ws := &workspace{}
	return &decoder{
		r:         rr,
		br:        blockReader{r: rr, buf: &ws.block},
		ws:        ws,
		gc:        graphicControl{disposal: DisposalNone},
		loopCount: PlayOnce,
	}
}

// Decode reads a whole GIF from r and returns every frame composited onto
// the logical screen. On error no frames are returned.
func Decode(r io.Reader) (*Animation, error) {
	d := newDecoder(r)
	if err := d.decode(); err != nil {
		return nil, err
	}
	return &Animation{
		Frames:    d.frames,
		Width:     d.width,
		Height:    d.height,
		LoopCount: d.loopCount,
	}, nil
}

// DecodeConfig reads the header, logical screen descriptor and global color
// table only.
func DecodeConfig(r io.Reader) (Config, error) {
	d := newDecoder(r)
	if err := d.readHeader(); err != nil {
		return Config{}, err
	}
	cfg := Config{Width: d.width, Height: d.height}
	if d.global != nil {
		cfg.GlobalColors = d.globalSize
		cfg.Background = rgba(d.global[d.bgIndex])
	}
	return cfg, nil
}

func (d *decoder) decode() error {
	if err := d.readHeader(); err != nil {
		return err
	}

	for {
		tag, err := d.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("gif: stream ended without trailer after %d frames", len(d.frames))
				return nil
			}
			return readErr(err, "block tag")
		}

		switch tag {
		case sImageDescriptor:
			err = d.readImage()
		case sExtension:
			err = d.readExtension()
		case sTrailer:
			return nil
		default:
			return malformed("unknown block tag 0x%.2x", tag)
		}
		if err != nil {
			return err
		}
	}
}

func (d *decoder) readFull(p []byte, what string) error {
	if _, err := io.ReadFull(d.r, p); err != nil {
		return readErr(err, what)
	}
	return nil
}

func (d *decoder) readHeader() error {
	sig := d.tmp[:6]
	if err := d.readFull(sig, "signature"); err != nil {
		return err
	}
	if string(sig[:3]) != "GIF" {
		return malformed("unrecognized signature %q", sig)
	}

	lsd := d.tmp[:7]
	if err := d.readFull(lsd, "logical screen descriptor"); err != nil {
		return err
	}
	d.width = int(le16(lsd[0:2]))
	d.height = int(le16(lsd[2:4]))
	packed := lsd[4]
	d.bgIndex = lsd[5]
	d.comp = compositor{bounds: image.Rect(0, 0, d.width, d.height)}

	if packed&fColorTable != 0 {
		d.global = &colorTable{}
		d.globalSize = tableSize(packed)
		if err := d.global.read(d.r, d.globalSize, d.ws.raw[:]); err != nil {
			return err
		}
	}
	return nil
}

func (d *decoder) readExtension() error {
	label, err := d.r.ReadByte()
	if err != nil {
		return readErr(err, "extension label")
	}

	d.br.begin()
	switch label {
	case eGraphicControl:
		return d.readGraphicControl()
	case eApplication:
		return d.readApplication()
	default:
		return d.br.skipBlocks()
	}
}

func (d *decoder) readGraphicControl() error {
	b, err := d.br.readBlock()
	if err != nil {
		return err
	}
	if len(b) < 4 {
		return malformed("graphic control block of %d bytes", len(b))
	}

	packed := b[0]
	d.gc = graphicControl{
		disposal:    normalizeDisposal(Disposal((packed & gcDisposalMethod) >> 2)),
		transparent: packed&gcTransparentColorSet != 0,
		delay:       int(le16(b[1:3])) * 10,
		transIndex:  b[3],
	}
	return d.br.skipBlocks()
}

func (d *decoder) readApplication() error {
	id, err := d.br.readBlock()
	if err != nil || d.br.terminated() {
		return err
	}
	if !loopingApplications[string(id)] {
		return d.br.skipBlocks()
	}

	for {
		b, err := d.br.readBlock()
		if err != nil || d.br.terminated() {
			return err
		}
		if len(b) >= 3 && b[0] == 1 {
			d.loopCount = int(le16(b[1:3]))
		}
	}
}

func (d *decoder) readImage() error {
	desc := d.tmp[:9]
	if err := d.readFull(desc, "image descriptor"); err != nil {
		return err
	}
	left, top := int(le16(desc[0:2])), int(le16(desc[2:4]))
	rect := image.Rect(left, top, left+int(le16(desc[4:6])), top+int(le16(desc[6:8])))
	packed := desc[8]
	index := len(d.frames)

	ct := d.global
	local := packed&ifLocalColorTable != 0
	if local {
		if err := d.ws.local.read(d.r, tableSize(packed), d.ws.raw[:]); err != nil {
			return err
		}
		ct = &d.ws.local
	}
	if ct == nil {
		return malformed("frame %d has no color table", index)
	}

	litWidth, err := d.r.ReadByte()
	if err != nil {
		return readErr(err, "lzw minimum code size")
	}
	if litWidth < 2 || litWidth > 8 {
		return malformed("frame %d lzw minimum code size %d out of range", index, litWidth)
	}

	background := d.background(local)
	rows := d.ws.rowOrder(rect.Dy(), packed&ifInterlace != 0)
	img := d.comp.base(d.frames, d.prev, d.gc.transparent)
	gc := d.gc

	npix := rect.Dx() * rect.Dy()
	d.br.begin()
	n, err := d.ws.decompress(&d.br, int(litWidth), rect.Dx(), rect.Dy(), func(i int, line []byte) {
		d.comp.paintRow(img, line, rect, rows[i], ct, gc)
	})
	exhausted := err != nil
	if exhausted && !errors.Is(err, ErrTruncatedStream) {
		return err
	}
	if !exhausted && !d.br.terminated() {
		if err := d.br.skipBlocks(); err != nil {
			if !errors.Is(err, ErrTruncatedStream) {
				return err
			}
			exhausted = true
		}
	}
	if n < npix {
		log.Debug("gif: frame %d image data ended after %d of %d pixels", index, n, npix)
	}
	if exhausted {
		log.Debug("gif: stream ended inside frame %d image data", index)
	}

	d.frames = append(d.frames, Frame{Image: img, Delay: d.gc.delay})
	d.prev = &priorFrame{disposal: d.gc.disposal, rect: rect, background: background}
	return nil
}

// background is the color a background disposal of the current frame fills
// with. It is neutralized when the global background index is also the
// active transparent index, so disposal does not paint over transparency.
func (d *decoder) background(local bool) uint32 {
	if d.global == nil {
		return 0
	}
	if !local && d.gc.transparent && d.gc.transIndex == d.bgIndex {
		return 0
	}
	return d.global[d.bgIndex]
}

func le16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
