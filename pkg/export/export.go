// Package export writes decoded animations out as numbered PNG frames with a
// JSON manifest describing their timing.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/tauraamui/gifreel/pkg/gif"
	"github.com/tauraamui/gifreel/pkg/log"
	"github.com/tauraamui/xerror"
	"golang.org/x/image/draw"
)

const (
	Failed = xerror.Kind("export_failed")

	manifestFileName = "manifest.json"
	defaultLabelSize = 12.0
)

var ErrNoFrames = errors.New("animation has no frames")

type Options struct {
	// Scale multiplies both dimensions, nearest neighbour. Values below 1
	// are treated as 1.
	Scale int
	// Label stamps each frame with its position and delay.
	Label     bool
	LabelSize float64
}

type Manifest struct {
	ID         string          `json:"id"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	LoopCount  int             `json:"loop_count"`
	DurationMS int64           `json:"duration_ms"`
	Frames     []ManifestFrame `json:"frames"`
}

type ManifestFrame struct {
	File    string `json:"file"`
	DelayMS int    `json:"delay_ms"`
}

type Writer struct {
	fs   afero.Fs
	opts Options
}

func New(fs afero.Fs, opts Options) *Writer {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.LabelSize <= 0 {
		opts.LabelSize = defaultLabelSize
	}
	return &Writer{fs: fs, opts: opts}
}

// Write renders every frame of anim into dir, creating it if needed, and
// finishes with the manifest. The animation itself is not modified.
func (w *Writer) Write(dir string, anim *gif.Animation) (Manifest, error) {
	if anim == nil || len(anim.Frames) == 0 {
		return Manifest{}, xerror.Errorf("unable to export: %w", ErrNoFrames).AsKind(Failed)
	}

	if err := w.fs.MkdirAll(dir, os.ModeDir|os.ModePerm); err != nil {
		return Manifest{}, failed("unable to create output directory %s: %w", dir, err)
	}

	var label *labeler
	if w.opts.Label {
		l, err := newLabeler(w.opts.LabelSize)
		if err != nil {
			return Manifest{}, failed("unable to load label font: %w", err)
		}
		label = l
	}

	m := Manifest{
		ID:         uuid.NewString(),
		Width:      anim.Width * w.opts.Scale,
		Height:     anim.Height * w.opts.Scale,
		LoopCount:  anim.LoopCount,
		DurationMS: anim.Duration().Milliseconds(),
		Frames:     make([]ManifestFrame, 0, len(anim.Frames)),
	}

	for i, frame := range anim.Frames {
		img := w.render(frame.Image)
		if label != nil {
			label.draw(img, fmt.Sprintf("%d/%d %dms", i+1, len(anim.Frames), frame.Delay))
		}

		name := fmt.Sprintf("frame_%04d.png", i)
		if err := w.writePNG(filepath.Join(dir, name), img); err != nil {
			return Manifest{}, err
		}
		m.Frames = append(m.Frames, ManifestFrame{File: name, DelayMS: frame.Delay})
	}

	if err := w.writeManifest(filepath.Join(dir, manifestFileName), m); err != nil {
		return Manifest{}, err
	}
	log.Info("Exported %d frames to %s", len(m.Frames), dir)
	return m, nil
}

// render returns a copy of src at the configured scale.
func (w *Writer) render(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*w.opts.Scale, b.Dy()*w.opts.Scale))
	if w.opts.Scale == 1 {
		draw.Copy(dst, image.Point{}, src, b, draw.Src, nil)
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func (w *Writer) writePNG(path string, img image.Image) error {
	f, err := w.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return failed("unable to create/open file: %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return failed("unable to encode frame to file: %s: %w", path, err)
	}
	return nil
}

func (w *Writer) writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", " ")
	if err != nil {
		return failed("unable to marshal manifest: %w", err)
	}
	if err := afero.WriteFile(w.fs, path, data, 0666); err != nil {
		return failed("unable to write manifest to file: %s: %w", path, err)
	}
	return nil
}

func failed(format string, a ...interface{}) error {
	return xerror.Errorf(format, a...).AsKind(Failed)
}
