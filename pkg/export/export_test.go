package export_test

import (
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/matryer/is"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tacusci/logging/v2"
	"github.com/tauraamui/gifreel/pkg/export"
	"github.com/tauraamui/gifreel/pkg/gif"
)

func TestMain(m *testing.M) {
	logging.CurrentLoggingLevel = logging.SilentLevel
	os.Exit(m.Run())
}

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func twoFrames() *gif.Animation {
	first := solid(4, 2, red)
	first.SetRGBA(0, 0, blue)
	return &gif.Animation{
		Width:     4,
		Height:    2,
		LoopCount: 0,
		Frames: []gif.Frame{
			{Image: first, Delay: 100},
			{Image: solid(4, 2, blue), Delay: 250},
		},
	}
}

func readPNG(t *testing.T, fs afero.Fs, path string) image.Image {
	t.Helper()
	f, err := fs.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func TestWriteFramesAndManifest(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	m, err := export.New(fs, export.Options{}).Write("/out", twoFrames())
	is.NoErr(err)

	_, err = uuid.Parse(m.ID)
	is.NoErr(err)
	is.Equal(m.Width, 4)
	is.Equal(m.Height, 2)
	is.Equal(m.LoopCount, 0)
	is.Equal(m.DurationMS, int64(350))
	is.Equal(m.Frames, []export.ManifestFrame{
		{File: "frame_0000.png", DelayMS: 100},
		{File: "frame_0001.png", DelayMS: 250},
	})

	first := readPNG(t, fs, "/out/frame_0000.png")
	is.Equal(first.Bounds(), image.Rect(0, 0, 4, 2))
	is.Equal(rgbaAt(first, 0, 0), blue)
	is.Equal(rgbaAt(first, 3, 1), red)
	is.Equal(rgbaAt(readPNG(t, fs, "/out/frame_0001.png"), 2, 1), blue)

	data, err := afero.ReadFile(fs, "/out/manifest.json")
	is.NoErr(err)
	var onDisk export.Manifest
	is.NoErr(json.Unmarshal(data, &onDisk))
	is.Equal(onDisk, m)
}

func TestWriteScalesNearestNeighbour(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()

	m, err := export.New(fs, export.Options{Scale: 3}).Write("/out", twoFrames())
	is.NoErr(err)
	is.Equal(m.Width, 12)
	is.Equal(m.Height, 6)

	img := readPNG(t, fs, "/out/frame_0000.png")
	is.Equal(img.Bounds(), image.Rect(0, 0, 12, 6))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			is.Equal(rgbaAt(img, x, y), blue)
		}
	}
	is.Equal(rgbaAt(img, 3, 0), red)
	is.Equal(rgbaAt(img, 0, 3), red)
}

func TestWriteLabelLeavesAnimationUntouched(t *testing.T) {
	fs := afero.NewMemMapFs()
	anim := twoFrames()
	anim.Width, anim.Height = 64, 32
	anim.Frames[0].Image = solid(64, 32, red)
	anim.Frames = anim.Frames[:1]

	_, err := export.New(fs, export.Options{Label: true, LabelSize: 10}).Write("/out", anim)
	require.NoError(t, err)

	img := readPNG(t, fs, "/out/frame_0000.png")
	changed := 0
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if rgbaAt(img, x, y) != red {
				changed++
			}
		}
	}
	assert.Greater(t, changed, 0, "label should paint over the frame")
	assert.Equal(t, solid(64, 32, red).Pix, anim.Frames[0].Image.Pix)
}

func TestWriteEmptyAnimationFails(t *testing.T) {
	is := is.New(t)

	_, err := export.New(afero.NewMemMapFs(), export.Options{}).Write("/out", &gif.Animation{})
	is.True(errors.Is(err, export.ErrNoFrames))

	_, err = export.New(afero.NewMemMapFs(), export.Options{}).Write("/out", nil)
	is.True(errors.Is(err, export.ErrNoFrames))
}

func TestWriteReadOnlyDestinationFails(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	_, err := export.New(fs, export.Options{}).Write("/out", twoFrames())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), strings.ToUpper(string(export.Failed))))
}

func TestWriteIntoExistingDirectoryOverwrites(t *testing.T) {
	is := is.New(t)
	fs := afero.NewMemMapFs()
	is.NoErr(afero.WriteFile(fs, filepath.Join("/out", "frame_0000.png"), []byte("stale"), 0644))

	_, err := export.New(fs, export.Options{}).Write("/out", twoFrames())
	is.NoErr(err)
	is.Equal(rgbaAt(readPNG(t, fs, "/out/frame_0000.png"), 0, 0), blue)
}
