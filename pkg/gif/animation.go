package gif

import (
	"image"
	"image/color"
	"time"
)

// PlayOnce is the loop count of an animation without a looping directive.
// A LoopCount of 0 repeats forever.
const PlayOnce = -1

// Animation is a fully decoded GIF. Every frame is canvas sized.
type Animation struct {
	Frames    []Frame
	Width     int
	Height    int
	LoopCount int
}

func (a *Animation) Bounds() image.Rectangle {
	return image.Rect(0, 0, a.Width, a.Height)
}

func (a *Animation) FrameCount() int {
	return len(a.Frames)
}

// Duration is the time one pass over all frames takes.
func (a *Animation) Duration() time.Duration {
	var d time.Duration
	for _, f := range a.Frames {
		d += f.Duration()
	}
	return d
}

// Frame is one composited canvas. Delay is in milliseconds, the stream's
// hundredths of a second scaled by ten.
type Frame struct {
	Image *image.RGBA
	Delay int
}

func (f Frame) Duration() time.Duration {
	return time.Duration(f.Delay) * time.Millisecond
}

// Config is the part of a GIF that precedes the first block.
type Config struct {
	Width, Height int
	// GlobalColors is the size of the global color table, 0 when absent.
	GlobalColors int
	Background   color.RGBA
}
