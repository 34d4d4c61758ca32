package capture

import "errors"

// ErrSourceNotReady indicates that the video source or its display box has a
// zero dimension. Callers are expected to skip the capture rather than fail.
var ErrSourceNotReady = errors.New("video source not ready")

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle. Origin and size share one coordinate
// space; which space that is depends on context (on-screen or source pixels).
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MapOverlayToSource translates a guide rectangle drawn over a cover-fit
// video preview into the corresponding rectangle of the source video's
// native pixel grid.
//
// Under cover-fit the video is scaled uniformly to fill its display box and
// the overflowing axis is cropped and centered. videoBox is the displayed
// video's on-screen rectangle; overlay is the guide rectangle in the same
// on-screen coordinate space.
//
// The result is exact and unclamped: inconsistent overlay geometry can map
// outside the source bounds. Clamp with ClampToSource before cropping.
func MapOverlayToSource(source Size, videoBox, overlay Rect) (Rect, error) {
	if source.Width <= 0 || source.Height <= 0 ||
		videoBox.Width <= 0 || videoBox.Height <= 0 {
		return Rect{}, ErrSourceNotReady
	}

	videoRatio := source.Width / source.Height
	displayRatio := videoBox.Width / videoBox.Height

	var renderW, renderH, renderX, renderY float64

	if displayRatio > videoRatio {
		// Display is relatively wider: scaled to match width, top and
		// bottom cropped, rendered frame centered vertically.
		renderW = videoBox.Width
		renderH = videoBox.Width / videoRatio
		renderX = 0
		renderY = (videoBox.Height - renderH) / 2
	} else {
		// Display is relatively taller: scaled to match height, sides
		// cropped, rendered frame centered horizontally.
		renderH = videoBox.Height
		renderW = videoBox.Height * videoRatio
		renderY = 0
		renderX = (videoBox.Width - renderW) / 2
	}

	// Uniform scale between rendered and source pixels.
	scale := source.Width / renderW

	overlayX := overlay.X - videoBox.X
	overlayY := overlay.Y - videoBox.Y

	return Rect{
		X:      (overlayX - renderX) * scale,
		Y:      (overlayY - renderY) * scale,
		Width:  overlay.Width * scale,
		Height: overlay.Height * scale,
	}, nil
}

// ClampToSource clips r to the [0, source.Width] x [0, source.Height] box.
// A rectangle entirely outside the source collapses to zero size.
func (r Rect) ClampToSource(source Size) Rect {
	x0 := clamp(r.X, 0, source.Width)
	y0 := clamp(r.Y, 0, source.Height)
	x1 := clamp(r.X+r.Width, x0, source.Width)
	y1 := clamp(r.Y+r.Height, y0, source.Height)

	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
