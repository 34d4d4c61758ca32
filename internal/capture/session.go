package capture

import (
	"context"
	"errors"
	"image"
	"image/draw"
)

var (
	// ErrBusy indicates a capture was attempted while an earlier one is
	// still being analyzed. At most one extraction is in flight per session.
	ErrBusy = errors.New("analysis already in flight")

	// ErrEmptyRegion indicates the clamped capture region has no area.
	ErrEmptyRegion = errors.New("capture region is empty")
)

// Viewport describes the on-screen geometry at the moment of capture:
// the displayed video box and the guide overlay, in one coordinate space.
type Viewport struct {
	VideoBox Rect
	Overlay  Rect
}

// Session drives one capture flow: grab a frame, map the guide overlay to
// source pixels, crop, and hand back a JPEG data URL for extraction. The
// session is single-threaded, matching the event-driven UI it stands in for.
type Session struct {
	source    FrameSource
	analyzing bool
}

// NewSession creates a capture session over the given frame source.
func NewSession(source FrameSource) *Session {
	return &Session{source: source}
}

// Analyzing reports whether a captured image is still being analyzed.
func (s *Session) Analyzing() bool {
	return s.analyzing
}

// Capture grabs a frame, crops it to the overlay region and returns the crop
// as a JPEG data URL. The source is released immediately after a successful
// grab, before analysis starts. Returns ErrBusy while a previous capture is
// analyzing and ErrSourceNotReady when the frame or viewport is degenerate.
func (s *Session) Capture(ctx context.Context, vp Viewport) (string, error) {
	if s.analyzing {
		return "", ErrBusy
	}

	frame, err := s.source.Frame(ctx)
	if err != nil {
		return "", err
	}

	bounds := frame.Bounds()
	source := Size{Width: float64(bounds.Dx()), Height: float64(bounds.Dy())}

	region, err := MapOverlayToSource(source, vp.VideoBox, vp.Overlay)
	if err != nil {
		return "", err
	}

	region = region.ClampToSource(source)
	if region.Width < 1 || region.Height < 1 {
		return "", ErrEmptyRegion
	}

	crop := image.NewRGBA(image.Rect(0, 0, int(region.Width), int(region.Height)))
	origin := image.Pt(bounds.Min.X+int(region.X), bounds.Min.Y+int(region.Y))
	draw.Draw(crop, crop.Bounds(), frame, origin, draw.Src)

	dataURL, err := encodeJPEGDataURL(crop)
	if err != nil {
		return "", err
	}

	// Camera goes dark as soon as the shot is taken.
	if err := s.source.Close(); err != nil {
		return "", err
	}

	s.analyzing = true
	return dataURL, nil
}

// Done clears the analyzing gate after extraction completes.
func (s *Session) Done() {
	s.analyzing = false
}

// Reset returns the session to the pre-capture state, releasing the source.
// Used for the retry path after a failed extraction.
func (s *Session) Reset() error {
	s.analyzing = false
	return s.source.Close()
}

// Close releases the frame source. Mandatory on every exit path.
func (s *Session) Close() error {
	return s.source.Close()
}
