package capture

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // frame decoders
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
)

// FrameSource produces still frames for capture. Close releases the
// underlying device and must always be called when the capture flow is
// exited, reset, or a file is chosen instead; for camera-backed sources this
// is what disengages the hardware.
type FrameSource interface {
	// Frame returns the current frame at the source's native resolution.
	Frame(ctx context.Context) (image.Image, error)

	// Close releases the source. Safe to call more than once.
	Close() error
}

// FileSource serves a single image file as a one-frame source.
type FileSource struct {
	path string
}

// NewFileSource creates a frame source backed by an image file.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Frame decodes the file. JPEG and PNG are supported.
func (f *FileSource) Frame(ctx context.Context) (image.Image, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image file: %w", err)
	}

	return img, nil
}

// Close is a no-op; the file is not held open between frames.
func (f *FileSource) Close() error {
	return nil
}

// FileDataURL reads an image file whole and returns it as a base64 data URL,
// the gallery-pick path that bypasses the viewfinder crop.
func FileDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image file: %w", err)
	}

	var mimeType string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		mimeType = "image/jpeg"
	case ".png":
		mimeType = "image/png"
	case ".webp":
		mimeType = "image/webp"
	default:
		return "", fmt.Errorf("unsupported image type: %s", filepath.Ext(path))
	}

	return EncodeDataURL(mimeType, data), nil
}
