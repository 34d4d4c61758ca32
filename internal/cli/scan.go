package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"cardwallet/internal/capture"
	"cardwallet/internal/vision"
)

func (c *Cli) runScan(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("scan", flag.ContinueOnError)
	overlayArg := flags.String("overlay", "", "guide rectangle as X,Y,WxH in view coordinates; crops the frame like the viewfinder")
	viewArg := flags.String("view", "", "displayed video box as X,Y,WxH; required with -overlay")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() == 0 {
		return fmt.Errorf("missing image file. Usage: cardwallet scan [-overlay X,Y,WxH -view X,Y,WxH] <image-file>")
	}
	path := flags.Arg(0)

	// The credential is checked here, at first use, never at startup.
	extractor, err := vision.NewGemini(ctx, c.cfg.GeminiAPIKey, c.cfg.GeminiModel, c.log)
	if err != nil {
		if errors.Is(err, vision.ErrAPIKeyMissing) {
			c.io.Println("Scanning is not configured: GEMINI_API_KEY is missing.")
			c.io.Println("Use 'cardwallet add' to enter the card manually.")
		}
		return err
	}

	dataURL, cleanup, err := c.captureImage(ctx, path, *overlayArg, *viewArg)
	if err != nil {
		return err
	}

	c.io.Println("Analyzing card image...")

	draft, err := c.service.Scan(ctx, extractor, dataURL)
	cleanup(err == nil)
	if err != nil {
		c.io.Println("Card recognition failed. Retry with a clearer photo, or use 'cardwallet add'.")
		return err
	}

	c.io.Println()
	c.io.Println("=== Extracted Card ===")
	c.io.Println("Press Enter to keep a value, or type over it.")
	c.io.Println()

	if err := c.promptCard(draft); err != nil {
		return err
	}

	saved, err := c.service.Create(ctx, draft)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Card saved: %s (%s)\n", saved.Name, saved.ID)
	return nil
}

// captureImage produces the image to analyze. With an overlay it runs the
// viewfinder flow: the file stands in for the live frame and the overlay is
// mapped into its pixel grid and cropped. Without one, the gallery flow
// sends the file whole. The returned cleanup settles the capture session.
func (c *Cli) captureImage(ctx context.Context, path, overlayArg, viewArg string) (string, func(ok bool), error) {
	noop := func(bool) {}

	if overlayArg == "" {
		dataURL, err := capture.FileDataURL(path)
		return dataURL, noop, err
	}

	if viewArg == "" {
		return "", noop, fmt.Errorf("-overlay requires -view")
	}

	overlay, err := parseRect(overlayArg)
	if err != nil {
		return "", noop, fmt.Errorf("invalid -overlay: %w", err)
	}
	videoBox, err := parseRect(viewArg)
	if err != nil {
		return "", noop, fmt.Errorf("invalid -view: %w", err)
	}

	session := capture.NewSession(capture.NewFileSource(path))

	dataURL, err := session.Capture(ctx, capture.Viewport{VideoBox: videoBox, Overlay: overlay})
	if err != nil {
		_ = session.Close()
		return "", noop, err
	}

	cleanup := func(ok bool) {
		if ok {
			session.Done()
			return
		}
		if err := session.Reset(); err != nil {
			c.log.Warnw("failed to reset capture session", "error", err)
		}
	}

	return dataURL, cleanup, nil
}

// parseRect parses "X,Y,WxH" into a capture.Rect.
func parseRect(s string) (capture.Rect, error) {
	var r capture.Rect

	parts := strings.Split(s, ",")
	if len(parts) != 3 || !strings.Contains(parts[2], "x") {
		return r, fmt.Errorf("expected X,Y,WxH, got %q", s)
	}

	if _, err := fmt.Sscanf(s, "%f,%f,%fx%f", &r.X, &r.Y, &r.Width, &r.Height); err != nil {
		return r, fmt.Errorf("expected X,Y,WxH, got %q", s)
	}

	return r, nil
}
