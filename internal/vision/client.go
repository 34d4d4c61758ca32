// Package vision wraps the single multimodal inference call that turns a
// photographed business card into structured contact fields.
package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"cardwallet/internal/models"
)

var (
	// ErrAPIKeyMissing indicates no Gemini API key is configured. The
	// extraction flow is dead without it; manual entry still works.
	ErrAPIKeyMissing = errors.New("GEMINI_API_KEY is not configured")

	// ErrEmptyResponse indicates the model returned no text.
	ErrEmptyResponse = errors.New("no response text from model")
)

// Extracted holds the contact fields read off one card image. The inference
// schema asks for a single phone number; splitting it into mobile/tel is the
// caller's concern.
type Extracted struct {
	Name    string       `json:"name"`
	Company string       `json:"company"`
	Title   string       `json:"title"`
	Phone   string       `json:"phone"`
	Email   string       `json:"email"`
	Website string       `json:"website"`
	Address string       `json:"address"`
	Group   models.Group `json:"-"`
}

// Client extracts contact fields from a card image given as a data URL.
// One attempt per call; retrying is the user's decision, not this layer's.
type Client interface {
	Analyze(ctx context.Context, imageDataURL string) (*Extracted, error)
}

var dataURLPrefix = regexp.MustCompile(`^data:image/(png|jpeg|jpg|webp);base64,`)

// decodeImageDataURL strips the data-URL prefix and decodes the payload.
func decodeImageDataURL(dataURL string) ([]byte, error) {
	raw := dataURLPrefix.ReplaceAllString(dataURL, "")

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}

	return data, nil
}

// parseExtracted maps the model's JSON into an Extracted with every missing
// field defaulted to empty string and the group defaulted to OTHER.
func parseExtracted(text string) (*Extracted, error) {
	var out Extracted
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("failed to parse extraction response: %w", err)
	}

	out.Group = models.GroupOther
	return &out, nil
}
