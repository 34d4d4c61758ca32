package vision

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-3-flash-preview"

// instruction is the fixed prompt sent with every card image.
const instruction = "이 명함 이미지에서 연락처 정보를 추출해서 JSON으로 줘. 한국어와 영어를 모두 지원해."

// cardSchema is the structured-output schema for one card. Only the name is
// required; everything else defaults client-side.
var cardSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":    {Type: genai.TypeString, Description: "이름"},
		"company": {Type: genai.TypeString, Description: "회사명"},
		"title":   {Type: genai.TypeString, Description: "직함/직책"},
		"phone":   {Type: genai.TypeString, Description: "전화번호"},
		"email":   {Type: genai.TypeString, Description: "이메일"},
		"website": {Type: genai.TypeString, Description: "웹사이트"},
		"address": {Type: genai.TypeString, Description: "주소"},
	},
	Required: []string{"name"},
}

// GeminiClient extracts card fields via the Gemini API.
type GeminiClient struct {
	client *genai.Client
	log    *zap.SugaredLogger
	model  string
}

// NewGemini creates a Gemini-backed extraction client. Fails fast with
// ErrAPIKeyMissing before any network I/O when the key is empty.
func NewGemini(ctx context.Context, apiKey, model string, log *zap.SugaredLogger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{client: client, model: model, log: log}, nil
}

// Analyze sends the card image with the fixed instruction and schema and
// maps the structured JSON response. Exactly one attempt.
func (c *GeminiClient) Analyze(ctx context.Context, imageDataURL string) (*Extracted, error) {
	imgBytes, err := decodeImageDataURL(imageDataURL)
	if err != nil {
		return nil, err
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(imgBytes, "image/jpeg"),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   cardSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("card extraction failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	extracted, err := parseExtracted(text)
	if err != nil {
		return nil, err
	}

	c.log.Debugw("extracted card fields", "model", c.model, "name", extracted.Name)
	return extracted, nil
}
