package vision

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cardwallet/internal/models"
)

func TestParseExtracted_DefaultsMissingFields(t *testing.T) {
	got, err := parseExtracted(`{"name": "김철수"}`)
	require.NoError(t, err)

	assert.Equal(t, "김철수", got.Name)
	assert.Equal(t, "", got.Company)
	assert.Equal(t, "", got.Title)
	assert.Equal(t, "", got.Phone)
	assert.Equal(t, "", got.Email)
	assert.Equal(t, "", got.Website)
	assert.Equal(t, "", got.Address)
	assert.Equal(t, models.GroupOther, got.Group)
}

func TestParseExtracted_FullResponse(t *testing.T) {
	got, err := parseExtracted(`{
		"name": "이영희",
		"company": "크리에이티브 디자인",
		"title": "아트 디렉터",
		"phone": "010-9876-5432",
		"email": "yh.lee@creative.kr",
		"website": "www.creative.kr",
		"address": "서울시 마포구 홍대입구 456"
	}`)
	require.NoError(t, err)

	assert.Equal(t, "이영희", got.Name)
	assert.Equal(t, "크리에이티브 디자인", got.Company)
	assert.Equal(t, "010-9876-5432", got.Phone)
	assert.Equal(t, models.GroupOther, got.Group)
}

func TestParseExtracted_MalformedJSON(t *testing.T) {
	_, err := parseExtracted(`not json at all`)
	assert.Error(t, err)
}

func TestDecodeImageDataURL(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	encoded := base64.StdEncoding.EncodeToString(payload)

	for _, prefix := range []string{
		"data:image/jpeg;base64,",
		"data:image/png;base64,",
		"data:image/webp;base64,",
	} {
		got, err := decodeImageDataURL(prefix + encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	}

	// Raw base64 without a prefix passes through unchanged.
	got, err := decodeImageDataURL(encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	_, err = decodeImageDataURL("data:image/jpeg;base64,%%%")
	assert.Error(t, err)
}

func TestNewGemini_MissingKeyFailsFast(t *testing.T) {
	ctx := context.Background()

	_, err := NewGemini(ctx, "", DefaultModel, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, ErrAPIKeyMissing)
}
