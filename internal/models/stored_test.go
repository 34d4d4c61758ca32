package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStoredCard_LegacyPhone(t *testing.T) {
	raw := []byte(`{
		"id": "card-1",
		"name": "김철수",
		"company": "테크 솔루션",
		"phone": "010-1234-5678",
		"group": "WORK",
		"createdAt": 1700000000000
	}`)

	card, err := DecodeStoredCard(raw)
	require.NoError(t, err)

	assert.Equal(t, "010-1234-5678", card.Mobile)
	assert.Equal(t, "", card.Tel)
	assert.Equal(t, GroupWork, card.Group)
	assert.Equal(t, int64(1700000000000), card.CreatedAt)
}

func TestDecodeStoredCard_CurrentShapeUntouched(t *testing.T) {
	raw := []byte(`{
		"id": "card-2",
		"name": "이영희",
		"mobile": "010-9876-5432",
		"tel": "02-555-1234",
		"group": "FRIEND",
		"createdAt": 100
	}`)

	card, err := DecodeStoredCard(raw)
	require.NoError(t, err)

	assert.Equal(t, "010-9876-5432", card.Mobile)
	assert.Equal(t, "02-555-1234", card.Tel)
}

func TestDecodeStoredCard_PhoneIgnoredWhenNewFieldsPresent(t *testing.T) {
	// A record that somehow carries both shapes keeps the new fields.
	raw := []byte(`{
		"id": "card-3",
		"name": "박지성",
		"phone": "010-0000-0000",
		"mobile": "010-5555-7777",
		"tel": "",
		"group": "OTHER",
		"createdAt": 100
	}`)

	card, err := DecodeStoredCard(raw)
	require.NoError(t, err)

	assert.Equal(t, "010-5555-7777", card.Mobile)
	assert.Equal(t, "", card.Tel)
}

func TestDecodeStoredCard_MissingPhoneFieldsDefaultEmpty(t *testing.T) {
	raw := []byte(`{"id": "card-4", "name": "홍길동", "group": "FAMILY", "createdAt": 100}`)

	card, err := DecodeStoredCard(raw)
	require.NoError(t, err)

	assert.Equal(t, "", card.Mobile)
	assert.Equal(t, "", card.Tel)
}

func TestDecodeStoredCard_UnknownGroupDefaultsToOther(t *testing.T) {
	raw := []byte(`{"id": "card-5", "name": "홍길동", "group": "VIP", "createdAt": 100}`)

	card, err := DecodeStoredCard(raw)
	require.NoError(t, err)
	assert.Equal(t, GroupOther, card.Group)
}

// Applying the migration twice must yield the same result as applying it once,
// for both the legacy and the current stored shape.
func TestMigrationIdempotent(t *testing.T) {
	shapes := map[string][]byte{
		"legacy":  []byte(`{"id": "a", "name": "김철수", "phone": "010-1111-2222", "group": "WORK", "createdAt": 42}`),
		"current": []byte(`{"id": "b", "name": "이영희", "mobile": "010-3333-4444", "tel": "", "group": "OTHER", "createdAt": 42}`),
		"minimal": []byte(`{"id": "c", "name": "박지성", "createdAt": 42}`),
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			once, err := DecodeStoredCard(raw)
			require.NoError(t, err)

			encoded, err := EncodeCard(once)
			require.NoError(t, err)

			twice, err := DecodeStoredCard(encoded)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
		})
	}
}

func TestDecodeStoredCard_InvalidJSON(t *testing.T) {
	_, err := DecodeStoredCard([]byte(`{broken`))
	assert.Error(t, err)
}

func TestParseGroup(t *testing.T) {
	g, ok := ParseGroup("WORK")
	assert.True(t, ok)
	assert.Equal(t, GroupWork, g)

	g, ok = ParseGroup("친구")
	assert.True(t, ok)
	assert.Equal(t, GroupFriend, g)

	g, ok = ParseGroup("unknown")
	assert.False(t, ok)
	assert.Equal(t, GroupOther, g)
}
