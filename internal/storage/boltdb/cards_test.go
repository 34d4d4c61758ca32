package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"cardwallet/internal/models"
	"cardwallet/internal/storage"
)

// createTestStorage creates a temporary BoltDB store with initialized buckets.
func createTestStorage(t *testing.T) (*Storage, func()) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "cards_test.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	cleanup := func() {
		require.NoError(t, store.Close())
		require.NoError(t, os.RemoveAll(tmpDir))
	}

	return store, cleanup
}

func createTestCard(id string, group models.Group) *models.Card {
	return &models.Card{
		ID:        id,
		Name:      "김철수",
		Company:   "테크 솔루션",
		Title:     "수석 개발자",
		Mobile:    "010-1234-5678",
		Tel:       "02-555-1234",
		Email:     "chulsoo@techsol.com",
		Website:   "www.techsol.com",
		Address:   "서울시 강남구 테헤란로 123",
		Group:     group,
		CreatedAt: 1700000000000,
	}
}

func TestSaveGetDeleteCard(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	card := createTestCard("card-1", models.GroupWork)

	err := store.Save(ctx, card)
	require.NoError(t, err)

	got, err := store.Get(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card, got)

	// Round-trip: the store holds exactly this one card.
	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, card, list[0])

	err = store.Delete(ctx, card.ID)
	require.NoError(t, err)

	list, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetCard_NotFound(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	_, err := store.Get(ctx, "non-existing")
	assert.ErrorIs(t, err, storage.ErrCardNotFound)
}

func TestDeleteCard_AbsentIsNoop(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	err := store.Delete(ctx, "non-existing")
	assert.NoError(t, err)
}

func TestSaveCard_FullReplacement(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	card := createTestCard("card-1", models.GroupWork)
	require.NoError(t, store.Save(ctx, card))

	// Overwrite with a card that cleared most fields. No merge: the
	// stored record must match the replacement exactly.
	replacement := &models.Card{
		ID:        card.ID,
		Name:      "김철수",
		Group:     models.GroupFamily,
		CreatedAt: card.CreatedAt,
	}
	require.NoError(t, store.Save(ctx, replacement))

	got, err := store.Get(ctx, card.ID)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
	assert.Empty(t, got.Company)
}

// A record written by an old version with a single "phone" field must come
// back migrated, both from Get and from List.
func TestListCard_MigratesLegacyPhone(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStorage(t)
	defer cleanup()

	legacy := []byte(`{"id": "legacy-1", "name": "이영희", "phone": "010-9876-5432", "group": "FRIEND", "createdAt": 100}`)
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketCards).Put([]byte("legacy-1"), legacy)
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, "legacy-1")
	require.NoError(t, err)
	assert.Equal(t, "010-9876-5432", got.Mobile)
	assert.Equal(t, "", got.Tel)

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "010-9876-5432", list[0].Mobile)
}
