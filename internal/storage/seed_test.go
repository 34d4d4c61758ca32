package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cardwallet/internal/models"
)

type memStore struct {
	cards   map[string]*models.Card
	listErr error
}

func newMemStore() *memStore {
	return &memStore{cards: make(map[string]*models.Card)}
}

func (m *memStore) Save(ctx context.Context, card *models.Card) error {
	m.cards[card.ID] = card
	return nil
}

func (m *memStore) Get(ctx context.Context, id string) (*models.Card, error) {
	card, ok := m.cards[id]
	if !ok {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (m *memStore) List(ctx context.Context) ([]*models.Card, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	cards := make([]*models.Card, 0, len(m.cards))
	for _, card := range m.cards {
		cards = append(cards, card)
	}
	return cards, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.cards, id)
	return nil
}

func (m *memStore) Close() error { return nil }

func TestSeedIfEmpty_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	err := SeedIfEmpty(ctx, store, zap.NewNop().Sugar())
	require.NoError(t, err)

	cards, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cards, len(models.SeedCards()))
}

func TestSeedIfEmpty_SkipsNonEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	existing := &models.Card{ID: "card-1", Name: "홍길동", Group: models.GroupOther, CreatedAt: 100}
	require.NoError(t, store.Save(ctx, existing))

	err := SeedIfEmpty(ctx, store, zap.NewNop().Sugar())
	require.NoError(t, err)

	cards, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "card-1", cards[0].ID)
}

func TestSeedIfEmpty_ReadFailureSkipsSeeding(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.listErr = errors.New("disk on fire")

	err := SeedIfEmpty(ctx, store, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Empty(t, store.cards)
}
