package storage

import (
	"context"

	"cardwallet/internal/models"
)

// CardStore defines the local persistence boundary for card records.
// Records are keyed by ID; stored-shape migration is applied on every read,
// never by rewriting stored data in place.
type CardStore interface {
	// Save stores or fully replaces a card. No merge semantics.
	Save(ctx context.Context, card *models.Card) error

	// Get retrieves a card by ID.
	// Returns ErrCardNotFound if the card doesn't exist.
	Get(ctx context.Context, id string) (*models.Card, error)

	// List returns every stored card, migrated to the current shape.
	List(ctx context.Context) ([]*models.Card, error)

	// Delete removes the card with the given ID. No-op if absent.
	Delete(ctx context.Context, id string) error

	// Close releases the underlying database.
	Close() error
}
