package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cardwallet/internal/models"
	"cardwallet/internal/storage"
)

// Save stores or fully replaces a card.
func (s *Storage) Save(ctx context.Context, card *models.Card) error {
	data, err := models.EncodeCard(card)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO cards (id, data, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data
	`

	if _, err := s.db.ExecContext(ctx, query, card.ID, data, card.CreatedAt); err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

// Get retrieves a card by ID.
func (s *Storage) Get(ctx context.Context, id string) (*models.Card, error) {
	query := `SELECT data FROM cards WHERE id = ?`

	var data []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrCardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return models.DecodeStoredCard(data)
}

// List returns every stored card, migrated to the current shape.
func (s *Storage) List(ctx context.Context) ([]*models.Card, error) {
	query := `SELECT id, data FROM cards`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	var cards []*models.Card
	for rows.Next() {
		var (
			id   string
			data []byte
		)
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}

		card, err := models.DecodeStoredCard(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode card %s: %w", id, err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cards: %w", err)
	}

	return cards, nil
}

// Delete removes the card with the given ID. Deleting an absent ID is a no-op.
func (s *Storage) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM cards WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}
