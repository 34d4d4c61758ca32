package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"cardwallet/internal/models"
	"cardwallet/internal/storage"
)

// Save stores or fully replaces a card.
func (s *Storage) Save(ctx context.Context, card *models.Card) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		data, err := models.EncodeCard(card)
		if err != nil {
			return err
		}

		if err := bucket.Put([]byte(card.ID), data); err != nil {
			return fmt.Errorf("failed to save card: %w", err)
		}

		return nil
	})
}

// Get retrieves a card by ID.
func (s *Storage) Get(ctx context.Context, id string) (*models.Card, error) {
	var card *models.Card

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrCardNotFound
		}

		var err error
		card, err = models.DecodeStoredCard(data)
		return err
	})

	if err != nil {
		return nil, err
	}

	return card, nil
}

// List returns every stored card. Each record passes through the stored-shape
// migration, so legacy records never reach callers in the old shape.
func (s *Storage) List(ctx context.Context) ([]*models.Card, error) {
	var cards []*models.Card

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			card, err := models.DecodeStoredCard(v)
			if err != nil {
				return fmt.Errorf("failed to decode card %s: %w", k, err)
			}
			cards = append(cards, card)
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return cards, nil
}

// Delete removes the card with the given ID. Deleting an absent ID is a no-op.
func (s *Storage) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCards)
		if bucket == nil {
			return fmt.Errorf("cards bucket not found")
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete card: %w", err)
		}

		return nil
	})
}
