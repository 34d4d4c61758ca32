// Package cards is the service layer between the CLI and the card store.
package cards

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cardwallet/internal/models"
	"cardwallet/internal/query"
	"cardwallet/internal/storage"
	"cardwallet/internal/vision"
)

// Service owns card lifecycle: creation, edits, deletion, querying and the
// scan-to-draft flow.
type Service struct {
	store storage.CardStore
	log   *zap.SugaredLogger
}

// NewService creates a card service over the given store.
func NewService(store storage.CardStore, log *zap.SugaredLogger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Create assigns a fresh ID and creation timestamp and persists the card.
// Returns the stored card.
func (s *Service) Create(ctx context.Context, card *models.Card) (*models.Card, error) {
	card.ID = uuid.New().String()
	card.CreatedAt = time.Now().UnixMilli()
	if !card.Group.Valid() {
		card.Group = models.GroupOther
	}

	if err := s.store.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.log.Infow("card created", "id", card.ID, "name", card.Name)
	return card, nil
}

// Update fully replaces the fields of an existing card. ID and CreatedAt are
// taken from the stored record and never change.
func (s *Service) Update(ctx context.Context, card *models.Card) (*models.Card, error) {
	existing, err := s.store.Get(ctx, card.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	card.CreatedAt = existing.CreatedAt
	if !card.Group.Valid() {
		card.Group = models.GroupOther
	}

	if err := s.store.Save(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}

	s.log.Infow("card updated", "id", card.ID)
	return card, nil
}

// Get retrieves a single card by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Card, error) {
	return s.store.Get(ctx, id)
}

// Delete removes a card. Deleting an unknown ID is a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	s.log.Infow("card deleted", "id", id)
	return nil
}

// List returns the stored cards filtered and sorted by q.
func (s *Service) List(ctx context.Context, q query.Query) ([]*models.Card, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	return query.Apply(cards, q), nil
}

// Scan runs extraction on a captured image and returns an unsaved draft card
// prefilled with the extracted fields. The single extracted phone number
// lands in Mobile, mirroring what the stored-shape migration does with the
// same datum.
func (s *Service) Scan(ctx context.Context, extractor vision.Client, imageDataURL string) (*models.Card, error) {
	extracted, err := extractor.Analyze(ctx, imageDataURL)
	if err != nil {
		return nil, err
	}

	return &models.Card{
		Name:     extracted.Name,
		Company:  extracted.Company,
		Title:    extracted.Title,
		Mobile:   extracted.Phone,
		Email:    extracted.Email,
		Website:  extracted.Website,
		Address:  extracted.Address,
		Group:    extracted.Group,
		ImageURL: imageDataURL,
	}, nil
}

// GroupStat is the per-group slice of the stats breakdown.
type GroupStat struct {
	Group   models.Group
	Count   int
	Percent int
}

// Stats counts cards per group over the whole store. Every group appears in
// the result, zero or not, in display order.
func (s *Service) Stats(ctx context.Context) ([]GroupStat, int, error) {
	cards, err := s.store.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cards: %w", err)
	}

	counts := make(map[models.Group]int)
	for _, card := range cards {
		counts[card.Group]++
	}

	total := len(cards)
	stats := make([]GroupStat, 0, len(models.Groups()))
	for _, g := range models.Groups() {
		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(counts[g]) / float64(total) * 100))
		}
		stats = append(stats, GroupStat{Group: g, Count: counts[g], Percent: percent})
	}

	return stats, total, nil
}
