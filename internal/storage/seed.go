package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cardwallet/internal/models"
)

// SeedIfEmpty writes the sample cards on first run. The store itself is the
// single source of truth: seeding happens only when it holds no records, so
// an externally cleared database simply reseeds. A failed read is logged and
// treated as "don't seed" rather than risking duplicate sample data.
func SeedIfEmpty(ctx context.Context, store CardStore, log *zap.SugaredLogger) error {
	cards, err := store.List(ctx)
	if err != nil {
		log.Warnw("skipping seed, could not read store", "error", err)
		return nil
	}
	if len(cards) > 0 {
		return nil
	}

	for _, card := range models.SeedCards() {
		if err := store.Save(ctx, card); err != nil {
			return fmt.Errorf("failed to seed card %s: %w", card.ID, err)
		}
	}
	log.Infow("seeded sample cards", "count", len(models.SeedCards()))

	return nil
}
