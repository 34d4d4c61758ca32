package cli

import (
	"context"

	"cardwallet/internal/models"
)

func (c *Cli) runAdd(ctx context.Context) error {
	c.io.Println("=== Add Card ===")
	c.io.Println()

	card := &models.Card{Group: models.GroupOther}
	if err := c.promptCard(card); err != nil {
		return err
	}

	saved, err := c.service.Create(ctx, card)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Card saved: %s (%s)\n", saved.Name, saved.ID)
	return nil
}
