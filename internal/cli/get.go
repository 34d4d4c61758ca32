package cli

import (
	"context"
	"fmt"

	"cardwallet/internal/models"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing card ID. Usage: cardwallet get <id>")
	}

	card, err := c.service.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get card: %w", err)
	}

	c.printCard(card)
	return nil
}

func (c *Cli) printCard(card *models.Card) {
	c.io.Printf("%s [%s]\n", card.Name, card.Group.Label())
	c.io.Printf("  ID:      %s\n", card.ID)
	c.io.Printf("  Company: %s\n", card.Company)
	c.io.Printf("  Title:   %s\n", card.Title)
	c.io.Printf("  Mobile:  %s\n", card.Mobile)
	c.io.Printf("  Tel:     %s\n", card.Tel)
	c.io.Printf("  Email:   %s\n", card.Email)
	c.io.Printf("  Website: %s\n", card.Website)
	c.io.Printf("  Address: %s\n", card.Address)
	if card.ImageURL != "" {
		c.io.Printf("  Image:   attached (%d bytes)\n", len(card.ImageURL))
	}
}
