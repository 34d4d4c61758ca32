package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runEdit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing card ID. Usage: cardwallet edit <id>")
	}

	card, err := c.service.Get(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get card: %w", err)
	}

	c.io.Printf("=== Edit Card: %s ===\n", card.Name)
	c.io.Println("Press Enter to keep a value, or type over it.")
	c.io.Println()

	if err := c.promptCard(card); err != nil {
		return err
	}

	updated, err := c.service.Update(ctx, card)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Card updated: %s (%s)\n", updated.Name, updated.ID)
	return nil
}
