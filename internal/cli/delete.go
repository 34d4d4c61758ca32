package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing card ID. Usage: cardwallet delete <id>")
	}
	id := args[0]

	card, err := c.service.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get card: %w", err)
	}

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete card '%s'? (y/N): ", card.Name))
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		c.io.Println("Cancelled.")
		return nil
	}

	if err := c.service.Delete(ctx, id); err != nil {
		return err
	}

	c.io.Println("Card deleted.")
	return nil
}
