package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"cardwallet/internal/models"
	"cardwallet/internal/query"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)
	search := flags.String("s", "", "search term for name, company or title")
	groupArg := flags.String("g", "", "filter by group (WORK, FRIEND, FAMILY, OTHER)")
	sortArg := flags.String("sort", "recent", "sort order: recent or name")
	if err := flags.Parse(args); err != nil {
		return err
	}

	q := query.Query{Search: *search}

	if *groupArg != "" {
		group, ok := models.ParseGroup(strings.ToUpper(*groupArg))
		if !ok {
			group, ok = models.ParseGroup(*groupArg)
		}
		if !ok {
			return fmt.Errorf("unknown group: %s", *groupArg)
		}
		q.Group = &group
	}

	sortOrder, ok := query.ParseSort(*sortArg)
	if !ok {
		return fmt.Errorf("unknown sort order: %s. Use: recent or name", *sortArg)
	}
	q.Sort = sortOrder

	cards, err := c.service.List(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	if len(cards) == 0 {
		c.io.Println("No cards found.")
		c.io.Println()
		c.io.Println("Use 'cardwallet scan' or 'cardwallet add' to add your first card.")
		return nil
	}

	c.io.Printf("Found %d card(s):\n", len(cards))
	c.io.Println()

	for i, card := range cards {
		c.io.Printf("%d. %s [%s]\n", i+1, card.Name, card.Group.Label())
		c.io.Printf("   ID:      %s\n", card.ID)
		if card.Company != "" {
			c.io.Printf("   Company: %s\n", card.Company)
		}
		if card.Title != "" {
			c.io.Printf("   Title:   %s\n", card.Title)
		}
		if card.Mobile != "" {
			c.io.Printf("   Mobile:  %s\n", card.Mobile)
		}
		c.io.Println()
	}

	return nil
}
