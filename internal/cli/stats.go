package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runStats(ctx context.Context) error {
	stats, total, err := c.service.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	c.io.Println("=== Cards by Group ===")
	c.io.Println()
	c.io.Printf("Total: %d\n", total)
	c.io.Println()

	for _, s := range stats {
		bar := strings.Repeat("#", s.Percent/5)
		c.io.Printf("%-6s %s  %3d (%d%%)  %s\n", s.Group, s.Group.Label(), s.Count, s.Percent, bar)
	}

	return nil
}
