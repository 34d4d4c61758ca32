package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"cardwallet/internal/cards"
	"cardwallet/internal/cli/iocli"
	"cardwallet/internal/config"
)

// Cli wires the command implementations to the card service.
type Cli struct {
	io      iocli.IO
	service *cards.Service
	cfg     *config.Config
	log     *zap.SugaredLogger
}

func New(io iocli.IO, service *cards.Service, cfg *config.Config, log *zap.SugaredLogger) *Cli {
	return &Cli{
		io:      io,
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

// Run dispatches a command. Unknown commands print usage and fail.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "scan":
		return c.runScan(ctx, args)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx, args)
	case "get":
		return c.runGet(ctx, args)
	case "edit":
		return c.runEdit(ctx, args)
	case "delete":
		return c.runDelete(ctx, args)
	case "stats":
		return c.runStats(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage prints the command overview.
func (c *Cli) PrintUsage() {
	c.io.Println("cardwallet - personal business card manager")
	c.io.Println()
	c.io.Println("Usage: cardwallet [flags] <command> [arguments]")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  scan <image-file>   extract a card from a photo and save it")
	c.io.Println("  add                 enter a card manually")
	c.io.Println("  list                list cards (-s term, -g group, -sort name|recent)")
	c.io.Println("  get <id>            show one card in full")
	c.io.Println("  edit <id>           edit a card")
	c.io.Println("  delete <id>         delete a card")
	c.io.Println("  stats               card count breakdown by group")
	c.io.Println()
	c.io.Println("Flags:")
	c.io.Println("  -db path            local database file")
	c.io.Println("  -storage backend    bolt or sqlite")
	c.io.Println("  -model name         Gemini model for scan")
	c.io.Println("  -version            show version information")
}
