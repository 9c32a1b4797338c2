package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing song id. Usage: lyrebird delete <id>")
	}
	id := args[0]

	answer, err := c.io.ReadInput(fmt.Sprintf("Delete song %s? [y/N]: ", id))
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		c.io.Println("Canceled.")
		return nil
	}

	if _, err := c.authService.EnsureFresh(ctx); err != nil {
		return err
	}

	if err := c.songService.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete song: %w", err)
	}

	c.io.Println("Song deleted.")
	return nil
}
