package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	if _, err := c.authService.EnsureFresh(ctx); err != nil {
		return err
	}

	c.io.Println("Syncing...")

	result, err := c.syncService.Sync(ctx)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if result.Empty() {
		c.io.Println("Already up to date.")
		return nil
	}

	c.io.Printf("Sync finished: %d updated, %d created, %d deleted\n",
		result.Updated, result.Created, result.Deleted)
	if result.Skipped > 0 {
		c.io.Printf("%d song(s) could not be downloaded and were skipped; run sync again to retry.\n",
			result.Skipped)
	}
	return nil
}
