package cli

import (
	"context"
	"fmt"
)

// runList prints the cached catalog; it works offline by design.
func (c *Cli) runList(ctx context.Context) error {
	songs, err := c.songService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list songs: %w", err)
	}
	return c.renderTemplate(songListTemplate, songs)
}
