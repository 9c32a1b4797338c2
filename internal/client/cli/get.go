package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lyrebird-app/lyrebird/internal/client/storage"
)

func (c *Cli) runGet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing song id. Usage: lyrebird get <id>")
	}

	song, err := c.songService.Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, storage.ErrSongNotFound) {
			return fmt.Errorf("song %s is not cached locally; run 'lyrebird sync' first", args[0])
		}
		return fmt.Errorf("failed to get song: %w", err)
	}

	return c.renderTemplate(songDetailTemplate, song)
}
