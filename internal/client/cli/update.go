package cli

import (
	"context"
	"fmt"

	"github.com/lyrebird-app/lyrebird/pkg/api"
)

func (c *Cli) runUpdate(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing song id. Usage: lyrebird update <id> [cover-file]")
	}
	id := args[0]

	var coverPath string
	if len(args) > 1 {
		coverPath = args[1]
	}
	cover, err := readCoverFile(coverPath)
	if err != nil {
		return err
	}

	if _, err := c.authService.EnsureFresh(ctx); err != nil {
		return err
	}

	c.io.Println("=== Update Song ===")
	c.io.Println("Leave a field empty to keep its current value.")

	req := api.SongUpdateRequest{}

	if req.Title, err = c.promptPatchField("Title: "); err != nil {
		return err
	}
	if req.Artist, err = c.promptPatchField("Artist: "); err != nil {
		return err
	}
	if req.Album, err = c.promptPatchField("Album: "); err != nil {
		return err
	}

	original, err := c.readLyrics("Original lyrics")
	if err != nil {
		return err
	}
	if original != "" {
		req.OriginalLyrics = &original
	}
	translated, err := c.readLyrics("Translated lyrics")
	if err != nil {
		return err
	}
	if translated != "" {
		req.TranslatedLyrics = &translated
	}

	if req.Title == nil && req.Artist == nil && req.Album == nil &&
		req.OriginalLyrics == nil && req.TranslatedLyrics == nil && cover == nil {
		c.io.Println("Nothing to update.")
		return nil
	}

	song, err := c.songService.Update(ctx, id, req, cover)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}

	c.io.Printf("Updated song %s (%s)\n", song.Title, song.ID)
	return nil
}

// promptPatchField reads one optional field; empty input means unchanged
func (c *Cli) promptPatchField(prompt string) (*string, error) {
	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if value == "" {
		return nil, nil
	}
	return &value, nil
}
