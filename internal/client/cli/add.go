package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lyrebird-app/lyrebird/pkg/api"
)

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	var coverPath string
	if len(args) > 0 {
		coverPath = args[0]
	}
	cover, err := readCoverFile(coverPath)
	if err != nil {
		return err
	}

	if _, err := c.authService.EnsureFresh(ctx); err != nil {
		return err
	}

	c.io.Println("=== Add Song ===")

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	artist, err := c.io.ReadInput("Artist (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read artist: %w", err)
	}
	album, err := c.io.ReadInput("Album (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read album: %w", err)
	}

	original, err := c.readLyrics("Original lyrics")
	if err != nil {
		return err
	}
	translated, err := c.readLyrics("Translated lyrics")
	if err != nil {
		return err
	}

	song, err := c.songService.Create(ctx, api.SongCreateRequest{
		Title:            title,
		Artist:           artist,
		Album:            album,
		OriginalLyrics:   original,
		TranslatedLyrics: translated,
	}, cover)
	if err != nil {
		return fmt.Errorf("failed to add song: %w", err)
	}

	c.io.Printf("Added song %s (%s)\n", song.Title, song.ID)
	return nil
}

// readLyrics reads lines until an empty line ends the block
func (c *Cli) readLyrics(label string) (string, error) {
	c.io.Printf("%s (finish with an empty line, leave empty to skip):\n", label)

	var lines []string
	for {
		line, err := c.io.ReadInput("")
		if err != nil {
			return "", fmt.Errorf("failed to read lyrics: %w", err)
		}
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}
