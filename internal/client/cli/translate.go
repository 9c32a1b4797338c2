package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/lyrebird-app/lyrebird/pkg/api"
)

func (c *Cli) runTranslate(ctx context.Context) error {
	if _, err := c.authService.EnsureFresh(ctx); err != nil {
		return err
	}

	c.io.Println("=== Translate ===")

	from, err := c.io.ReadInput("Source language (empty to auto-detect): ")
	if err != nil {
		return fmt.Errorf("failed to read source language: %w", err)
	}
	to, err := c.io.ReadInput("Target language: ")
	if err != nil {
		return fmt.Errorf("failed to read target language: %w", err)
	}

	text, err := c.readLyrics("Text")
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("nothing to translate")
	}

	resp, err := c.apiClient.Translate(ctx, api.TranslationRequest{
		Text: strings.Split(text, "\n"),
		From: from,
		To:   to,
	})
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	c.io.Println()
	for _, line := range resp.TranslatedTextLines {
		c.io.Println(line)
	}
	if from == "" && len(resp.DetectedLanguages) > 0 {
		c.io.Printf("\nDetected source language: %s\n", strings.Join(resp.DetectedLanguages, ", "))
	}
	return nil
}

func (c *Cli) runLanguages(ctx context.Context) error {
	if _, err := c.authService.EnsureFresh(ctx); err != nil {
		return err
	}

	langs, err := c.apiClient.Languages(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch languages: %w", err)
	}

	c.io.Println("Source languages:")
	for _, lang := range langs.SourceLanguages {
		c.io.Printf("  %-6s %s\n", lang.Code, lang.Name)
	}
	c.io.Println()
	c.io.Println("Target languages:")
	for _, lang := range langs.TargetLanguages {
		c.io.Printf("  %-6s %s\n", lang.Code, lang.Name)
	}
	return nil
}
