package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lyrebird-app/lyrebird/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	authData, err := c.authService.Status(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Not logged in.")
			c.io.Println("Run 'lyrebird login' or 'lyrebird register' first.")
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	c.io.Println("=== Session ===")
	c.io.Printf("Username: %s\n", authData.Username)
	c.io.Printf("User ID:  %s\n", authData.UserID)

	expiresAt := time.Unix(authData.ExpiresAt, 0)
	if time.Now().Before(expiresAt) {
		c.io.Printf("Access token valid until %s\n", expiresAt.Format(time.RFC1123))
	} else {
		c.io.Println("Access token expired; it will be refreshed on the next command.")
	}
	return nil
}
