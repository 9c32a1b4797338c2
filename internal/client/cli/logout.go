package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/lyrebird-app/lyrebird/internal/client/auth"
)

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.authService.Logout(ctx); err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			c.io.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}
	c.io.Println("Logged out.")
	return nil
}
