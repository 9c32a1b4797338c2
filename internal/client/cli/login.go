package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")

	username, password, err := c.promptCredentials()
	if err != nil {
		return err
	}

	auth, err := c.authService.Login(ctx, username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Printf("Logged in as %s\n", auth.Username)
	c.io.Println("Run 'lyrebird sync' to pull your song catalog.")
	return nil
}
