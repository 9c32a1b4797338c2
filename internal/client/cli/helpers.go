package cli

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
)

// renderTemplate executes a text template and prints the result
func (c *Cli) renderTemplate(tmpl string, data any) error {
	t, err := template.New("output").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	c.io.Println(buf.String())
	return nil
}

// readCoverFile loads a cover image from disk when a path was given
func readCoverFile(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cover file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("cover file is empty")
	}
	return data, nil
}

// promptCredentials reads a username and password pair
func (c *Cli) promptCredentials() (username, password string, err error) {
	username, err = c.io.ReadInput("Username: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read username: %w", err)
	}
	password, err = c.io.ReadPassword("Password: ")
	if err != nil {
		return "", "", fmt.Errorf("failed to read password: %w", err)
	}
	return username, password, nil
}
