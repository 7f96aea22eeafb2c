// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Input resolution for ask and analyze, plus app bootstrap from env
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/harper/bezzie/internal/app"
	"github.com/harper/bezzie/internal/config"
)

// readInput resolves text from a file, the first positional argument, or stdin, in that order
func readInput(file string, args []string, stdin io.Reader) (string, error) {
	var text string
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	} else if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text provided")
	}
	return text, nil
}

// loadApp reads configuration and builds the provisioned application
func loadApp(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return app.New(ctx, cfg)
}
