// ABOUTME: Serve command runs the HTTP relay
// ABOUTME: Provisions the index, listens, and drains in-flight requests on SIGINT/SIGTERM
package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/bezzie/internal/api"
	"github.com/harper/bezzie/internal/logger"
)

var serveAddr string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP relay",
		Long: `Run the HTTP relay.

Endpoints:
  GET  /ping                  liveness check
  POST /send-message          {"query"} -> {"response"}
  POST /analyze-mental-state  {"id","chat_history"} -> {"most_similar_user"}

The vector index is provisioned before the listener starts.`,
		Args: cobra.NoArgs,
		RunE: runServe,
		Example: `  # Listen on the default address (LISTEN_ADDR or 0.0.0.0:8000)
  bezzie serve

  # Use the in-process index for local development
  INDEX_BACKEND=memory bezzie serve --addr 127.0.0.1:8080`,
	}

	cmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides LISTEN_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("error closing index: %v", err)
		}
	}()

	addr := a.Config.ListenAddr
	if serveAddr != "" {
		addr = serveAddr
	}

	return api.ListenAndServe(ctx, addr, api.NewServer(a.Service).Handler())
}
