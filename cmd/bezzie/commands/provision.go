// ABOUTME: Provision command creates the vector index if it does not exist
// ABOUTME: Safe to run repeatedly; an existing index is left untouched
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/bezzie/internal/app"
	"github.com/harper/bezzie/internal/config"
)

// NewProvisionCmd creates the provision command
func NewProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the vector index if missing",
		Long: `Create the configured vector index (cosine metric, VECTOR_DIMENSION
dimensions) if it does not exist yet. Running it again is a no-op.

Does not need OPENAI_API_KEY.`,
		Args: cobra.NoArgs,
		RunE: runProvision,
	}

	return cmd
}

func runProvision(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	index, err := app.OpenIndex(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()

	if err := index.Provision(cmd.Context()); err != nil {
		return fmt.Errorf("provisioning index %s: %w", cfg.IndexName, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Index %s ready (%s, %d dimensions, cosine)\n", cfg.IndexName, cfg.IndexBackend, cfg.VectorDimension)
	return nil
}
