// ABOUTME: Root command and global flags for the bezzie CLI
// ABOUTME: Initializes structured logging before any subcommand runs
package commands

import (
	"github.com/spf13/cobra"

	"github.com/harper/bezzie/internal/logger"
)

var (
	verbose bool
	quiet   bool
)

const banner = `
██████╗ ███████╗███████╗███████╗██╗███████╗
██╔══██╗██╔════╝╚══███╔╝╚══███╔╝██║██╔════╝
██████╔╝█████╗    ███╔╝   ███╔╝ ██║█████╗
██╔══██╗██╔══╝   ███╔╝   ███╔╝  ██║██╔══╝
██████╔╝███████╗███████╗███████╗██║███████╗
╚═════╝ ╚══════╝╚══════╝╚══════╝╚═╝╚══════╝`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bezzie",
		Short: "Supportive chat relay with similar-user matching",
		Long: banner + `

Bezzie relays chat messages to an LLM under a supportive companion
persona, and analyzes chat transcripts to find the most similar
other user through a vector index.

Configuration is read from the environment (and .env):
  OPENAI_API_KEY    completion and embedding provider key
  INDEX_BACKEND     milvus (default), charm or memory
  MILVUS_ADDRESS    Milvus / Zilliz endpoint
  MILVUS_API_KEY    Milvus / Zilliz token`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(verbose, quiet)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log warnings and errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewServeCmd(),
		NewMCPCmd(),
		NewAskCmd(),
		NewAnalyzeCmd(),
		NewProvisionCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
