// ABOUTME: Analyze command summarizes a transcript and reports the most similar user
// ABOUTME: Prints the same JSON body as POST /analyze-mental-state
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	analyzeID   string
	analyzeFile string
)

// NewAnalyzeCmd creates the analyze command
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [transcript]",
		Short: "Analyze a chat transcript and find the most similar user",
		Long: `Analyze a chat transcript, store its summary embedding under --id,
and print the id of the most similar other user.

The transcript is read from --file, the arguments, or stdin.`,
		RunE: runAnalyze,
		Example: `  bezzie analyze --id user-7 --file chat.txt
  cat chat.txt | bezzie analyze --id user-7`,
	}

	cmd.Flags().StringVar(&analyzeID, "id", "", "User id to store the analysis under")
	cmd.Flags().StringVar(&analyzeFile, "file", "", "Read transcript from file")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	transcript, err := readInput(analyzeFile, args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	result, err := a.Service.AnalyzeMentalState(cmd.Context(), analyzeID, transcript)
	if err != nil {
		return err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
