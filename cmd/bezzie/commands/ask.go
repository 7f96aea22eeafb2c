// ABOUTME: Ask command sends one message through the companion persona
// ABOUTME: Prints the model's reply, same as POST /send-message
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Send a message and print the reply",
		Long: `Send a message to the supportive companion and print its reply.

The message is taken from the arguments, or from stdin when none are given.`,
		RunE: runAsk,
		Example: `  bezzie ask "I had a rough day"
  echo "Can't sleep again" | bezzie ask`,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	query, err := readInput("", args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	reply, err := a.Service.SendMessage(cmd.Context(), query)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}
