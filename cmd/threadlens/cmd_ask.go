package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
)

// askCmd answers one free-text analytical question.
var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a free-text analytical question about the dataset",
	Long: `Answers questions like:

  threadlens ask -d dump.json "what are the top domains?"
  threadlens ask -d dump.json how is the sentiment
  threadlens ask -d dump.json tell me about nytimes.com

Questions are matched against a fixed rule cascade; anything unmatched
prints the list of supported question forms.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	res := sess.Ask(query)
	slog.Debug("query answered", "intent", res.Intent)

	fmt.Println(res.Text)
	return nil
}
