package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollowoak/threadlens/internal/analysis"
	"github.com/hollowoak/threadlens/internal/artifact"
)

var topicTerms int

// topicsCmd renders the precomputed topic model against the dataset.
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Show topics and their per-day evolution",
	Long: `Loads the precomputed topics artifact (THREADLENS_TOPICS, a local
path or URL) and prints each topic's leading terms, then matches topics
against the working set to show how often each appears per day.`,
	Args: cobra.NoArgs,
	RunE: runTopics,
}

func init() {
	topicsCmd.Flags().IntVar(&topicTerms, "terms", 8, "terms shown per topic")
}

func runTopics(cmd *cobra.Command, args []string) error {
	if cfg.Artifact.Topics == "" {
		return fmt.Errorf("no topics artifact configured, set THREADLENS_TOPICS")
	}

	sess, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}

	bundle := artifact.NewLoader(cfg.Artifact.Timeout).LoadBundle(cmd.Context(), artifact.Config{
		Topics:  cfg.Artifact.Topics,
		Timeout: cfg.Artifact.Timeout,
	})
	if err := bundle.Errors["topics"]; err != nil {
		return fmt.Errorf("topics artifact: %w", err)
	}
	sess.SetArtifacts(bundle)

	for _, t := range bundle.Topics.Topics {
		fmt.Printf("%s: %s\n", t.Name, strings.Join(t.TermsOf(topicTerms), ", "))
	}

	topics := sess.TopicTerms()
	evolution := analysis.TopicEvolution(sess.Working(), topics)
	if len(evolution) == 0 {
		return nil
	}

	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.Name
	}
	sort.Strings(names)

	fmt.Println("\nMatches by day:")
	for _, point := range evolution {
		fmt.Printf("  %s", point.Date)
		for _, name := range names {
			fmt.Printf("  %s=%d", name, point.Counts[name])
		}
		fmt.Println()
	}
	return nil
}
