package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollowoak/threadlens/internal/analysis"
)

var (
	networkMaxNodes int
	networkTopLinks int
)

// networkCmd computes the author co-activity graph.
var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Show the author co-activity network",
	Long: `Connects authors who posted in the same subreddit on the same day
and prints the strongest ties. Edge weight is the number of shared
(subreddit, day) buckets; one-off co-occurrences are dropped.`,
	Args: cobra.NoArgs,
	RunE: runNetwork,
}

func init() {
	networkCmd.Flags().IntVar(&networkMaxNodes, "max-nodes", analysis.DefaultMaxNodes, "cap on graph nodes")
	networkCmd.Flags().IntVar(&networkTopLinks, "links", 20, "strongest links to print")
}

func runNetwork(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}

	g := analysis.CoactivityNetwork(sess.Working(), networkMaxNodes)
	fmt.Printf("Nodes: %d, links: %d\n", len(g.Nodes), len(g.Links))

	links := g.Links
	if networkTopLinks > 0 && len(links) > networkTopLinks {
		links = links[:networkTopLinks]
	}
	for _, l := range links {
		fmt.Printf("  %s -- %s  (%d shared)\n", l.Source, l.Target, l.Weight)
	}
	return nil
}
