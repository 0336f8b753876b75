package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollowoak/threadlens/internal/analysis"
)

var statsTop int

// statsCmd prints the aggregate view of the working set.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the dataset: activity, sentiment, top sources",
	Long: `Loads the dataset, applies any filter flags, and prints the
headline aggregates: per-day activity, sentiment distribution, and the
top authors, domains, and subreddits.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsTop, "top", 5, "entries per ranking")
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}
	working := sess.Working()

	stats := analysis.Overview(working)
	fmt.Printf("Posts:      %d (of %d loaded, %d dropped)\n",
		stats.TotalPosts, len(sess.Posts()), sess.Dropped())
	fmt.Printf("Range:      %s .. %s\n", stats.StartDate, stats.EndDate)
	fmt.Printf("Authors:    %d\n", stats.UniqueAuthors)
	fmt.Printf("Subreddits: %d\n", stats.UniqueSubreddits)

	if peak, ok := analysis.PeakDay(working); ok {
		fmt.Printf("Peak day:   %s (%d posts)\n", peak.Date, peak.Count)
	}

	d := analysis.SentimentDistribution(working)
	fmt.Printf("\nSentiment:  %d positive / %d neutral / %d negative\n",
		d.Positive, d.Neutral, d.Negative)

	fmt.Println("\nActivity by day:")
	for _, dc := range analysis.DayCounts(working) {
		fmt.Printf("  %s  %d\n", dc.Date, dc.Count)
	}

	printRanking("Top domains", analysis.TopDomains(working, statsTop))
	printRanking("Top authors", analysis.TopAuthors(working, statsTop))
	printRanking("Top subreddits", analysis.TopSubreddits(working, statsTop))
	return nil
}

func printRanking(title string, entries []analysis.RankEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, e := range entries {
		fmt.Printf("  %-30s %d\n", e.Key, e.Count)
	}
}
