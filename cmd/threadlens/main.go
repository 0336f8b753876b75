package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hollowoak/threadlens/internal/config"
	"github.com/hollowoak/threadlens/internal/engine"
	"github.com/hollowoak/threadlens/internal/engine/sentiment"
	"github.com/hollowoak/threadlens/internal/logging"
	"github.com/hollowoak/threadlens/internal/model"
	"github.com/hollowoak/threadlens/internal/pipeline"
	"github.com/hollowoak/threadlens/internal/session"
	"github.com/hollowoak/threadlens/internal/source"

	// Register source implementations.
	_ "github.com/hollowoak/threadlens/internal/source/file"
	_ "github.com/hollowoak/threadlens/internal/source/httpsrc"
)

var (
	// Global flags
	datasetPath string
	datasetURL  string
	fromDate    string
	toDate      string
	sentiments  []string
	keyword     string

	cfg config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "threadlens",
	Short: "threadlens - sentiment and source analytics over post dataset dumps",
	Long: `threadlens ingests a Reddit-style dataset dump (local file or URL),
derives sentiment and source-domain metrics for every post, and answers
aggregate questions over the collection.

Configuration comes from THREADLENS_* environment variables, an optional
YAML file named by THREADLENS_CONFIG, and the flags below. Flags win.`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if datasetPath != "" {
			cfg.Source.Provider = "file"
			cfg.Source.Path = datasetPath
		}
		if datasetURL != "" {
			cfg.Source.Provider = "http"
			cfg.Source.Endpoint = datasetURL
		}
		logging.Setup(cfg.LogLevel, cfg.Output.Format == "stdout")
		return cfg.Validate()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&datasetPath, "dataset", "d", "", "local dataset JSON file")
	pf.StringVarP(&datasetURL, "url", "u", "", "dataset URL (overrides --dataset)")
	pf.StringVar(&fromDate, "from", "", "keep posts on or after this day (YYYY-MM-DD)")
	pf.StringVar(&toDate, "to", "", "keep posts on or before this day (YYYY-MM-DD)")
	pf.StringSliceVar(&sentiments, "sentiment", nil, "keep only these labels (Positive, Neutral, Negative)")
	pf.StringVarP(&keyword, "keyword", "k", "", "keep only posts whose text contains this keyword")

	rootCmd.AddCommand(statsCmd, askCmd, exportCmd, topicsCmd, networkCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "threadlens: %v\n", err)
		os.Exit(1)
	}
}

// loadSession builds the pipeline from the resolved config, loads the
// dataset, and applies the flag-level filter.
func loadSession(ctx context.Context) (*session.Session, error) {
	ctor, err := source.Get(cfg.Source.Provider)
	if err != nil {
		return nil, err
	}

	p := pipeline.New(ctor(), engine.New(sentiment.New()))
	sess, err := p.Load(ctx, source.Config{
		Provider: cfg.Source.Provider,
		Path:     cfg.Source.Path,
		Endpoint: cfg.Source.Endpoint,
		Timeout:  cfg.Source.Timeout,
	})
	if err != nil {
		return nil, err
	}
	if err := applyFlagFilter(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// applyFlagFilter narrows the session's working set from the date,
// sentiment, and keyword flags. No flags means no change.
func applyFlagFilter(sess *session.Session) error {
	if fromDate == "" && toDate == "" && len(sentiments) == 0 && keyword == "" {
		return nil
	}

	f := sess.Filter()
	if fromDate != "" {
		t, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return fmt.Errorf("--from: %w", err)
		}
		f.From = t
	}
	if toDate != "" {
		t, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		// Inclusive end of day.
		f.To = t.Add(24*time.Hour - time.Second)
	}
	if len(sentiments) > 0 {
		f.Sentiments = make([]model.Label, 0, len(sentiments))
		for _, s := range sentiments {
			switch l := model.Label(s); l {
			case model.Positive, model.Neutral, model.Negative:
				f.Sentiments = append(f.Sentiments, l)
			default:
				return fmt.Errorf("unknown sentiment label %q", s)
			}
		}
	}
	if keyword != "" {
		f.Keyword = keyword
	}
	return sess.SetFilter(f)
}
