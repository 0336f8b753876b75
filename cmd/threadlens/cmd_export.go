package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hollowoak/threadlens/internal/output"
	fileout "github.com/hollowoak/threadlens/internal/output/file"
	"github.com/hollowoak/threadlens/internal/output/multi"
	"github.com/hollowoak/threadlens/internal/output/stdout"
)

var exportTee string

// exportCmd writes the working set as JSON records.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered posts as NDJSON",
	Long: `Loads the dataset, applies any filter flags, and writes every post
in the working set to the configured destination (stdout by default, or a
file via THREADLENS_OUTPUT / THREADLENS_OUTPUT_PATH). Each record carries
the raw fields plus the derived date, sentiment, and domain.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportTee, "tee", "", "also write to this file")
}

func runExport(cmd *cobra.Command, args []string) error {
	sess, err := loadSession(cmd.Context())
	if err != nil {
		return err
	}

	out, err := buildOutput()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	written := 0
	for _, p := range sess.Working() {
		if err := out.Write(ctx, p); err != nil {
			out.Close()
			return err
		}
		written++
	}
	if err := out.Close(); err != nil {
		return err
	}
	slog.Info("export complete", "posts", written)
	return nil
}

// buildOutput assembles the destination from config and the --tee flag.
func buildOutput() (output.Output, error) {
	detail, err := output.ParseDetail(cfg.Output.Detail)
	if err != nil {
		return nil, err
	}

	var primary output.Output
	switch cfg.Output.Format {
	case "file":
		primary, err = fileout.New(cfg.Output.Path, detail,
			fileout.WithMaxSize(cfg.Output.MaxSize))
		if err != nil {
			return nil, err
		}
	default:
		primary = stdout.New(detail, cfg.Output.Pretty)
	}

	if exportTee == "" {
		return primary, nil
	}
	tee, err := fileout.New(exportTee, detail, fileout.WithMaxSize(cfg.Output.MaxSize))
	if err != nil {
		primary.Close()
		return nil, fmt.Errorf("--tee: %w", err)
	}
	return multi.New(primary, tee), nil
}
