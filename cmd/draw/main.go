package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/modav/charts"
	"github.com/modav/charts/dash"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	outputDir string
	jobs      int
	logLevel  string
	dark      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "draw [chart.yml...]",
		Short: "Render chart descriptions to svg files",
		Long: `draw reads yaml chart descriptions, loads their csv or xlsx data
and renders each chart to an svg file.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE:       setup,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&outputDir, "dir", "d", "", "Directory of the svg files (default: next to each description)")
	rootCmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "Number of charts rendered at once")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&dark, "dark", false, "Force the dark theme")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid log level: %s", logLevel)
	}
	if jobs <= 0 {
		return fmt.Errorf("invalid number of jobs: %d", jobs)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	charts.SetLogger(logger)
	return nil
}

var errDuplicate = errors.New("output file written by more than one chart")

type job struct {
	File   string
	Output string
	Config dash.Config
}

func run(cmd *cobra.Command, args []string) error {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
	}
	list, err := plan(args)
	if err != nil {
		return err
	}
	grp, ctx := errgroup.WithContext(cmd.Context())
	grp.SetLimit(jobs)
	for _, j := range list {
		grp.Go(func() error {
			return drawFile(ctx, j)
		})
	}
	return grp.Wait()
}

// plan loads every description and rejects the ones that would write to
// the same output file.
func plan(files []string) ([]job, error) {
	var (
		list = make([]job, 0, len(files))
		seen = make(map[string]string)
	)
	for _, file := range files {
		cfg, err := dash.Load(file)
		if err != nil {
			return nil, err
		}
		if dark {
			cfg.Dark = true
		}
		out := filepath.Clean(outputFile(file, cfg))
		if other, ok := seen[out]; ok {
			return nil, fmt.Errorf("%s: %w (%s and %s)", out, errDuplicate, other, file)
		}
		seen[out] = file
		list = append(list, job{
			File:   file,
			Output: out,
			Config: cfg,
		})
	}
	return list, nil
}

func drawFile(ctx context.Context, j job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ch, err := dash.Build(j.Config)
	if err != nil {
		return fmt.Errorf("%s: %w", j.File, err)
	}
	w, err := os.Create(j.Output)
	if err != nil {
		return err
	}
	if err := ch.Render(w); err != nil {
		w.Close()
		return fmt.Errorf("%s: %w", j.Output, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%s: %w", j.Output, err)
	}
	slog.Info("chart rendered", "file", j.File, "output", j.Output, "kind", j.Config.Kind)
	return nil
}

func outputFile(file string, cfg dash.Config) string {
	if outputDir != "" {
		return filepath.Join(outputDir, cfg.Name())
	}
	if cfg.Output != "" {
		return cfg.Output
	}
	base := strings.TrimSuffix(file, filepath.Ext(file))
	return base + ".svg"
}
