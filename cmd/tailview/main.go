// Command tailview annotates a log stream on stdin (or from files) and
// writes the styled result to stdout.
//
// Logging:
//   - Base logger is created here with output level
//   - Logger is passed to all components via dependency injection
//   - No global slog configuration (no slog.SetDefault)
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tailview/internal/logging"
	"tailview/internal/style"
	"tailview/internal/view"
)

var version = "dev"

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		filterQuery    string
		highlightQuery string
		hidePattern    string
		noHeuristic    bool
		noJSON         bool
		showTime       bool
		logLevel       string
	)

	cmd := &cobra.Command{
		Use:     "tailview [file...]",
		Short:   "Filter and colorize log lines",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := logging.New(os.Stderr, level)

			settings := view.DefaultSettings()
			settings.Heuristic = !noHeuristic
			settings.JSON = !noJSON
			settings.ShowTime = showTime

			ann := view.NewAnnotator(settings, logger)
			// Queries from flags must be valid; there is no edit box to
			// correct them in.
			if err := ann.SetHide(hidePattern); err != nil {
				return fmt.Errorf("invalid --hide pattern: %w", err)
			}
			if err := ann.SetFilter(filterQuery); err != nil {
				return fmt.Errorf("invalid --filter query: %w", err)
			}
			if err := ann.SetHighlight(highlightQuery); err != nil {
				return fmt.Errorf("invalid --highlight query: %w", err)
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			if len(args) == 0 {
				return annotate(ann, cmd.InOrStdin(), out, showTime)
			}
			for _, name := range args {
				f, err := os.Open(name)
				if err != nil {
					return err
				}
				err = annotate(ann, f, out, showTime)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterQuery, "filter", "f", "", "filter query; only matching lines are shown")
	cmd.Flags().StringVarP(&highlightQuery, "highlight", "H", "", "highlight query; matches are marked in the output")
	cmd.Flags().StringVar(&hidePattern, "hide", "", "regexp; matching lines are never shown")
	cmd.Flags().BoolVar(&noHeuristic, "no-heuristic", false, "disable heuristic highlighting")
	cmd.Flags().BoolVar(&noJSON, "no-json", false, "disable embedded JSON highlighting")
	cmd.Flags().BoolVarP(&showTime, "time", "t", false, "prefix each line with its arrival time")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "diagnostic log level: debug, info, warn, or error")

	return cmd
}

func annotate(ann *view.Annotator, in io.Reader, out *bufio.Writer, showTime bool) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !ann.Matches(line) {
			continue
		}
		if showTime {
			fmt.Fprint(out, time.Now().Format(time.TimeOnly), " ")
		}
		fmt.Fprintln(out, style.Render(ann.ComputeRuns(line)))
	}
	return sc.Err()
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
