package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	xgxcause "github.com/xgx-io/xgx-cause"
	"github.com/xgx-io/xgx-cause/internal/lint"
	"github.com/xgx-io/xgx-cause/zapbridge"
)

var (
	strict    bool
	verbose   bool
	backtrace bool
)

var rootCmd = &cobra.Command{
	Use:   "cfglint <file>...",
	Short: "Lint TOML/YAML config files",
	Long: `cfglint checks configuration files for syntactic and semantic
problems and prints every failure as a full cause chain, outermost
context first, root cause last.

Exit status is non-zero when any file fails. Outside --strict mode a
missing file is tolerated and skipped.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command. Rendering happens inside run; main only
// maps the returned error to the exit status.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().BoolVar(&strict, "strict", false, "fail on missing files instead of skipping them")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "structured diagnostic logging")
	rootCmd.Flags().BoolVar(&backtrace, "backtrace", false, "capture backtraces at error construction sites")
}

func run(cmd *cobra.Command, args []string) error {
	// The capture flag is process-wide and set exactly once, before any
	// error can be constructed.
	if backtrace {
		xgxcause.SetCaptureBacktraces(true)
	}

	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	failed := 0
	for _, path := range args {
		res, err := lint.File(path, strict)
		if err != nil {
			// Unhandled failure reaching the top: render the full chain
			// to stderr, once.
			ev := xgxcause.From(err)
			fmt.Fprintln(os.Stderr, ev.Render())
			zapbridge.Error(logger, "lint aborted", ev)
			failed++
			continue
		}
		if res.Skipped {
			logger.Info("missing file skipped", zap.String("file", path))
			continue
		}
		for _, v := range res.Violations {
			fmt.Fprintln(os.Stderr, v.Render())
			zapbridge.Warn(logger, "check failed", v)
		}
		if len(res.Violations) > 0 {
			failed++
		} else {
			logger.Info("ok", zap.String("file", path))
		}
	}

	if failed > 0 {
		return xgxcause.Custom("lint failed", "files_failed", failed)
	}
	return nil
}
