package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"codeclip/pkg/clip"
	"codeclip/pkg/logging"
	"codeclip/pkg/repoinfo"
	"codeclip/pkg/scan"
	"codeclip/pkg/version"
)

// ErrUsage marks invocations that only showed usage text (--help, bad flags).
// main maps it to exit code 1 without logging it as a failure.
var ErrUsage = errors.New("usage shown")

var (
	excludeExt []string
	excludeDir []string
	debug      bool

	helpShown bool
)

// RootCmd scans a directory tree and delivers the aggregated contents to the
// clipboard (interactive) or stdout (piped).
var RootCmd = &cobra.Command{
	Use:   "codeclip [directory]",
	Short: "Copy a directory tree's file contents as one text block",
	Long: `codeclip walks a directory tree, applies exclusion rules from flags and an
optional .codeclip.toml file, and aggregates every included file into a single
text block: a provenance header followed by each file's contents. When stdout
is a terminal the block lands on the clipboard; when piped it streams to
stdout.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zap.L()
		if debug {
			var err error
			logger, err = logging.Setup(true, "codeclip", version.Get().Version)
			if err != nil {
				return fmt.Errorf("initialize debug logger: %w", err)
			}
		}

		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		opts := scan.Options{
			Root:        root,
			ExcludeExt:  excludeExt,
			ExcludeDir:  excludeDir,
			Interactive: term.IsTerminal(int(os.Stdout.Fd())),
			DetectRepo:  repoinfo.Detect,
			Sink:        clip.Sink{},
			Stdout:      os.Stdout,
			Stderr:      os.Stderr,
		}
		return scan.Run(opts, logger)
	},
}

func init() {
	RootCmd.Flags().StringSliceVarP(&excludeExt, "exclude-ext", "e", nil,
		"extension patterns to exclude (repeatable, comma-separated; '.md' or '*.tmp')")
	RootCmd.Flags().StringSliceVarP(&excludeDir, "exclude-dir", "d", nil,
		"directory names to exclude (repeatable, comma-separated)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Help is a usage-class invocation here and must exit non-zero, so the
	// default help func is wrapped to record that it ran.
	defaultHelp := RootCmd.HelpFunc()
	RootCmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		defaultHelp(c, args)
		helpShown = true
	})

	RootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.ErrOrStderr(), "Error:", err)
		_ = c.Usage()
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
}

// Execute runs the root command and folds help invocations into the usage
// error class.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		return err
	}
	if helpShown {
		return ErrUsage
	}
	return nil
}
