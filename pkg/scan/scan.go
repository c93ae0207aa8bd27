package scan

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Options carries everything one invocation needs. Collaborators (repository
// detection, clipboard sink, output streams) are injected so the engine runs
// against plain directories in tests.
type Options struct {
	Root        string   // directory to scan; resolved to an absolute path
	ExcludeExt  []string // extension patterns from the CLI
	ExcludeDir  []string // directory names from the CLI
	Interactive bool     // stdout is attached to a terminal

	// DetectRepo returns repository metadata for the root, or nil when the
	// root is not under version control. A nil func means no detection.
	DetectRepo func(root string) *RepoHeader

	Sink   Sink      // clipboard sink; nil means none available
	Stdout io.Writer // defaults to os.Stdout
	Stderr io.Writer // defaults to os.Stderr; carries the success message
}

// Run executes one scan: merge rules, walk, assemble, route. Per-entry read
// failures are reported as warnings after completion; only unreadable config
// files and delivery failures abort the run.
func Run(opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	start := time.Now()

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return fmt.Errorf("resolve root %q: %w", opts.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat root %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root %q is not a directory", root)
	}
	logger.Debug("starting scan", zap.String("root", root))

	header := RepoHeader{Kind: Directory, Name: filepath.Base(root)}
	if opts.DetectRepo != nil {
		if detected := opts.DetectRepo(root); detected != nil {
			header = *detected
		}
	}

	cfgExt, cfgDir, err := LoadConfigFile(root, logger)
	if err != nil {
		return err
	}

	rules := MergeRules(opts.ExcludeExt, opts.ExcludeDir, cfgExt, cfgDir,
		header.Kind == Repository, logger)

	entries, walkWarnings := Walk(root, rules, logger)
	doc, readWarnings := Assemble(BuildHeader(header), entries, logger)
	warnings := append(walkWarnings, readWarnings...)

	result, err := Route(doc, opts.Interactive, opts.Sink, opts.Stdout, logger)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		fmt.Fprintf(opts.Stderr, "warning: %v\n", w)
	}
	switch {
	case result.Destination == DestClipboard:
		fmt.Fprintf(opts.Stderr, "Copied %d files to clipboard.\n", len(entries))
	case result.Degraded:
		fmt.Fprintln(opts.Stderr, "warning: clipboard unavailable, wrote document to stdout")
	}

	logger.Info("scan complete",
		zap.String("root", root),
		zap.Int("files", len(entries)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
