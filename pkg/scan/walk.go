package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"go.uber.org/zap"
)

// FileEntry is one regular file discovered during traversal.
type FileEntry struct {
	RelativePath string // slash-separated, relative to the root
	AbsolutePath string
}

// TraversalError records a single entry that could not be read. It never
// aborts the walk; callers surface the accumulated list after completion.
type TraversalError struct {
	Path string
	Err  error
}

func (e TraversalError) Error() string {
	return fmt.Sprintf("traverse %s: %v", e.Path, e.Err)
}

// Walk enumerates all included regular files under root in a single pass.
// Order is lexicographic at each directory level, depth-first, which makes
// the resulting document reproducible byte-for-byte on an unchanged tree.
//
// A directory is pruned the moment a directory rule matches its name, so
// files beneath it are never stat'd or tested against extension rules.
// Entries that are neither regular files nor directories are skipped.
func Walk(root string, rules RuleSet, logger *zap.Logger) ([]FileEntry, []TraversalError) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var entries []FileEntry
	var warnings []TraversalError

	// WalkDir visits each directory's entries in lexical order; fn below
	// never returns an error other than SkipDir, so the walk runs to
	// completion regardless of unreadable entries.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			warnings = append(warnings, TraversalError{Path: path, Err: err})
			logger.Warn("cannot access path, skipping", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		if d.IsDir() {
			if rules.ExcludesDir(d.Name()) {
				logger.Debug("pruning excluded directory", zap.String("path", path))
				return filepath.SkipDir
			}
			return nil
		}

		// Sockets, devices, symlinks and the like are silently skipped.
		if !d.Type().IsRegular() {
			logger.Debug("skipping non-regular entry", zap.String("path", path))
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			warnings = append(warnings, TraversalError{Path: path, Err: relErr})
			return nil
		}
		rel = filepath.ToSlash(rel)

		if rules.ExcludesFile(rel) {
			logger.Debug("skipping excluded file", zap.String("path", rel))
			return nil
		}

		entries = append(entries, FileEntry{RelativePath: rel, AbsolutePath: path})
		return nil
	})

	logger.Debug("traversal complete",
		zap.Int("files", len(entries)),
		zap.Int("warnings", len(warnings)))
	return entries, warnings
}
