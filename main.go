package main

import (
	"errors"
	"log"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"codeclip/cmd"
	"codeclip/pkg/logging"
	"codeclip/pkg/version"
)

func main() {
	logger, err := logging.Setup(false, "codeclip", version.Get().Version)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, cmd.ErrUsage) {
			zap.L().Error("codeclip execution failed", zap.Error(err))
		}
		syncLogger(logger)
		os.Exit(1)
	}
	syncLogger(logger)
}

// syncLogger flushes buffered log entries. Sync on a terminal-backed stderr
// reports EINVAL on some platforms, so only real files and terminals are
// flushed and that specific failure is ignored.
func syncLogger(logger *zap.Logger) {
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		_ = logger.Sync()
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
