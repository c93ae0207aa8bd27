package scan

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Sink delivers the assembled document to a clipboard-like destination.
type Sink interface {
	Copy(data []byte) error
}

// Destination identifies where a document actually ended up.
type Destination int

const (
	DestStdout Destination = iota
	DestClipboard
)

// RouteResult reports the delivery path taken. Degraded is set when the
// clipboard was wanted but unavailable and the document fell back to stdout.
type RouteResult struct {
	Destination Destination
	Degraded    bool
}

// Route delivers the document. The same bytes are produced regardless of
// destination; only the delivery path differs. Interactive invocations go to
// the clipboard sink, falling back to stdout with a warning when no sink is
// available. Non-interactive invocations stream straight to stdout and never
// touch the clipboard.
func Route(doc []byte, interactive bool, sink Sink, stdout io.Writer, logger *zap.Logger) (RouteResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if interactive && sink != nil {
		err := sink.Copy(doc)
		if err == nil {
			logger.Debug("document copied to clipboard", zap.Int("bytes", len(doc)))
			return RouteResult{Destination: DestClipboard}, nil
		}
		logger.Warn("clipboard unavailable, falling back to stdout", zap.Error(err))
		if _, werr := stdout.Write(doc); werr != nil {
			return RouteResult{}, fmt.Errorf("write document to stdout: %w", werr)
		}
		return RouteResult{Destination: DestStdout, Degraded: true}, nil
	}

	if interactive {
		logger.Warn("no clipboard sink configured, writing to stdout")
	}
	if _, err := stdout.Write(doc); err != nil {
		return RouteResult{}, fmt.Errorf("write document to stdout: %w", err)
	}
	return RouteResult{Destination: DestStdout, Degraded: interactive}, nil
}
