// Package clip is the clipboard-sink collaborator backed by the system
// clipboard utilities (pbcopy, xclip, xsel, ...).
package clip

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrNoSink indicates no usable clipboard utility on this system.
var ErrNoSink = errors.New("no clipboard sink available")

// Sink copies documents to the system clipboard.
type Sink struct{}

// Copy places data on the clipboard. Returns ErrNoSink when the platform has
// no clipboard support at all; callers treat any error as a signal to fall
// back to stdout.
func (Sink) Copy(data []byte) error {
	if clipboard.Unsupported {
		return ErrNoSink
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
