package scan

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// HeaderKind distinguishes a version-controlled root from a plain directory.
type HeaderKind int

const (
	Directory HeaderKind = iota
	Repository
)

// RepoHeader describes the provenance of the scanned root. It is produced
// once by the repository-info collaborator before traversal and read-only
// afterward.
type RepoHeader struct {
	Kind      HeaderKind
	Name      string
	Branch    string // empty when unknown (e.g. repository with no commits)
	RemoteURL string // empty when the repository has no remote configured
}

// fence delimits verbatim file content in the assembled document.
const fence = "```"

// BuildHeader formats the leading metadata block. Repository roots get name,
// branch, and remote lines in that fixed order; the branch and remote lines
// are omitted entirely when unknown rather than printed empty. Plain
// directories get a single name line. The block always ends with a blank
// line and the section title for the file listing.
func BuildHeader(h RepoHeader) string {
	var b strings.Builder
	switch h.Kind {
	case Repository:
		fmt.Fprintf(&b, "Repository: %s\n", h.Name)
		if h.Branch != "" {
			fmt.Fprintf(&b, "Branch: %s\n", h.Branch)
		}
		if h.RemoteURL != "" {
			fmt.Fprintf(&b, "Remote: %s\n", h.RemoteURL)
		}
	default:
		fmt.Fprintf(&b, "Directory: %s\n", h.Name)
	}
	b.WriteString("\nFiles:\n\n")
	return b.String()
}

// Assemble concatenates the header and one section per file, in traversal
// order, into the final document. Each section is a path marker line, a
// fenced block with the file's raw content, and a trailing blank line.
//
// Binary-looking content is replaced with a one-line placeholder inside the
// fence: the file stays visible in the artifact without corrupting it.
// Unreadable files are recorded as TraversalErrors and skipped; assembly
// continues.
func Assemble(header string, files []FileEntry, logger *zap.Logger) ([]byte, []TraversalError) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var buf bytes.Buffer
	var warnings []TraversalError

	buf.WriteString(header)
	for _, f := range files {
		content, err := os.ReadFile(f.AbsolutePath)
		if err != nil {
			warnings = append(warnings, TraversalError{Path: f.RelativePath, Err: err})
			logger.Warn("cannot read file, omitting from document",
				zap.String("path", f.RelativePath), zap.Error(err))
			continue
		}

		fmt.Fprintf(&buf, "--- %s ---\n", f.RelativePath)
		buf.WriteString(fence + "\n")
		if isBinary(content) {
			fmt.Fprintf(&buf, "[binary file omitted: %d bytes]\n", len(content))
		} else {
			buf.Write(content)
			// Keep the closing fence on its own line. Purely a function of
			// content, so determinism is preserved.
			if len(content) > 0 && content[len(content)-1] != '\n' {
				buf.WriteByte('\n')
			}
		}
		buf.WriteString(fence + "\n\n")
	}

	logger.Debug("assembled document",
		zap.Int("bytes", buf.Len()),
		zap.Int("files", len(files)),
		zap.Int("unreadable", len(warnings)))
	return buf.Bytes(), warnings
}
