package scan

import "bytes"

// sniffLen bounds how much of a file is inspected for binary content.
const sniffLen = 512

// isBinary reports whether content looks like binary data rather than text:
// a NUL byte anywhere in the sniffed prefix, or more than 30% non-printable
// bytes. Empty content counts as text.
func isBinary(content []byte) bool {
	sample := content
	if len(sample) > sniffLen {
		sample = sample[:sniffLen]
	}
	if len(sample) == 0 {
		return false
	}
	if bytes.IndexByte(sample, 0) >= 0 {
		return true
	}
	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable reports whether a byte is printable ASCII or common whitespace.
func isPrintable(b byte) bool {
	return (b >= 32 && b < 127) || b == '\n' || b == '\r' || b == '\t'
}
