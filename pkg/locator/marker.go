package locator

import "strings"

const byteOrderMark = "\ufeff"

// parseMarker extracts the bundle path from marker file contents. Only the
// first non-blank line counts; surrounding whitespace is dropped.
func parseMarker(raw []byte) string {
	content := strings.TrimPrefix(string(raw), byteOrderMark)
	content = strings.TrimSpace(content)

	if line, _, found := strings.Cut(content, "\n"); found {
		content = line
	}

	return strings.TrimSpace(content)
}
