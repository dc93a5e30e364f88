package locator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMarker(t *testing.T) {
	for _, tc := range []struct {
		name     string
		raw      string
		expected string
	}{
		{"Empty", "", ""},
		{"Blank", " \t\r\n", ""},
		{"Plain", "/tmp/bundle.js", "/tmp/bundle.js"},
		{"Padded", "  /tmp/bundle.js  \n", "/tmp/bundle.js"},
		{"CRLF", "/tmp/bundle.js\r\n", "/tmp/bundle.js"},
		{"BOM", "\ufeff/tmp/bundle.js", "/tmp/bundle.js"},
		{"Multi-line", "/tmp/a.js\n/tmp/b.js\n", "/tmp/a.js"},
		{"Leading blank lines", "\n\n  /tmp/a.js\n", "/tmp/a.js"},
		{"Inner spaces kept", "/tmp/my bundles/a.js", "/tmp/my bundles/a.js"},
	} {
		require.Equal(t, tc.expected, parseMarker([]byte(tc.raw)), tc.name)
	}
}
