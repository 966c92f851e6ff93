package version_test

import (
	"strings"
	"testing"

	"glint/internal/version"
)

func TestVersionParts(t *testing.T) {
	// The string may carry ANSI styling depending on the terminal; the
	// semantic parts must be present either way.
	for _, part := range []string{"0", "1", ".", "-dev"} {
		if !strings.Contains(version.Version, part) {
			t.Fatalf("Version %q missing %q", version.Version, part)
		}
	}
}
