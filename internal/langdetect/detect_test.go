package langdetect_test

import (
	"testing"

	"glint/internal/langdetect"
)

func TestDetectByFilename(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"src/deep/lib.go", "go"},
		{"tool.py", "python"},
		{"notes.txt", "text"},
	}
	for _, tc := range cases {
		if got := langdetect.Detect(tc.path, nil); got != tc.want {
			t.Fatalf("Detect(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestDetectByShebang(t *testing.T) {
	got := langdetect.Detect("runme", []byte("#!/usr/bin/env node\nconsole.log(1)\n"))
	if got != "javascript" {
		t.Fatalf("Detect shebang = %q, want javascript", got)
	}
}

func TestDetectFallback(t *testing.T) {
	if got := langdetect.Detect("mystery.zzz-unknown", nil); got != langdetect.Fallback {
		t.Fatalf("Detect = %q, want fallback %q", got, langdetect.Fallback)
	}
}
