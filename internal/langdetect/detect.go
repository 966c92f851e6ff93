// Package langdetect maps input files to registry language identifiers.
// It leans on go-enry for filename and content based detection and then
// normalizes enry's names to the lowercase ids the tokenizer registry uses.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fallback is returned when nothing matches: tokenized by the plain
// tokenizer, never an error.
const Fallback = "text"

// Detect returns the registry language id for a file. Filename wins when
// unambiguous; content is consulted otherwise.
func Detect(path string, content []byte) string {
	if lang, safe := enry.GetLanguageByFilename(filepath.Base(path)); safe {
		return normalize(lang)
	}
	if lang, safe := enry.GetLanguageByExtension(filepath.Base(path)); safe {
		return normalize(lang)
	}
	if len(content) > 0 {
		if lang, safe := enry.GetLanguageByShebang(content); safe {
			return normalize(lang)
		}
		if lang := enry.GetLanguage(filepath.Base(path), content); lang != "" {
			return normalize(lang)
		}
	}
	return Fallback
}

// normalize maps enry language names onto registry ids.
func normalize(lang string) string {
	switch strings.ToLower(lang) {
	case "go":
		return "go"
	case "c":
		return "c"
	case "c++", "cpp":
		return "cpp"
	case "javascript", "jsx":
		return "javascript"
	case "typescript", "tsx":
		return "typescript"
	case "":
		return Fallback
	default:
		return strings.ToLower(lang)
	}
}
