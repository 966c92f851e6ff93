package lexers

import (
	"glint/internal/token"
	"glint/internal/tokenizer"
)

// RegisterBuiltins installs the built-in tokenizers into reg.
func RegisterBuiltins(reg *tokenizer.Registry) {
	langID := func(name string) token.LanguageID {
		return token.LanguageID(reg.EncodedID(name))
	}

	reg.Register("go", NewCStyle(langID("go"), goKeywords, true))
	reg.Register("c", NewCStyle(langID("c"), cKeywords, false))
	reg.Register("cpp", NewCStyle(langID("cpp"), cKeywords, false))
	reg.Register("javascript", NewCStyle(langID("javascript"), jsKeywords, true))
	reg.Register("typescript", NewCStyle(langID("typescript"), jsKeywords, true))
	reg.Register("text", NewPlain(langID("text")))
}
