// Package lexers provides the built-in tokenizer implementations registered
// with the engine's registry.
//
// These are line tokenizers, not parsers: each call sees one line plus the
// lexical state carried over from the previous line (open block comment, open
// raw string). Classification is deliberately shallow; anything finer-grained
// belongs to a semantic layer, not here.
package lexers
