package token

// LanguageID is the compact encoded form of a registered language identifier.
// ID 0 is reserved for "no language".
type LanguageID uint8

// Style packs everything a consumer needs to know about one token into a
// single comparable word:
//
//	bits  0..7   LanguageID
//	bits  8..10  StandardKind
//	bits 11..26  Color
//
// The packing keeps per-line token arrays flat and cheap to copy, which
// matters because every tokenized line produces one of these arrays.
type Style uint32

const (
	styleLangMask  = 0xFF
	styleKindShift = 8
	styleKindMask  = 0x7
	styleColorShift = 11
	styleColorMask  = 0xFFFF
)

// MakeStyle packs a language, kind, and color into a Style.
func MakeStyle(lang LanguageID, kind StandardKind, color Color) Style {
	return Style(uint32(lang)&styleLangMask |
		(uint32(kind)&styleKindMask)<<styleKindShift |
		(uint32(color)&styleColorMask)<<styleColorShift)
}

// Language extracts the encoded language id.
func (s Style) Language() LanguageID {
	return LanguageID(uint32(s) & styleLangMask)
}

// Kind extracts the standard token kind.
func (s Style) Kind() StandardKind {
	return StandardKind((uint32(s) >> styleKindShift) & styleKindMask)
}

// Color extracts the display color class.
func (s Style) Color() Color {
	return Color((uint32(s) >> styleColorShift) & styleColorMask)
}
