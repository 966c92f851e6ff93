package token

// StandardKind is the coarse token classification used by editing features
// (auto-closing pairs, commenting, word navigation). It intentionally has very
// few values: feature code must not depend on language-specific detail.
type StandardKind uint8

const (
	// KindOther covers everything that is not a comment, string, or regex.
	KindOther StandardKind = iota
	// KindComment marks line and block comment content.
	KindComment
	// KindString marks string and character literal content.
	KindString
	// KindRegex marks regular expression literal content.
	KindRegex
)

// String returns the lowercase name of the kind.
func (k StandardKind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindComment:
		return "comment"
	case KindString:
		return "string"
	case KindRegex:
		return "regex"
	default:
		return "unknown"
	}
}

// Color identifies a display class a theme can map to a concrete style.
// ColorNone renders as plain text.
type Color uint16

const (
	ColorNone Color = iota
	ColorComment
	ColorString
	ColorKeyword
	ColorNumber
	ColorOperator
	ColorIdent
	ColorType
	ColorPunct
)

// String returns the lowercase name of the color class.
func (c Color) String() string {
	switch c {
	case ColorNone:
		return "none"
	case ColorComment:
		return "comment"
	case ColorString:
		return "string"
	case ColorKeyword:
		return "keyword"
	case ColorNumber:
		return "number"
	case ColorOperator:
		return "operator"
	case ColorIdent:
		return "ident"
	case ColorType:
		return "type"
	case ColorPunct:
		return "punct"
	default:
		return "unknown"
	}
}
