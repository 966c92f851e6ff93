package diag

import "fmt"

// Code identifies a diagnostic category.
type Code uint16

const (
	// UnknownCode is the fallback for uncategorized diagnostics.
	UnknownCode Code = 0

	// TokPanic means a tokenizer implementation panicked; the line was given
	// null tokenization instead.
	TokPanic Code = 1001
	// TokBadOffsets means a tokenizer returned out-of-order or out-of-range
	// token offsets that had to be repaired.
	TokBadOffsets Code = 1002
	// TokMissing means no tokenizer is registered for a requested language.
	TokMissing Code = 1003
)

// ID returns the stable textual id of the code.
func (c Code) ID() string {
	switch c {
	case TokPanic:
		return "TOK1001"
	case TokBadOffsets:
		return "TOK1002"
	case TokMissing:
		return "TOK1003"
	default:
		return fmt.Sprintf("TOK%04d", uint16(c))
	}
}

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Diagnostic is one recorded tokenization problem. Line is 1-based and 0 when
// the problem is not tied to a specific line.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Language string
	Line     int
	Message  string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("[%s] %s %s:%d: %s", d.Code.ID(), d.Severity, d.Language, d.Line, d.Message)
	}
	return fmt.Sprintf("[%s] %s %s: %s", d.Code.ID(), d.Severity, d.Language, d.Message)
}
