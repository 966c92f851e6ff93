package diag

// Reporter is the minimal contract for receiving diagnostics.
// Implementations: BagReporter (collects into a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, language string, line int, msg string)
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, string, int, string) {}

// BagReporter appends every report to a Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, language string, line int, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		Language: language,
		Line:     line,
		Message:  msg,
	})
}
