package diag

// Reporter is the minimal contract for receiving diagnostics from the
// lowering pass. Implementations: BagReporter (collects into a Bag),
// NopReporter (drops everything).
type Reporter interface {
	Report(code Code, sev Severity, msg, node, parent string)
}

// BagReporter is an adapter that writes into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, msg, node, parent string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev, Code: code, Message: msg,
		Node: node, Parent: parent,
	})
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, string, string, string) {}
