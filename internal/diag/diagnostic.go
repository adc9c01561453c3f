// Package diag carries diagnostics produced while lowering a shader
// tree. Since the input is an in-memory AST from an external front end,
// diagnostics locate constructs by node and parent descriptions rather
// than by source spans.
package diag

// Diagnostic is one reported condition.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Node     string // description of the offending node
	Parent   string // description of its immediate parent, if known
}
