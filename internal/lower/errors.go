package lower

import (
	"fmt"

	"glslpack/internal/ast"
	"glslpack/internal/diag"
)

// Error is a fatal lowering failure. It records the diagnostic code and
// descriptions of the offending node and its immediate parent so the
// shader construct can be located without the original tree.
type Error struct {
	Code    diag.Code
	Message string
	Node    string
	Parent  string
}

func (e *Error) Error() string {
	switch {
	case e.Node == "":
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	case e.Parent == "":
		return fmt.Sprintf("[%s] %s: node = %s", e.Code, e.Message, e.Node)
	default:
		return fmt.Sprintf("[%s] %s: node = %s, parent = %s", e.Code, e.Message, e.Node, e.Parent)
	}
}

// errNode builds a fatal error around a node and its parent.
func errNode(code diag.Code, node, parent ast.Node, format string, args ...any) *Error {
	e := &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
	if node != nil {
		e.Node = ast.Describe(node)
	}
	if parent != nil {
		e.Parent = ast.Describe(parent)
	}
	return e
}
