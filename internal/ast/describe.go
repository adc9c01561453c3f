package ast

import (
	"fmt"
	"strings"
)

// Describe renders a short, human-oriented description of a node for
// diagnostics. It is not a stable serialization.
func Describe(n Node) string {
	switch n := n.(type) {
	case nil:
		return "<nil>"
	case *Symbol:
		return fmt.Sprintf("Symbol(%s#%d: %s)", n.Name, n.DeclID, DescribeType(n.Type))
	case *Constant:
		return fmt.Sprintf("Constant(%d values: %s)", len(n.Values), DescribeType(n.Type))
	case *Unary:
		return fmt.Sprintf("Unary(%s: %s)", n.Op, DescribeType(n.Type))
	case *Binary:
		return fmt.Sprintf("Binary(%s: %s)", n.Op, DescribeType(n.Type))
	case *Selection:
		if n.Type != nil {
			return fmt.Sprintf("Selection(: %s)", DescribeType(n.Type))
		}
		return "Selection"
	case *Switch:
		return "Switch"
	case *Loop:
		if n.TestFirst {
			return "Loop(test-first)"
		}
		return "Loop(test-last)"
	case *Branch:
		return fmt.Sprintf("Branch(%s)", n.Op)
	case *Aggregate:
		if n.Name != "" {
			return fmt.Sprintf("Aggregate(%s %q: %d children)", n.Op, n.Name, len(n.Children))
		}
		return fmt.Sprintf("Aggregate(%s: %d children)", n.Op, len(n.Children))
	default:
		return fmt.Sprintf("%T", n)
	}
}

// DescribeType renders a short description of a type descriptor for
// diagnostics.
func DescribeType(t *Type) string {
	if t == nil {
		return "<untyped>"
	}
	var sb strings.Builder
	switch {
	case t.Basic == BasicSampler && t.Sampler != nil:
		sb.WriteString(t.Sampler.String)
	case t.Basic == BasicStruct || t.Basic == BasicBlock:
		sb.WriteString(t.Basic.String())
		sb.WriteByte(' ')
		sb.WriteString(t.Name)
	case t.IsMatrix():
		fmt.Fprintf(&sb, "%s%dx%d", t.Basic, t.MatrixCols, t.MatrixRows)
	case t.VectorSize > 1:
		fmt.Fprintf(&sb, "%s%d", t.Basic, t.VectorSize)
	default:
		sb.WriteString(t.Basic.String())
	}
	for _, dim := range t.ArraySizes {
		fmt.Fprintf(&sb, "[%d]", dim)
	}
	return sb.String()
}
