package pack

import (
	"encoding/binary"
	"math"
)

// Structural keys: each by-value store hashes entries through a compact,
// order-stable byte encoding. The encoding is internal to the stores and
// never leaves the process; it only has to be injective.

// NewStrings creates the string interning store.
func NewStrings() *ValueStore[StringID, string] {
	return NewValueStore[StringID](func(s string) string { return s })
}

// NewTypes creates the type interning store.
func NewTypes() *ValueStore[TypeID, Type] {
	return NewValueStore[TypeID](typeKey)
}

// NewRValues creates the rvalue interning store.
func NewRValues() *ValueStore[RValueID, RValue] {
	return NewValueStore[RValueID](rvalueKey)
}

// NewFunctionNames creates the function-name interning store.
func NewFunctionNames() *ValueStore[FunctionID, string] {
	return NewValueStore[FunctionID](func(s string) string { return s })
}

// NewStatementBlocks creates the statement-block interning store.
func NewStatementBlocks() *ValueStore[StatementBlockID, []Statement] {
	return NewValueStore[StatementBlockID](blockKey)
}

func typeKey(t Type) string {
	b := make([]byte, 0, 16)
	b = binary.AppendUvarint(b, uint64(t.Name))
	b = binary.AppendUvarint(b, uint64(t.Qualifiers))
	b = binary.AppendUvarint(b, uint64(len(t.ArraySizes)))
	for _, dim := range t.ArraySizes {
		b = binary.AppendUvarint(b, dim)
	}
	return string(b)
}

func appendValueID(b []byte, v ValueID) []byte {
	b = append(b, byte(v.Kind))
	return binary.AppendUvarint(b, uint64(v.Index))
}

func appendLiteral(b []byte, lit Literal) []byte {
	b = append(b, byte(lit.Kind))
	switch lit.Kind {
	case LiteralBool:
		if lit.Bool {
			return append(b, 1)
		}
		return append(b, 0)
	case LiteralUint, LiteralUint8, LiteralUint16:
		return binary.AppendUvarint(b, lit.Uint)
	case LiteralDouble:
		return binary.AppendUvarint(b, math.Float64bits(lit.Float))
	default:
		return binary.AppendVarint(b, lit.Int)
	}
}

func rvalueKey(r RValue) string {
	b := make([]byte, 0, 24)
	b = append(b, byte(r.Kind))
	switch r.Kind {
	case RValueLiteral:
		b = appendLiteral(b, r.Literal)
	case RValueEvaluable:
		b = append(b, byte(r.Op.Op))
		b = binary.AppendUvarint(b, uint64(r.Op.Function))
		b = binary.AppendUvarint(b, uint64(len(r.Args)))
		for _, arg := range r.Args {
			b = appendValueID(b, arg)
		}
	}
	return string(b)
}

func appendStatement(b []byte, s Statement) []byte {
	b = append(b, byte(s.Kind))
	switch s.Kind {
	case StatementExpr:
		b = binary.AppendUvarint(b, uint64(s.Expr))
	case StatementIf:
		b = appendValueID(b, s.If.Condition)
		b = binary.AppendUvarint(b, uint64(s.If.True))
		b = binary.AppendUvarint(b, uint64(s.If.False))
	case StatementLoop:
		b = appendValueID(b, s.Loop.Condition)
		b = binary.AppendUvarint(b, uint64(s.Loop.Terminal))
		if s.Loop.TestFirst {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
		b = binary.AppendUvarint(b, uint64(s.Loop.Body))
	case StatementSwitch:
		b = appendValueID(b, s.Switch.Condition)
		b = binary.AppendUvarint(b, uint64(s.Switch.Body))
	case StatementBranch:
		b = append(b, byte(s.Branch.Op))
		b = appendValueID(b, s.Branch.Operand)
	}
	return b
}

func blockKey(stmts []Statement) string {
	b := make([]byte, 0, 16*len(stmts)+8)
	b = binary.AppendUvarint(b, uint64(len(stmts)))
	for _, s := range stmts {
		b = appendStatement(b, s)
	}
	return string(b)
}
