package pack

// Type is a canonical type record: a resolved name, optional qualifier
// text and the declared array dimensions, outer to inner. Array sizes are
// kept out of the name on purpose so that `float[4]` and `float[2]` share
// the name string.
type Type struct {
	Name       StringID
	Qualifiers StringID // NoStringID when the type carries no qualifiers
	ArraySizes []uint64
}

// Symbol is a named entity. Type is NoTypeID only for builtin symbols,
// which the language predefines without a user declaration.
type Symbol struct {
	Name StringID
	Type TypeID
}

// ValueKind discriminates the three id spaces a ValueID can point into.
type ValueKind uint8

const (
	// ValueGlobal references the program-wide symbol table.
	ValueGlobal ValueKind = iota
	// ValueLocal references the current function's symbol table.
	ValueLocal
	// ValueRValue references the interned value-node table.
	ValueRValue
)

// ValueID is a tagged reference to a global symbol, a local symbol or an
// rvalue. The zero value is invalid (ids start at 1).
type ValueID struct {
	Kind  ValueKind
	Index uint32
}

// GlobalValue wraps a global symbol id.
func GlobalValue(id GlobalSymbolID) ValueID {
	return ValueID{Kind: ValueGlobal, Index: uint32(id)}
}

// LocalValue wraps a local symbol id.
func LocalValue(id LocalSymbolID) ValueID {
	return ValueID{Kind: ValueLocal, Index: uint32(id)}
}

// RValueValue wraps an rvalue id.
func RValueValue(id RValueID) ValueID {
	return ValueID{Kind: ValueRValue, Index: uint32(id)}
}

// IsValid reports whether the reference points at a stored entity.
func (v ValueID) IsValid() bool { return v.Index != 0 }

// AsRValue unwraps the reference when it points into the rvalue table.
func (v ValueID) AsRValue() (RValueID, bool) {
	if v.Kind != ValueRValue || v.Index == 0 {
		return NoRValueID, false
	}
	return RValueID(v.Index), true
}

// LiteralKind enumerates the scalar kinds a literal can hold.
type LiteralKind uint8

const (
	LiteralBool LiteralKind = iota
	LiteralInt8
	LiteralUint8
	LiteralInt16
	LiteralUint16
	LiteralInt
	LiteralUint
	LiteralDouble
)

// Literal is a single scalar constant. Exactly one of the payload fields
// is meaningful, selected by Kind.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
}

// OpRef names what an evaluable rvalue applies: either a closed-set
// operator tag or an interned function name (user call, builtin, type
// constructor).
type OpRef struct {
	Op       RValueOperator
	Function FunctionID
}

// OperatorRef wraps an operator tag.
func OperatorRef(op RValueOperator) OpRef { return OpRef{Op: op} }

// FunctionRef wraps a function name id.
func FunctionRef(id FunctionID) OpRef { return OpRef{Function: id} }

// IsFunction reports whether the reference names a function rather than
// an operator tag.
func (o OpRef) IsFunction() bool { return o.Function.IsValid() }

// RValueKind discriminates literal from evaluable rvalues.
type RValueKind uint8

const (
	// RValueLiteral is a scalar constant.
	RValueLiteral RValueKind = iota
	// RValueEvaluable applies an operator or function to arguments.
	RValueEvaluable
)

// RValue is one interned value node. Structurally equal rvalues anywhere
// in the program collapse to a single id.
type RValue struct {
	Kind    RValueKind
	Literal Literal // RValueLiteral
	Op      OpRef   // RValueEvaluable
	Args    []ValueID
}

// LiteralRValue builds a literal node.
func LiteralRValue(lit Literal) RValue {
	return RValue{Kind: RValueLiteral, Literal: lit}
}

// EvaluableRValue builds an operator/function application node.
func EvaluableRValue(op OpRef, args ...ValueID) RValue {
	return RValue{Kind: RValueEvaluable, Op: op, Args: args}
}

// StatementKind discriminates statement variants.
type StatementKind uint8

const (
	// StatementExpr is an expression evaluated for its effect.
	StatementExpr StatementKind = iota
	// StatementIf is a selection with an optional else block.
	StatementIf
	// StatementLoop is a test-first or test-last loop.
	StatementLoop
	// StatementSwitch is a switch over a condition value.
	StatementSwitch
	// StatementBranch is a flow-control operator with an optional operand.
	StatementBranch
)

// IfStatement holds a condition, a true block and an optional false
// block (NoStatementBlockID when absent).
type IfStatement struct {
	Condition ValueID
	True      StatementBlockID
	False     StatementBlockID
}

// LoopStatement holds a loop condition, an optional terminal expression
// (NoRValueID when absent or pruned), the test order and a body.
type LoopStatement struct {
	Condition ValueID
	Terminal  RValueID
	TestFirst bool
	Body      StatementBlockID
}

// SwitchStatement holds a switch condition and its body block.
type SwitchStatement struct {
	Condition ValueID
	Body      StatementBlockID
}

// BranchStatement holds a branch operator and an optional operand, e.g.
// `return expr`. Operand validity carries the presence bit.
type BranchStatement struct {
	Op      BranchOperator
	Operand ValueID
}

// Statement is one control/effect unit within a block. Kind selects the
// meaningful payload field; the struct stays comparable so blocks can be
// canonicalized cheaply.
type Statement struct {
	Kind   StatementKind
	Expr   RValueID
	If     IfStatement
	Loop   LoopStatement
	Switch SwitchStatement
	Branch BranchStatement
}

// ExprStatement wraps an rvalue evaluated as a statement.
func ExprStatement(id RValueID) Statement {
	return Statement{Kind: StatementExpr, Expr: id}
}

// IfStmt wraps a selection statement.
func IfStmt(s IfStatement) Statement { return Statement{Kind: StatementIf, If: s} }

// LoopStmt wraps a loop statement.
func LoopStmt(s LoopStatement) Statement { return Statement{Kind: StatementLoop, Loop: s} }

// SwitchStmt wraps a switch statement.
func SwitchStmt(s SwitchStatement) Statement { return Statement{Kind: StatementSwitch, Switch: s} }

// BranchStmt wraps a branch statement.
func BranchStmt(s BranchStatement) Statement { return Statement{Kind: StatementBranch, Branch: s} }

// FunctionDefinition is a fully lowered function body.
type FunctionDefinition struct {
	Function   FunctionID
	ReturnType TypeID
	Parameters []LocalSymbolID
	Body       StatementBlockID
	Locals     map[LocalSymbolID]Symbol
}

// GlobalDefinition pairs a global symbol with its initializer value.
// Replay order is semantically meaningful downstream, so these live in an
// ordered list separate from the unordered symbol table.
type GlobalDefinition struct {
	Symbol GlobalSymbolID
	Value  ValueID
}

// Pack is the immutable result of one lowering pass and the sole
// artifact handed to downstream consumers.
type Pack struct {
	Version int

	Strings         map[StringID]string
	Types           map[TypeID]Type
	GlobalSymbols   map[GlobalSymbolID]Symbol
	RValues         map[RValueID]RValue
	FunctionNames   map[FunctionID]string
	StatementBlocks map[StatementBlockID][]Statement

	FunctionDefinitions map[FunctionID]FunctionDefinition
	FunctionPrototypes  map[FunctionID]struct{}

	GlobalDefinitionsInOrder   []GlobalDefinition
	FunctionDefinitionsInOrder []FunctionID
}
