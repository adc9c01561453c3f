// Package ast defines the input contract of the lowering engine: the
// already-parsed, already-type-checked shader tree handed over by the
// external GLSL front end.
//
// The node set is closed. Every expression-position node carries a
// resolved *Type, and every symbol node carries a stable per-declaration
// integer identity that is consistent across repeated references within
// one compilation unit. This package performs no parsing or checking of
// its own.
package ast

// Node is any node of the front end's tree.
type Node interface {
	node()
}

// TypedNode is a node that can stand in expression position and carries
// a resolved result type.
type TypedNode interface {
	Node
	ResultType() *Type
}

// Symbol is a reference to a declared or builtin identifier. DeclID is
// the front end's opaque per-declaration identity used for deduplication;
// it is never compared across independent lowering runs.
type Symbol struct {
	Name   string
	DeclID int64
	Type   *Type
}

// Constant is a front-end-folded constant. A single entry is a scalar;
// 2-4 entries form a short vector constant.
type Constant struct {
	Type   *Type
	Values []ConstantValue
}

// Unary applies an operator to one operand.
type Unary struct {
	Op      Operator
	Type    *Type
	Operand TypedNode
}

// Binary applies an operator to two operands. For OpVectorSwizzle the
// right side is a sequence aggregate of component-index constants.
type Binary struct {
	Op    Operator
	Type  *Type
	Left  TypedNode
	Right TypedNode
}

// Selection is if/else in statement position, or a ternary when it
// carries a type and both blocks are typed.
type Selection struct {
	Type       *Type // nil in statement position
	Condition  TypedNode
	TrueBlock  Node
	FalseBlock Node // nil when there is no else branch
}

// Switch dispatches over a condition; case/default markers appear as
// branch nodes inside the body.
type Switch struct {
	Condition Node
	Body      Node
}

// Loop covers for/while/do-while. Terminal is the step expression of a
// counted loop and may be nil; TestFirst distinguishes while from
// do-while.
type Loop struct {
	Test      TypedNode
	Terminal  TypedNode // nil when absent
	Body      Node
	TestFirst bool
}

// Branch is a flow-control operator (return, break, discard, case, ...)
// with an optional operand expression.
type Branch struct {
	Op      Operator
	Operand TypedNode // nil when absent
}

// Aggregate is an n-ary node: structural sequences, linker-object lists,
// function definitions and calls, and every n-ary operator.
type Aggregate struct {
	Op       Operator
	Name     string // callee or function name where applicable
	Type     *Type
	Children []Node
}

func (*Symbol) node()    {}
func (*Constant) node()  {}
func (*Unary) node()     {}
func (*Binary) node()    {}
func (*Selection) node() {}
func (*Switch) node()    {}
func (*Loop) node()      {}
func (*Branch) node()    {}
func (*Aggregate) node() {}

// ResultType implementations; nil results mean the node cannot stand in
// expression position in this particular tree.
func (n *Symbol) ResultType() *Type    { return n.Type }
func (n *Constant) ResultType() *Type  { return n.Type }
func (n *Unary) ResultType() *Type     { return n.Type }
func (n *Binary) ResultType() *Type    { return n.Type }
func (n *Selection) ResultType() *Type { return n.Type }
func (n *Aggregate) ResultType() *Type { return n.Type }
