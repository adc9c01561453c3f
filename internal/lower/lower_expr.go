package lower

import (
	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

// lowerValue lowers one expression-position node into a value
// reference. Node kinds are tried in fixed priority order: constant,
// symbol, unary, binary, selection, aggregate. Structurally equal
// sub-expressions anywhere in the program collapse to one rvalue id.
func (l *lowerer) lowerValue(node ast.TypedNode, parent ast.Node, locals *localScope) (pack.ValueID, error) {
	switch n := node.(type) {
	case *ast.Constant:
		return l.lowerConstant(n, parent)
	case *ast.Symbol:
		return l.lowerSymbolValue(n, locals)
	case *ast.Unary:
		return l.lowerUnary(n, parent, locals)
	case *ast.Binary:
		return l.lowerBinary(n, parent, locals)
	case *ast.Selection:
		return l.lowerTernary(n, parent, locals)
	case *ast.Aggregate:
		switch n.Op {
		case ast.OpFunction, ast.OpLinkerObjects, ast.OpParameters, ast.OpSequence:
			// Structural nodes can never be values; reaching one here
			// means the tree violates the input contract.
		case ast.OpFunctionCall:
			return l.lowerCall(n, locals)
		default:
			return l.lowerAggregateValue(n, parent, locals)
		}
	}
	return pack.ValueID{}, errNode(diag.LowerBadNode, node, parent, "cannot lower node as a value")
}

// literalValue converts one front-end constant entry. 64-bit integers
// and strings have no Pack representation and are fatal.
func literalValue(v ast.ConstantValue, node, parent ast.Node) (pack.Literal, error) {
	switch v.Kind {
	case ast.ScalarBool:
		return pack.Literal{Kind: pack.LiteralBool, Bool: v.Bool}, nil
	case ast.ScalarInt8:
		return pack.Literal{Kind: pack.LiteralInt8, Int: v.Int}, nil
	case ast.ScalarUint8:
		return pack.Literal{Kind: pack.LiteralUint8, Uint: v.Uint}, nil
	case ast.ScalarInt16:
		return pack.Literal{Kind: pack.LiteralInt16, Int: v.Int}, nil
	case ast.ScalarUint16:
		return pack.Literal{Kind: pack.LiteralUint16, Uint: v.Uint}, nil
	case ast.ScalarInt:
		return pack.Literal{Kind: pack.LiteralInt, Int: v.Int}, nil
	case ast.ScalarUint:
		return pack.Literal{Kind: pack.LiteralUint, Uint: v.Uint}, nil
	case ast.ScalarDouble:
		return pack.Literal{Kind: pack.LiteralDouble, Float: v.Float}, nil
	default:
		return pack.Literal{}, errNode(diag.LowerUnsupportedLiteral, node, parent,
			"unsupported literal kind %s", v.Kind)
	}
}

// lowerConstant interns a folded constant. A single scalar becomes a
// literal rvalue; a 2-4 element vector constant becomes a call of the
// matching vecN constructor over individually interned element
// literals, never an aggregate literal.
func (l *lowerer) lowerConstant(node *ast.Constant, parent ast.Node) (pack.ValueID, error) {
	if len(node.Values) == 0 {
		return pack.ValueID{}, errNode(diag.LowerUnsupportedLiteral, node, parent,
			"constant value list must not be empty")
	}
	if len(node.Values) == 1 {
		lit, err := literalValue(node.Values[0], node, parent)
		if err != nil {
			return pack.ValueID{}, err
		}
		return pack.RValueValue(l.rvalues.Insert(pack.LiteralRValue(lit))), nil
	}

	if node.Type == nil || !node.Type.IsVector() {
		return pack.ValueID{}, errNode(diag.LowerUnsupportedLiteral, node, parent,
			"constant with multiple values must be a vector")
	}
	var functionName string
	switch len(node.Values) {
	case 2:
		functionName = "vec2"
	case 3:
		functionName = "vec3"
	case 4:
		functionName = "vec4"
	default:
		return pack.ValueID{}, errNode(diag.LowerUnsupportedLiteral, node, parent,
			"unsupported constant array size %d", len(node.Values))
	}
	functionID := l.functionNames.Insert(functionName)
	args := make([]pack.ValueID, len(node.Values))
	for i, v := range node.Values {
		lit, err := literalValue(v, node, parent)
		if err != nil {
			return pack.ValueID{}, err
		}
		args[i] = pack.RValueValue(l.rvalues.Insert(pack.LiteralRValue(lit)))
	}
	rv := pack.EvaluableRValue(pack.FunctionRef(functionID), args...)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}

// lowerSymbolValue resolves a symbol reference. A known global is
// reused; a builtin registers as a typeless global on first sight;
// anything else is local to the current function. All three paths key
// on the front end's per-declaration identity.
func (l *lowerer) lowerSymbolValue(node *ast.Symbol, locals *localScope) (pack.ValueID, error) {
	if id, ok := l.globals.Get(node.DeclID); ok {
		return pack.GlobalValue(id), nil
	}
	nameID := l.strings.Insert(node.Name)
	if node.Type != nil && node.Type.BuiltIn {
		id := l.globals.Insert(node.DeclID, pack.Symbol{Name: nameID, Type: pack.NoTypeID})
		return pack.GlobalValue(id), nil
	}
	typeID, err := l.lowerType(node.Type)
	if err != nil {
		return pack.ValueID{}, err
	}
	id := locals.Insert(node.DeclID, pack.Symbol{Name: nameID, Type: typeID})
	return pack.LocalValue(id), nil
}

func (l *lowerer) lowerUnary(node *ast.Unary, parent ast.Node, locals *localScope) (pack.ValueID, error) {
	operand, err := l.lowerValue(node.Operand, node, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	var operandType *ast.Type
	if node.Operand != nil {
		operandType = node.Operand.ResultType()
	}
	op, err := l.resolveOperator(node.Op, node, parent, node.Type, operandType)
	if err != nil {
		return pack.ValueID{}, err
	}
	rv := pack.EvaluableRValue(op, operand)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}

func (l *lowerer) lowerBinary(node *ast.Binary, parent ast.Node, locals *localScope) (pack.ValueID, error) {
	if node.Op == ast.OpVectorSwizzle {
		return l.lowerSwizzle(node, parent, locals)
	}
	lhs, err := l.lowerValue(node.Left, node, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	rhs, err := l.lowerValue(node.Right, node, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	var leftType *ast.Type
	if node.Left != nil {
		leftType = node.Left.ResultType()
	}
	op, err := l.resolveOperator(node.Op, node, parent, node.Type, leftType)
	if err != nil {
		return pack.ValueID{}, err
	}
	rv := pack.EvaluableRValue(op, lhs, rhs)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}

// lowerSwizzle captures a component selection: the resulting node holds
// the lowered base operand followed by one integer literal per selected
// component, so `v.xy` and `v.yx` stay distinct.
func (l *lowerer) lowerSwizzle(node *ast.Binary, parent ast.Node, locals *localScope) (pack.ValueID, error) {
	selector, ok := node.Right.(*ast.Aggregate)
	if !ok || selector.Op != ast.OpSequence {
		return pack.ValueID{}, errNode(diag.LowerBadSwizzle, node, parent,
			"swizzle selector must be a sequence aggregate")
	}
	base, err := l.lowerValue(node.Left, node, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	args := make([]pack.ValueID, 0, len(selector.Children)+1)
	args = append(args, base)
	for _, component := range selector.Children {
		c, ok := component.(*ast.Constant)
		if !ok || len(c.Values) != 1 {
			return pack.ValueID{}, errNode(diag.LowerBadSwizzle, component, node,
				"swizzle component must be a scalar constant")
		}
		lit, err := literalValue(c.Values[0], component, node)
		if err != nil {
			return pack.ValueID{}, err
		}
		args = append(args, pack.RValueValue(l.rvalues.Insert(pack.LiteralRValue(lit))))
	}
	rv := pack.EvaluableRValue(pack.OperatorRef(pack.OpVectorSwizzle), args...)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}

// lowerTernary lowers a selection in expression position. Both branches
// must themselves be expressions.
func (l *lowerer) lowerTernary(node *ast.Selection, parent ast.Node, locals *localScope) (pack.ValueID, error) {
	condition, err := l.lowerValue(node.Condition, parent, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	trueNode, trueOK := node.TrueBlock.(ast.TypedNode)
	falseNode, falseOK := node.FalseBlock.(ast.TypedNode)
	if !trueOK || !falseOK {
		return pack.ValueID{}, errNode(diag.LowerUntypedNode, node, parent,
			"a selection branch was not typed")
	}
	trueValue, err := l.lowerValue(trueNode, parent, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	falseValue, err := l.lowerValue(falseNode, parent, locals)
	if err != nil {
		return pack.ValueID{}, err
	}
	rv := pack.EvaluableRValue(pack.OperatorRef(pack.OpTernary), condition, trueValue, falseValue)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}

// lowerCall lowers a user or builtin function call; the callee name is
// interned as a function id.
func (l *lowerer) lowerCall(node *ast.Aggregate, locals *localScope) (pack.ValueID, error) {
	functionID := l.functionNames.Insert(node.Name)
	args := make([]pack.ValueID, 0, len(node.Children))
	for _, arg := range node.Children {
		typed, ok := arg.(ast.TypedNode)
		if !ok {
			return pack.ValueID{}, errNode(diag.LowerUntypedNode, arg, node,
				"function call argument was not typed")
		}
		value, err := l.lowerValue(typed, node, locals)
		if err != nil {
			return pack.ValueID{}, err
		}
		args = append(args, value)
	}
	rv := pack.EvaluableRValue(pack.FunctionRef(functionID), args...)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}

// lowerAggregateValue lowers an n-ary operator node; the first
// argument's type feeds the operator mapping for texture naming.
func (l *lowerer) lowerAggregateValue(node *ast.Aggregate, parent ast.Node, locals *localScope) (pack.ValueID, error) {
	args := make([]pack.ValueID, 0, len(node.Children))
	var arg1Type *ast.Type
	for i, arg := range node.Children {
		typed, ok := arg.(ast.TypedNode)
		if !ok {
			return pack.ValueID{}, errNode(diag.LowerUntypedNode, arg, node,
				"operator argument was not typed")
		}
		if i == 0 {
			arg1Type = typed.ResultType()
		}
		value, err := l.lowerValue(typed, node, locals)
		if err != nil {
			return pack.ValueID{}, err
		}
		args = append(args, value)
	}
	op, err := l.resolveOperator(node.Op, node, parent, node.Type, arg1Type)
	if err != nil {
		return pack.ValueID{}, err
	}
	rv := pack.EvaluableRValue(op, args...)
	return pack.RValueValue(l.rvalues.Insert(rv)), nil
}
