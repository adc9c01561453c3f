package lower

import (
	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

// lowerBlock interns a node as a statement block. A sequence aggregate
// contributes all of its children; any other node is wrapped into a
// single-statement block. Structurally equal blocks collapse to one id.
func (l *lowerer) lowerBlock(node, parent ast.Node, locals *localScope) (pack.StatementBlockID, error) {
	var statements []pack.Statement
	if agg, ok := node.(*ast.Aggregate); ok && agg.Op == ast.OpSequence {
		for _, child := range agg.Children {
			if err := l.nodeToStatements(child, node, locals, &statements); err != nil {
				return pack.NoStatementBlockID, err
			}
		}
	} else if err := l.nodeToStatements(node, parent, locals, &statements); err != nil {
		return pack.NoStatementBlockID, err
	}
	return l.blocks.Insert(statements), nil
}

// nodeToStatements turns one non-root node into zero or more statements
// appended to output. Bare sequences flatten into the enclosing block;
// a bare symbol or literal standing alone is a no-op and is elided.
func (l *lowerer) nodeToStatements(node, parent ast.Node, locals *localScope, output *[]pack.Statement) error {
	switch n := node.(type) {
	case *ast.Loop:
		return l.lowerLoop(n, parent, locals, output)

	case *ast.Branch:
		op, err := branchOperator(n.Op, n, parent)
		if err != nil {
			return err
		}
		branch := pack.BranchStatement{Op: op}
		if n.Operand != nil {
			operand, err := l.lowerValue(n.Operand, n, locals)
			if err != nil {
				return err
			}
			branch.Operand = operand
		}
		*output = append(*output, pack.BranchStmt(branch))
		return nil

	case *ast.Switch:
		condition, ok := n.Condition.(ast.TypedNode)
		if !ok {
			return errNode(diag.LowerUntypedNode, n.Condition, n, "switch condition was not typed")
		}
		conditionValue, err := l.lowerValue(condition, parent, locals)
		if err != nil {
			return err
		}
		bodyID, err := l.lowerBlock(n.Body, parent, locals)
		if err != nil {
			return err
		}
		*output = append(*output, pack.SwitchStmt(pack.SwitchStatement{
			Condition: conditionValue,
			Body:      bodyID,
		}))
		return nil

	case *ast.Selection:
		conditionValue, err := l.lowerValue(n.Condition, parent, locals)
		if err != nil {
			return err
		}
		trueID, err := l.lowerBlock(n.TrueBlock, parent, locals)
		if err != nil {
			return err
		}
		stmt := pack.IfStatement{Condition: conditionValue, True: trueID}
		if n.FalseBlock != nil {
			falseID, err := l.lowerBlock(n.FalseBlock, parent, locals)
			if err != nil {
				return err
			}
			stmt.False = falseID
		}
		*output = append(*output, pack.IfStmt(stmt))
		return nil
	}

	if agg, ok := node.(*ast.Aggregate); ok && agg.Op == ast.OpSequence {
		// Flatten into the enclosing block.
		for _, child := range agg.Children {
			if err := l.nodeToStatements(child, node, locals, output); err != nil {
				return err
			}
		}
		return nil
	}

	if typed, ok := node.(ast.TypedNode); ok {
		switch node.(type) {
		case *ast.Symbol, *ast.Constant:
			// A stray symbol or literal does nothing as a statement.
			return nil
		}
		value, err := l.lowerValue(typed, parent, locals)
		if err != nil {
			return err
		}
		rvalueID, ok := value.AsRValue()
		if !ok {
			return errNode(diag.LowerBadStatement, node, parent,
				"encountered a non-rvalue as a statement")
		}
		*output = append(*output, pack.ExprStatement(rvalueID))
		return nil
	}

	return errNode(diag.LowerBadStatement, node, parent, "cannot convert node to a statement")
}

// lowerLoop lowers a loop statement. The terminal is kept only when it
// can have an effect: a bare symbol or literal terminal is pruned, and
// anything kept must lower to an evaluable rvalue.
func (l *lowerer) lowerLoop(node *ast.Loop, parent ast.Node, locals *localScope, output *[]pack.Statement) error {
	if node.Test == nil {
		return errNode(diag.LowerBadNode, node, parent, "loop has no test expression")
	}
	conditionValue, err := l.lowerValue(node.Test, parent, locals)
	if err != nil {
		return err
	}

	terminal := pack.NoRValueID
	if node.Terminal != nil {
		switch node.Terminal.(type) {
		case *ast.Symbol, *ast.Constant:
			// No effect; prune.
		default:
			terminalValue, err := l.lowerValue(node.Terminal, parent, locals)
			if err != nil {
				return err
			}
			rvalueID, ok := terminalValue.AsRValue()
			if !ok {
				return errNode(diag.LowerBadLoopTerminal, node.Terminal, node,
					"encountered a non-rvalue in a loop terminal")
			}
			terminal = rvalueID
		}
	}

	bodyID, err := l.lowerBlock(node.Body, parent, locals)
	if err != nil {
		return err
	}
	*output = append(*output, pack.LoopStmt(pack.LoopStatement{
		Condition: conditionValue,
		Terminal:  terminal,
		TestFirst: node.TestFirst,
		Body:      bodyID,
	}))
	return nil
}
