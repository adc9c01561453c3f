// Package lower implements the single-pass lowering of a type-checked
// shader tree into the fully interned Pack representation.
//
// The pass is synchronous and owns all interning tables exclusively; on
// the first fatal condition it aborts with an error and no partial Pack.
// The one tolerated inconsistency is an unrecognized value operator,
// which is reported through the diagnostics reporter and degrades to a
// placeholder tag (see operator.go).
package lower

import (
	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

// Options configures one lowering pass.
type Options struct {
	// Reporter receives non-fatal diagnostics. Nil means drop them.
	Reporter diag.Reporter
}

// Lower runs one pass over the front end's tree and produces the Pack.
// Version is the shader language version the tree was compiled as.
func Lower(root ast.Node, version int, opts Options) (*pack.Pack, error) {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	l := &lowerer{
		version:             version,
		reporter:            reporter,
		strings:             pack.NewStrings(),
		types:               pack.NewTypes(),
		globals:             pack.NewKeyedStore[pack.GlobalSymbolID, int64, pack.Symbol](),
		rvalues:             pack.NewRValues(),
		functionNames:       pack.NewFunctionNames(),
		blocks:              pack.NewStatementBlocks(),
		functionDefinitions: make(map[pack.FunctionID]pack.FunctionDefinition),
		functionPrototypes:  make(map[pack.FunctionID]struct{}),
	}
	if err := l.lowerProgram(root); err != nil {
		return nil, err
	}
	return l.intoPack(), nil
}

// localScope interns the symbols local to one function, keyed by the
// front end's per-declaration identity. Scopes of different functions
// are independent id spaces.
type localScope = pack.KeyedStore[pack.LocalSymbolID, int64, pack.Symbol]

// lowerer threads the interning tables through the recursive descent.
// One lowerer serves exactly one pass and is discarded afterwards.
type lowerer struct {
	version  int
	reporter diag.Reporter

	strings       *pack.ValueStore[pack.StringID, string]
	types         *pack.ValueStore[pack.TypeID, pack.Type]
	globals       *pack.KeyedStore[pack.GlobalSymbolID, int64, pack.Symbol]
	rvalues       *pack.ValueStore[pack.RValueID, pack.RValue]
	functionNames *pack.ValueStore[pack.FunctionID, string]
	blocks        *pack.ValueStore[pack.StatementBlockID, []pack.Statement]

	functionDefinitions map[pack.FunctionID]pack.FunctionDefinition
	functionPrototypes  map[pack.FunctionID]struct{}

	globalDefsInOrder []pack.GlobalDefinition
	funcDefsInOrder   []pack.FunctionID
}

// intoPack freezes every table into the immutable result.
func (l *lowerer) intoPack() *pack.Pack {
	return &pack.Pack{
		Version:                    l.version,
		Strings:                    l.strings.Finalize(),
		Types:                      l.types.Finalize(),
		GlobalSymbols:              l.globals.Finalize(),
		RValues:                    l.rvalues.Finalize(),
		FunctionNames:              l.functionNames.Finalize(),
		StatementBlocks:            l.blocks.Finalize(),
		FunctionDefinitions:        l.functionDefinitions,
		FunctionPrototypes:         l.functionPrototypes,
		GlobalDefinitionsInOrder:   l.globalDefsInOrder,
		FunctionDefinitionsInOrder: l.funcDefsInOrder,
	}
}

// lowerProgram buckets the root's direct children into linker-object
// lists (global declarations), bare sequences (global initializers) and
// function nodes, preserving order within each bucket, then processes
// the buckets in that order.
func (l *lowerer) lowerProgram(root ast.Node) error {
	rootAgg, ok := root.(*ast.Aggregate)
	if !ok || rootAgg.Op != ast.OpSequence {
		return errNode(diag.LowerBadNode, root, nil, "root node must be a sequence")
	}

	var linkerObjects, sequences, functions []*ast.Aggregate
	for _, child := range rootAgg.Children {
		agg, ok := child.(*ast.Aggregate)
		if !ok {
			return errNode(diag.LowerBadNode, child, root, "unhandled child of root node")
		}
		switch agg.Op {
		case ast.OpLinkerObjects:
			linkerObjects = append(linkerObjects, agg)
		case ast.OpSequence:
			sequences = append(sequences, agg)
		case ast.OpFunction:
			functions = append(functions, agg)
		default:
			return errNode(diag.LowerBadNode, child, root, "unhandled child of root node")
		}
	}

	// Linker objects enumerate the global symbols; every one is
	// registered whether or not anything references it later.
	for _, lo := range linkerObjects {
		for _, child := range lo.Children {
			sym, ok := child.(*ast.Symbol)
			if !ok {
				return errNode(diag.LowerBadNode, child, lo, "child of a linker-objects node must be a symbol")
			}
			if _, err := l.lowerGlobalSymbol(sym); err != nil {
				return err
			}
		}
	}

	// Bare sequences carry global initializers: plain assignments whose
	// right side may not touch any local symbol.
	for _, seq := range sequences {
		if err := l.lowerGlobalInitializers(seq); err != nil {
			return err
		}
	}

	for _, fn := range functions {
		if err := l.lowerFunctionDefinition(fn, rootAgg); err != nil {
			return err
		}
	}
	return nil
}

// lowerGlobalSymbol registers a declared global, keyed by the front
// end's declaration identity. Repeat references reuse the first record.
func (l *lowerer) lowerGlobalSymbol(node *ast.Symbol) (pack.GlobalSymbolID, error) {
	typeID, err := l.lowerType(node.Type)
	if err != nil {
		return pack.NoGlobalSymbolID, err
	}
	nameID := l.strings.Insert(node.Name)
	return l.globals.Insert(node.DeclID, pack.Symbol{Name: nameID, Type: typeID}), nil
}

func (l *lowerer) lowerGlobalInitializers(seq *ast.Aggregate) error {
	scratch := pack.NewKeyedStore[pack.LocalSymbolID, int64, pack.Symbol]()
	for _, child := range seq.Children {
		assign, ok := child.(*ast.Binary)
		if !ok || assign.Op != ast.OpAssign {
			return errNode(diag.LowerBadInitializer, child, seq,
				"global initializer must be a plain assignment")
		}
		left, ok := assign.Left.(*ast.Symbol)
		if !ok {
			return errNode(diag.LowerBadInitializer, child, seq,
				"left-hand side of a global variable definition must be a symbol")
		}
		globalID, err := l.lowerGlobalSymbol(left)
		if err != nil {
			return err
		}
		value, err := l.lowerValue(assign.Right, seq, scratch)
		if err != nil {
			return err
		}
		if !scratch.IsEmpty() {
			return errNode(diag.LowerGlobalScopeLeak, child, seq,
				"global symbol definition must not touch local symbols")
		}
		l.globalDefsInOrder = append(l.globalDefsInOrder, pack.GlobalDefinition{
			Symbol: globalID,
			Value:  value,
		})
	}
	return nil
}

// lowerFunctionDefinition handles one function child of the root: a
// 1-element sequence is a prototype, a 2-element sequence is parameters
// plus body. A definition always wins over a prototype of the same name
// so that every function id ends up in exactly one of the two tables.
func (l *lowerer) lowerFunctionDefinition(node *ast.Aggregate, parent ast.Node) error {
	if node.Op != ast.OpFunction {
		return errNode(diag.LowerBadFunctionShape, node, parent, "node must be a function")
	}
	if len(node.Children) != 1 && len(node.Children) != 2 {
		return errNode(diag.LowerBadFunctionShape, node, parent,
			"function sequence must be of length 1 or 2, got %d", len(node.Children))
	}
	parametersNode, ok := node.Children[0].(*ast.Aggregate)
	if !ok {
		return errNode(diag.LowerBadFunctionShape, node.Children[0], node,
			"function parameters must be an aggregate node")
	}

	functionID := l.functionNames.Insert(node.Name)

	if len(node.Children) == 1 {
		// Just a prototype; ignore it once a definition exists.
		if _, defined := l.functionDefinitions[functionID]; !defined {
			l.functionPrototypes[functionID] = struct{}{}
		}
		return nil
	}

	returnTypeID, err := l.lowerType(node.Type)
	if err != nil {
		return err
	}

	locals := pack.NewKeyedStore[pack.LocalSymbolID, int64, pack.Symbol]()
	parameters := make([]pack.LocalSymbolID, 0, len(parametersNode.Children))
	for _, parameter := range parametersNode.Children {
		sym, ok := parameter.(*ast.Symbol)
		if !ok {
			return errNode(diag.LowerBadFunctionShape, parameter, node,
				"function parameter must be a symbol")
		}
		nameID := l.strings.Insert(sym.Name)
		typeID, err := l.lowerType(sym.Type)
		if err != nil {
			return err
		}
		symbolID := locals.Insert(sym.DeclID, pack.Symbol{Name: nameID, Type: typeID})
		parameters = append(parameters, symbolID)
	}

	bodyID, err := l.lowerBlock(node.Children[1], node, locals)
	if err != nil {
		return err
	}

	delete(l.functionPrototypes, functionID)
	l.functionDefinitions[functionID] = pack.FunctionDefinition{
		Function:   functionID,
		ReturnType: returnTypeID,
		Parameters: parameters,
		Body:       bodyID,
		Locals:     locals.Finalize(),
	}
	l.funcDefsInOrder = append(l.funcDefsInOrder, functionID)
	return nil
}
