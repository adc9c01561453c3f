package lower

import (
	"errors"
	"testing"

	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

// Tree-building helpers; DeclIDs are chosen by hand and only have to be
// stable within one test tree.

func floatType() *ast.Type { return &ast.Type{Basic: ast.BasicFloat, VectorSize: 1} }
func intType() *ast.Type   { return &ast.Type{Basic: ast.BasicInt, VectorSize: 1} }
func boolType() *ast.Type  { return &ast.Type{Basic: ast.BasicBool, VectorSize: 1} }

func vecType(size int) *ast.Type {
	return &ast.Type{Basic: ast.BasicFloat, VectorSize: size}
}

func sym(name string, declID int64, t *ast.Type) *ast.Symbol {
	return &ast.Symbol{Name: name, DeclID: declID, Type: t}
}

func floatConst(v float64) *ast.Constant {
	return &ast.Constant{Type: floatType(), Values: []ast.ConstantValue{ast.DoubleConst(v)}}
}

func intConst(v int64) *ast.Constant {
	return &ast.Constant{Type: intType(), Values: []ast.ConstantValue{ast.IntConst(ast.ScalarInt, v)}}
}

func seq(children ...ast.Node) *ast.Aggregate {
	return &ast.Aggregate{Op: ast.OpSequence, Children: children}
}

func linkerObjects(children ...ast.Node) *ast.Aggregate {
	return &ast.Aggregate{Op: ast.OpLinkerObjects, Children: children}
}

func funcDef(name string, returnType *ast.Type, params []ast.Node, body ast.Node) *ast.Aggregate {
	return &ast.Aggregate{
		Op:   ast.OpFunction,
		Name: name,
		Type: returnType,
		Children: []ast.Node{
			&ast.Aggregate{Op: ast.OpParameters, Children: params},
			body,
		},
	}
}

func funcProto(name string, returnType *ast.Type) *ast.Aggregate {
	return &ast.Aggregate{
		Op:   ast.OpFunction,
		Name: name,
		Type: returnType,
		Children: []ast.Node{
			&ast.Aggregate{Op: ast.OpParameters},
		},
	}
}

func returnStmt(operand ast.TypedNode) *ast.Branch {
	return &ast.Branch{Op: ast.OpReturn, Operand: operand}
}

func mustLower(t *testing.T, root ast.Node, version int) *pack.Pack {
	t.Helper()
	p, err := Lower(root, version, Options{})
	if err != nil {
		t.Fatalf("Lower failed: %v", err)
	}
	return p
}

func findFunction(t *testing.T, p *pack.Pack, name string) pack.FunctionID {
	t.Helper()
	for id, n := range p.FunctionNames {
		if n == name {
			return id
		}
	}
	t.Fatalf("function %q not interned", name)
	return pack.NoFunctionID
}

func lookupString(t *testing.T, p *pack.Pack, id pack.StringID) string {
	t.Helper()
	s, ok := p.Strings[id]
	if !ok {
		t.Fatalf("string id %d not interned", id)
	}
	return s
}

func singleReturnValue(t *testing.T, p *pack.Pack, def pack.FunctionDefinition) pack.RValue {
	t.Helper()
	body := p.StatementBlocks[def.Body]
	if len(body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(body))
	}
	stmt := body[0]
	if stmt.Kind != pack.StatementBranch || stmt.Branch.Op != pack.BranchReturn {
		t.Fatalf("statement is not a return: %+v", stmt)
	}
	rid, ok := stmt.Branch.Operand.AsRValue()
	if !ok {
		t.Fatalf("return operand is not an rvalue: %+v", stmt.Branch.Operand)
	}
	return p.RValues[rid]
}

func TestLowerGlobalAndFunction(t *testing.T) {
	uniform := func() *ast.Symbol { return sym("brightness", 1, floatType()) }
	param := func() *ast.Symbol { return sym("base", 2, floatType()) }

	add := &ast.Binary{Op: ast.OpAdd, Type: floatType(), Left: param(), Right: uniform()}
	root := seq(
		linkerObjects(uniform()),
		funcDef("brighten(f1;", floatType(), []ast.Node{param()}, seq(returnStmt(add))),
	)

	p := mustLower(t, root, 310)
	if p.Version != 310 {
		t.Errorf("Version = %d, want 310", p.Version)
	}

	if len(p.GlobalSymbols) != 1 {
		t.Fatalf("got %d global symbols, want 1", len(p.GlobalSymbols))
	}
	for _, g := range p.GlobalSymbols {
		if lookupString(t, p, g.Name) != "brightness" {
			t.Errorf("global name = %q, want brightness", lookupString(t, p, g.Name))
		}
		if !g.Type.IsValid() {
			t.Error("declared global lost its type")
		}
	}

	fid := findFunction(t, p, "brighten(f1;")
	def, ok := p.FunctionDefinitions[fid]
	if !ok {
		t.Fatal("function definition missing")
	}
	if len(def.Parameters) != 1 {
		t.Fatalf("got %d parameters, want 1", len(def.Parameters))
	}
	if got := lookupString(t, p, def.Locals[def.Parameters[0]].Name); got != "base" {
		t.Errorf("parameter name = %q, want base", got)
	}

	rv := singleReturnValue(t, p, def)
	if rv.Kind != pack.RValueEvaluable || rv.Op.IsFunction() || rv.Op.Op != pack.OpAdd {
		t.Fatalf("return value is not an Add application: %+v", rv)
	}
	if len(rv.Args) != 2 {
		t.Fatalf("Add has %d args, want 2", len(rv.Args))
	}
	if rv.Args[0].Kind != pack.ValueLocal {
		t.Errorf("first arg kind = %d, want local", rv.Args[0].Kind)
	}
	if rv.Args[1].Kind != pack.ValueGlobal {
		t.Errorf("second arg kind = %d, want global", rv.Args[1].Kind)
	}
}

func TestLiteralDeduplication(t *testing.T) {
	add := &ast.Binary{Op: ast.OpAdd, Type: floatType(), Left: floatConst(1.5), Right: floatConst(1.5)}
	root := seq(funcDef("f(", floatType(), nil, seq(returnStmt(add))))

	p := mustLower(t, root, 310)
	rv := singleReturnValue(t, p, p.FunctionDefinitions[findFunction(t, p, "f(")])
	if rv.Args[0] != rv.Args[1] {
		t.Errorf("equal literals lowered to distinct references: %+v", rv.Args)
	}

	literals := 0
	for _, r := range p.RValues {
		if r.Kind == pack.RValueLiteral {
			literals++
		}
	}
	if literals != 1 {
		t.Errorf("got %d literal rvalues, want 1", literals)
	}
}

func TestVectorConstantBecomesConstructorCall(t *testing.T) {
	vec := &ast.Constant{
		Type: vecType(3),
		Values: []ast.ConstantValue{
			ast.DoubleConst(1), ast.DoubleConst(0), ast.DoubleConst(0.5),
		},
	}
	root := seq(funcDef("red(", vecType(3), nil, seq(returnStmt(vec))))

	p := mustLower(t, root, 310)
	rv := singleReturnValue(t, p, p.FunctionDefinitions[findFunction(t, p, "red(")])
	if rv.Kind != pack.RValueEvaluable || !rv.Op.IsFunction() {
		t.Fatalf("vector constant did not lower to a call: %+v", rv)
	}
	if got := p.FunctionNames[rv.Op.Function]; got != "vec3" {
		t.Errorf("constructor name = %q, want vec3", got)
	}
	if len(rv.Args) != 3 {
		t.Fatalf("constructor got %d args, want 3", len(rv.Args))
	}
	for _, arg := range rv.Args {
		rid, ok := arg.AsRValue()
		if !ok || p.RValues[rid].Kind != pack.RValueLiteral {
			t.Errorf("constructor arg is not a literal: %+v", arg)
		}
	}
}

func loopBody(t *testing.T, p *pack.Pack, name string) pack.LoopStatement {
	t.Helper()
	def := p.FunctionDefinitions[findFunction(t, p, name)]
	body := p.StatementBlocks[def.Body]
	if len(body) != 1 || body[0].Kind != pack.StatementLoop {
		t.Fatalf("body is not a single loop: %+v", body)
	}
	return body[0].Loop
}

func TestLoopTerminalPruned(t *testing.T) {
	counter := func() *ast.Symbol { return sym("i", 5, intType()) }
	test := func() *ast.Binary {
		return &ast.Binary{Op: ast.OpLessThan, Type: boolType(), Left: counter(), Right: intConst(4)}
	}

	// A bare symbol terminal has no effect and is dropped.
	pruned := seq(funcDef("f(", &ast.Type{Basic: ast.BasicVoid}, nil, seq(&ast.Loop{
		Test:      test(),
		Terminal:  counter(),
		Body:      seq(),
		TestFirst: true,
	})))
	p := mustLower(t, pruned, 310)
	if loop := loopBody(t, p, "f("); loop.Terminal.IsValid() {
		t.Errorf("effect-free terminal survived: %+v", loop)
	}

	// An increment terminal is an effect and stays.
	kept := seq(funcDef("f(", &ast.Type{Basic: ast.BasicVoid}, nil, seq(&ast.Loop{
		Test:      test(),
		Terminal:  &ast.Unary{Op: ast.OpPreIncrement, Type: intType(), Operand: counter()},
		Body:      seq(),
		TestFirst: true,
	})))
	p = mustLower(t, kept, 310)
	loop := loopBody(t, p, "f(")
	if !loop.Terminal.IsValid() {
		t.Fatal("increment terminal was dropped")
	}
	if !loop.TestFirst {
		t.Error("TestFirst flag lost")
	}
	rv := p.RValues[loop.Terminal]
	if rv.Op.IsFunction() || rv.Op.Op != pack.OpPreIncrement {
		t.Errorf("terminal is not a pre-increment: %+v", rv)
	}
}

func TestEffectFreeStatementElided(t *testing.T) {
	root := seq(funcDef("f(", &ast.Type{Basic: ast.BasicVoid}, nil, seq(
		sym("ignored", 9, floatType()),
		floatConst(2),
		returnStmt(nil),
	)))
	p := mustLower(t, root, 310)
	def := p.FunctionDefinitions[findFunction(t, p, "f(")]
	body := p.StatementBlocks[def.Body]
	if len(body) != 1 || body[0].Kind != pack.StatementBranch {
		t.Errorf("no-op statements survived: %+v", body)
	}
}

func TestMalformedGlobalInitializer(t *testing.T) {
	root := seq(seq(floatConst(1)))
	_, err := Lower(root, 310, Options{})
	var lowErr *Error
	if !errors.As(err, &lowErr) || lowErr.Code != diag.LowerBadInitializer {
		t.Fatalf("err = %v, want code %s", err, diag.LowerBadInitializer)
	}
}

func TestGlobalInitializerScopeLeak(t *testing.T) {
	assign := &ast.Binary{
		Op:    ast.OpAssign,
		Type:  floatType(),
		Left:  sym("g", 1, floatType()),
		Right: sym("tmp", 2, floatType()),
	}
	_, err := Lower(seq(seq(assign)), 310, Options{})
	var lowErr *Error
	if !errors.As(err, &lowErr) || lowErr.Code != diag.LowerGlobalScopeLeak {
		t.Fatalf("err = %v, want code %s", err, diag.LowerGlobalScopeLeak)
	}
}

func TestGlobalInitializerLowered(t *testing.T) {
	global := func() *ast.Symbol { return sym("scale", 1, floatType()) }
	assign := &ast.Binary{Op: ast.OpAssign, Type: floatType(), Left: global(), Right: floatConst(2)}
	p := mustLower(t, seq(linkerObjects(global()), seq(assign)), 310)

	if len(p.GlobalDefinitionsInOrder) != 1 {
		t.Fatalf("got %d global definitions, want 1", len(p.GlobalDefinitionsInOrder))
	}
	definition := p.GlobalDefinitionsInOrder[0]
	if _, ok := p.GlobalSymbols[definition.Symbol]; !ok {
		t.Error("definition references an unregistered global")
	}
	if rid, ok := definition.Value.AsRValue(); !ok || p.RValues[rid].Kind != pack.RValueLiteral {
		t.Errorf("initializer value is not a literal: %+v", definition.Value)
	}
}

func TestPrototypeDefinitionPartition(t *testing.T) {
	body := seq(returnStmt(floatConst(1)))
	root := seq(
		funcProto("defined(", floatType()),
		funcDef("defined(", floatType(), nil, body),
		funcProto("declaredOnly(", floatType()),
		// A prototype after the definition must not resurrect it.
		funcProto("defined(", floatType()),
	)
	p := mustLower(t, root, 310)

	defined := findFunction(t, p, "defined(")
	declaredOnly := findFunction(t, p, "declaredOnly(")

	if _, ok := p.FunctionDefinitions[defined]; !ok {
		t.Error("definition missing")
	}
	if _, ok := p.FunctionPrototypes[defined]; ok {
		t.Error("defined function still listed as a prototype")
	}
	if _, ok := p.FunctionPrototypes[declaredOnly]; !ok {
		t.Error("undefined function lost its prototype")
	}
	if len(p.FunctionDefinitionsInOrder) != 1 || p.FunctionDefinitionsInOrder[0] != defined {
		t.Errorf("definition order = %v", p.FunctionDefinitionsInOrder)
	}
}

func TestBuiltinSymbolBecomesTypelessGlobal(t *testing.T) {
	builtin := &ast.Symbol{
		Name:   "gl_FragCoord",
		DeclID: 77,
		Type:   &ast.Type{Basic: ast.BasicFloat, VectorSize: 4, BuiltIn: true},
	}
	assign := &ast.Binary{
		Op:    ast.OpAssign,
		Type:  vecType(4),
		Left:  sym("pos", 1, vecType(4)),
		Right: builtin,
	}
	root := seq(funcDef("f(", &ast.Type{Basic: ast.BasicVoid}, nil, seq(assign)))
	p := mustLower(t, root, 310)

	found := false
	for _, g := range p.GlobalSymbols {
		if lookupString(t, p, g.Name) == "gl_FragCoord" {
			found = true
			if g.Type.IsValid() {
				t.Error("builtin global carries a type record")
			}
		}
	}
	if !found {
		t.Error("builtin reference did not register a global")
	}
}

func TestSwizzleCapturesComponents(t *testing.T) {
	base := sym("v", 3, vecType(4))
	swizzle := &ast.Binary{
		Op:    ast.OpVectorSwizzle,
		Type:  vecType(2),
		Left:  base,
		Right: seq(intConst(1), intConst(0)),
	}
	root := seq(funcDef("f(", vecType(2), nil, seq(returnStmt(swizzle))))
	p := mustLower(t, root, 310)

	rv := singleReturnValue(t, p, p.FunctionDefinitions[findFunction(t, p, "f(")])
	if rv.Op.IsFunction() || rv.Op.Op != pack.OpVectorSwizzle {
		t.Fatalf("not a swizzle application: %+v", rv)
	}
	if len(rv.Args) != 3 {
		t.Fatalf("swizzle has %d args, want base plus 2 components", len(rv.Args))
	}
	first, _ := rv.Args[1].AsRValue()
	second, _ := rv.Args[2].AsRValue()
	if p.RValues[first].Literal.Int != 1 || p.RValues[second].Literal.Int != 0 {
		t.Errorf("component order lost: %+v %+v", p.RValues[first], p.RValues[second])
	}
}

func TestTernaryExpression(t *testing.T) {
	pick := &ast.Selection{
		Type:       floatType(),
		Condition:  &ast.Constant{Type: boolType(), Values: []ast.ConstantValue{ast.BoolConst(true)}},
		TrueBlock:  floatConst(1),
		FalseBlock: floatConst(2),
	}
	root := seq(funcDef("f(", floatType(), nil, seq(returnStmt(pick))))
	p := mustLower(t, root, 310)

	rv := singleReturnValue(t, p, p.FunctionDefinitions[findFunction(t, p, "f(")])
	if rv.Op.IsFunction() || rv.Op.Op != pack.OpTernary {
		t.Fatalf("not a ternary application: %+v", rv)
	}
	if len(rv.Args) != 3 {
		t.Errorf("ternary has %d args, want 3", len(rv.Args))
	}
}

func TestUnknownOperatorDegradesToPlaceholder(t *testing.T) {
	bag := diag.NewBag(10)
	odd := &ast.Unary{Op: ast.OpNull, Type: floatType(), Operand: floatConst(1)}
	root := seq(funcDef("f(", floatType(), nil, seq(returnStmt(odd))))

	p, err := Lower(root, 310, Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("unknown operator aborted the pass: %v", err)
	}

	rv := singleReturnValue(t, p, p.FunctionDefinitions[findFunction(t, p, "f(")])
	if rv.Op.IsFunction() || rv.Op.Op != pack.OpTernary {
		t.Errorf("placeholder tag not substituted: %+v", rv)
	}

	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	if d := bag.Items()[0]; d.Code != diag.LowerUnknownOperator || d.Severity != diag.SevError {
		t.Errorf("diagnostic = %+v", d)
	}
}

func TestNestedControlFlow(t *testing.T) {
	cond := &ast.Constant{Type: boolType(), Values: []ast.ConstantValue{ast.BoolConst(true)}}
	inner := &ast.Selection{
		Condition: cond,
		TrueBlock: seq(&ast.Branch{Op: ast.OpBreak}),
	}
	sw := &ast.Switch{
		Condition: intConst(3),
		Body:      seq(&ast.Branch{Op: ast.OpCase, Operand: intConst(0)}, inner),
	}
	root := seq(funcDef("f(", &ast.Type{Basic: ast.BasicVoid}, nil, seq(sw)))
	p := mustLower(t, root, 310)

	def := p.FunctionDefinitions[findFunction(t, p, "f(")]
	body := p.StatementBlocks[def.Body]
	if len(body) != 1 || body[0].Kind != pack.StatementSwitch {
		t.Fatalf("body is not a single switch: %+v", body)
	}
	switchBody := p.StatementBlocks[body[0].Switch.Body]
	if len(switchBody) != 2 {
		t.Fatalf("switch body has %d statements, want 2", len(switchBody))
	}
	if switchBody[0].Kind != pack.StatementBranch || switchBody[0].Branch.Op != pack.BranchCase {
		t.Errorf("first statement is not a case marker: %+v", switchBody[0])
	}
	if switchBody[1].Kind != pack.StatementIf {
		t.Fatalf("second statement is not an if: %+v", switchBody[1])
	}
	ifStmt := switchBody[1].If
	if ifStmt.False.IsValid() {
		t.Error("absent else branch got a block")
	}
	trueBlock := p.StatementBlocks[ifStmt.True]
	if len(trueBlock) != 1 || trueBlock[0].Branch.Op != pack.BranchBreak {
		t.Errorf("true block = %+v", trueBlock)
	}
}

func TestRootMustBeSequence(t *testing.T) {
	_, err := Lower(floatConst(1), 310, Options{})
	var lowErr *Error
	if !errors.As(err, &lowErr) || lowErr.Code != diag.LowerBadNode {
		t.Fatalf("err = %v, want code %s", err, diag.LowerBadNode)
	}
}
