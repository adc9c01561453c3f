package astio

import (
	"strings"
	"testing"

	"glslpack/internal/ast"
)

const sampleDump = `{
  "version": 310,
  "root": {
    "kind": "aggregate",
    "op": "Sequence",
    "children": [
      {
        "kind": "aggregate",
        "op": "LinkerObjects",
        "children": [
          {
            "kind": "symbol",
            "name": "brightness",
            "id": 1,
            "type": {
              "basic": "float",
              "vectorSize": 1,
              "qualifier": {"layout": "location = 0", "precision": "highp"}
            }
          }
        ]
      },
      {
        "kind": "aggregate",
        "op": "Function",
        "name": "main(",
        "type": {"basic": "void"},
        "children": [
          {"kind": "aggregate", "op": "Parameters"},
          {
            "kind": "aggregate",
            "op": "Sequence",
            "children": [
              {
                "kind": "branch",
                "op": "Return",
                "operand": {
                  "kind": "constant",
                  "type": {"basic": "float", "vectorSize": 1},
                  "values": [{"kind": "double", "float": 1.5}]
                }
              }
            ]
          }
        ]
      }
    ]
  }
}`

func TestDecodeBytes(t *testing.T) {
	root, version, err := DecodeBytes([]byte(sampleDump))
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if version != 310 {
		t.Errorf("version = %d, want 310", version)
	}

	program, ok := root.(*ast.Aggregate)
	if !ok || program.Op != ast.OpSequence {
		t.Fatalf("root = %T %+v, want sequence aggregate", root, root)
	}
	if len(program.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(program.Children))
	}

	linker, ok := program.Children[0].(*ast.Aggregate)
	if !ok || linker.Op != ast.OpLinkerObjects {
		t.Fatalf("first child = %+v, want linker objects", program.Children[0])
	}
	symbol, ok := linker.Children[0].(*ast.Symbol)
	if !ok {
		t.Fatalf("linker child = %T, want symbol", linker.Children[0])
	}
	if symbol.Name != "brightness" || symbol.DeclID != 1 {
		t.Errorf("symbol = %+v", symbol)
	}
	if symbol.Type.Basic != ast.BasicFloat || symbol.Type.VectorSize != 1 {
		t.Errorf("symbol type = %+v", symbol.Type)
	}
	q := symbol.Type.Qualifier
	if !q.HasLayout || q.Layout != "location = 0" || q.Precision != ast.PrecisionHigh {
		t.Errorf("qualifier = %+v", q)
	}

	fn, ok := program.Children[1].(*ast.Aggregate)
	if !ok || fn.Op != ast.OpFunction || fn.Name != "main(" {
		t.Fatalf("second child = %+v, want function", program.Children[1])
	}
	body, ok := fn.Children[1].(*ast.Aggregate)
	if !ok || body.Op != ast.OpSequence {
		t.Fatalf("function body = %+v", fn.Children[1])
	}
	ret, ok := body.Children[0].(*ast.Branch)
	if !ok || ret.Op != ast.OpReturn {
		t.Fatalf("body statement = %+v, want return branch", body.Children[0])
	}
	operand, ok := ret.Operand.(*ast.Constant)
	if !ok {
		t.Fatalf("return operand = %T, want constant", ret.Operand)
	}
	if len(operand.Values) != 1 || operand.Values[0].Kind != ast.ScalarDouble || operand.Values[0].Float != 1.5 {
		t.Errorf("constant values = %+v", operand.Values)
	}
}

func TestDecodeLayoutPresence(t *testing.T) {
	// An empty layout string still counts as a layout qualifier; only
	// its absence from the document means no layout at all.
	withEmpty := `{"version": 100, "root": {"kind": "symbol", "name": "x", "id": 1,
		"type": {"basic": "int", "vectorSize": 1, "qualifier": {"layout": ""}}}}`
	root, _, err := DecodeBytes([]byte(withEmpty))
	if err != nil {
		t.Fatal(err)
	}
	if q := root.(*ast.Symbol).Type.Qualifier; !q.HasLayout || q.Layout != "" {
		t.Errorf("qualifier = %+v, want empty layout present", q)
	}

	without := `{"version": 100, "root": {"kind": "symbol", "name": "x", "id": 1,
		"type": {"basic": "int", "vectorSize": 1, "qualifier": {"const": true}}}}`
	root, _, err = DecodeBytes([]byte(without))
	if err != nil {
		t.Fatal(err)
	}
	if q := root.(*ast.Symbol).Type.Qualifier; q.HasLayout {
		t.Errorf("qualifier = %+v, want no layout", q)
	}
}

func TestDecodeSamplerType(t *testing.T) {
	doc := `{"version": 100, "root": {"kind": "symbol", "name": "tex", "id": 4,
		"type": {"basic": "sampler",
		         "sampler": {"dim": "cube", "shadow": true, "string": "samplerCubeShadow"}}}}`
	root, _, err := DecodeBytes([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	s := root.(*ast.Symbol).Type.Sampler
	if s == nil || s.Dim != ast.DimCube || !s.Shadow || s.String != "samplerCubeShadow" {
		t.Errorf("sampler = %+v", s)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"not json", `{`, "malformed dump"},
		{"no root", `{"version": 100}`, "no root node"},
		{"unknown kind", `{"version":100,"root":{"kind":"mystery"}}`, `unknown node kind "mystery"`},
		{
			"unknown operator",
			`{"version":100,"root":{"kind":"aggregate","op":"NotAnOp"}}`,
			`unknown operator "NotAnOp"`,
		},
		{
			"unknown basic type",
			`{"version":100,"root":{"kind":"symbol","name":"x","type":{"basic":"quaternion"}}}`,
			`unknown basic type "quaternion"`,
		},
		{
			"untyped in expression position",
			`{"version":100,"root":{"kind":"unary","op":"Negative",
			  "operand":{"kind":"switch",
			    "condition":{"kind":"symbol","name":"x"},
			    "body":{"kind":"aggregate","op":"Sequence"}}}}`,
			"cannot stand in expression position",
		},
		{
			"missing required child",
			`{"version":100,"root":{"kind":"binary","op":"Add",
			  "left":{"kind":"symbol","name":"x"}}}`,
			"missing node",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, err := DecodeBytes([]byte(c.doc))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("err = %v, want substring %q", err, c.want)
			}
		})
	}
}

func TestDecodeErrorPathNamesLocation(t *testing.T) {
	doc := `{"version":100,"root":{"kind":"aggregate","op":"Sequence","children":[
	  {"kind":"aggregate","op":"Sequence","children":[
	    {"kind":"nope"}]}]}}`
	_, _, err := DecodeBytes([]byte(doc))
	if err == nil || !strings.Contains(err.Error(), "root.children[0].children[0]") {
		t.Errorf("err = %v, want nested path", err)
	}
}
