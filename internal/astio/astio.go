// Package astio decodes the JSON dumps the external GLSL front end
// emits into the tree the lowering engine consumes. The format is a
// direct rendering of the node contract; decoding validates shape only,
// semantic checks stay in the lowering pass.
package astio

import (
	"encoding/json"
	"fmt"

	"glslpack/internal/ast"
)

// Dump is the top-level document of one front-end dump.
type Dump struct {
	Version int       `json:"version"`
	Root    *jsonNode `json:"root"`
}

type jsonNode struct {
	Kind      string         `json:"kind"`
	Op        string         `json:"op,omitempty"`
	Name      string         `json:"name,omitempty"`
	ID        int64          `json:"id,omitempty"`
	Type      *jsonType      `json:"type,omitempty"`
	Values    []jsonConstant `json:"values,omitempty"`
	Operand   *jsonNode      `json:"operand,omitempty"`
	Left      *jsonNode      `json:"left,omitempty"`
	Right     *jsonNode      `json:"right,omitempty"`
	Condition *jsonNode      `json:"condition,omitempty"`
	True      *jsonNode      `json:"true,omitempty"`
	False     *jsonNode      `json:"false,omitempty"`
	Test      *jsonNode      `json:"test,omitempty"`
	Terminal  *jsonNode      `json:"terminal,omitempty"`
	Body      *jsonNode      `json:"body,omitempty"`
	TestFirst bool           `json:"testFirst,omitempty"`
	Children  []*jsonNode    `json:"children,omitempty"`
}

type jsonConstant struct {
	Kind  string  `json:"kind"`
	Int   int64   `json:"int,omitempty"`
	Uint  uint64  `json:"uint,omitempty"`
	Float float64 `json:"float,omitempty"`
	Bool  bool    `json:"bool,omitempty"`
	Str   string  `json:"str,omitempty"`
}

type jsonType struct {
	Basic      string         `json:"basic"`
	VectorSize int            `json:"vectorSize,omitempty"`
	MatrixCols int            `json:"matrixCols,omitempty"`
	MatrixRows int            `json:"matrixRows,omitempty"`
	Name       string         `json:"name,omitempty"`
	BuiltIn    bool           `json:"builtin,omitempty"`
	Sampler    *jsonSampler   `json:"sampler,omitempty"`
	Qualifier  *jsonQualifier `json:"qualifier,omitempty"`
	ArraySizes []uint64       `json:"arraySizes,omitempty"`
}

type jsonSampler struct {
	Dim    string `json:"dim"`
	Shadow bool   `json:"shadow,omitempty"`
	String string `json:"string"`
}

type jsonQualifier struct {
	Invariant     bool    `json:"invariant,omitempty"`
	Flat          bool    `json:"flat,omitempty"`
	NoPerspective bool    `json:"noperspective,omitempty"`
	Smooth        bool    `json:"smooth,omitempty"`
	Layout        *string `json:"layout,omitempty"`
	Const         bool    `json:"const,omitempty"`
	Precision     string  `json:"precision,omitempty"`
}

var basicTypes = map[string]ast.BasicType{
	"void":        ast.BasicVoid,
	"float":       ast.BasicFloat,
	"double":      ast.BasicDouble,
	"int":         ast.BasicInt,
	"uint":        ast.BasicUint,
	"bool":        ast.BasicBool,
	"atomic_uint": ast.BasicAtomicUint,
	"sampler":     ast.BasicSampler,
	"struct":      ast.BasicStruct,
	"block":       ast.BasicBlock,
	"int64":       ast.BasicInt64,
	"uint64":      ast.BasicUint64,
	"string":      ast.BasicString,
}

var samplerDims = map[string]ast.SamplerDim{
	"1d":      ast.Dim1D,
	"2d":      ast.Dim2D,
	"3d":      ast.Dim3D,
	"cube":    ast.DimCube,
	"rect":    ast.DimRect,
	"buffer":  ast.DimBuffer,
	"subpass": ast.DimSubpass,
}

var precisions = map[string]ast.Precision{
	"":        ast.PrecisionNone,
	"lowp":    ast.PrecisionLow,
	"mediump": ast.PrecisionMedium,
	"highp":   ast.PrecisionHigh,
}

var scalarKinds = map[string]ast.ScalarKind{
	"bool":   ast.ScalarBool,
	"int8":   ast.ScalarInt8,
	"uint8":  ast.ScalarUint8,
	"int16":  ast.ScalarInt16,
	"uint16": ast.ScalarUint16,
	"int":    ast.ScalarInt,
	"uint":   ast.ScalarUint,
	"double": ast.ScalarDouble,
	"int64":  ast.ScalarInt64,
	"uint64": ast.ScalarUint64,
	"string": ast.ScalarString,
}

// DecodeBytes parses one dump and returns the root node and the shader
// language version the tree was compiled as.
func DecodeBytes(data []byte) (ast.Node, int, error) {
	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, 0, fmt.Errorf("malformed dump: %w", err)
	}
	if dump.Root == nil {
		return nil, 0, fmt.Errorf("dump has no root node")
	}
	root, err := decodeNode(dump.Root, "root")
	if err != nil {
		return nil, 0, err
	}
	return root, dump.Version, nil
}

func badDump(path, format string, args ...any) error {
	return fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...))
}

func decodeNode(n *jsonNode, path string) (ast.Node, error) {
	switch n.Kind {
	case "symbol":
		t, err := decodeType(n.Type, path)
		if err != nil {
			return nil, err
		}
		return &ast.Symbol{Name: n.Name, DeclID: n.ID, Type: t}, nil

	case "constant":
		t, err := decodeType(n.Type, path)
		if err != nil {
			return nil, err
		}
		values := make([]ast.ConstantValue, len(n.Values))
		for i, v := range n.Values {
			kind, ok := scalarKinds[v.Kind]
			if !ok {
				return nil, badDump(path, "unknown scalar kind %q", v.Kind)
			}
			values[i] = ast.ConstantValue{
				Kind: kind, Int: v.Int, Uint: v.Uint,
				Float: v.Float, Bool: v.Bool, Str: v.Str,
			}
		}
		return &ast.Constant{Type: t, Values: values}, nil

	case "unary":
		op, err := decodeOperator(n.Op, path)
		if err != nil {
			return nil, err
		}
		t, err := decodeType(n.Type, path)
		if err != nil {
			return nil, err
		}
		operand, err := decodeTyped(n.Operand, path+".operand")
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Type: t, Operand: operand}, nil

	case "binary":
		op, err := decodeOperator(n.Op, path)
		if err != nil {
			return nil, err
		}
		t, err := decodeType(n.Type, path)
		if err != nil {
			return nil, err
		}
		left, err := decodeTyped(n.Left, path+".left")
		if err != nil {
			return nil, err
		}
		right, err := decodeTyped(n.Right, path+".right")
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Op: op, Type: t, Left: left, Right: right}, nil

	case "selection":
		t, err := decodeType(n.Type, path)
		if err != nil {
			return nil, err
		}
		condition, err := decodeTyped(n.Condition, path+".condition")
		if err != nil {
			return nil, err
		}
		if n.True == nil {
			return nil, badDump(path+".true", "missing node")
		}
		trueBlock, err := decodeNode(n.True, path+".true")
		if err != nil {
			return nil, err
		}
		sel := &ast.Selection{Type: t, Condition: condition, TrueBlock: trueBlock}
		if n.False != nil {
			sel.FalseBlock, err = decodeNode(n.False, path+".false")
			if err != nil {
				return nil, err
			}
		}
		return sel, nil

	case "switch":
		if n.Condition == nil || n.Body == nil {
			return nil, badDump(path, "switch requires condition and body")
		}
		condition, err := decodeNode(n.Condition, path+".condition")
		if err != nil {
			return nil, err
		}
		body, err := decodeNode(n.Body, path+".body")
		if err != nil {
			return nil, err
		}
		return &ast.Switch{Condition: condition, Body: body}, nil

	case "loop":
		test, err := decodeTyped(n.Test, path+".test")
		if err != nil {
			return nil, err
		}
		if n.Body == nil {
			return nil, badDump(path+".body", "missing node")
		}
		loop := &ast.Loop{Test: test, TestFirst: n.TestFirst}
		if n.Terminal != nil {
			loop.Terminal, err = decodeTyped(n.Terminal, path+".terminal")
			if err != nil {
				return nil, err
			}
		}
		loop.Body, err = decodeNode(n.Body, path+".body")
		if err != nil {
			return nil, err
		}
		return loop, nil

	case "branch":
		op, err := decodeOperator(n.Op, path)
		if err != nil {
			return nil, err
		}
		branch := &ast.Branch{Op: op}
		if n.Operand != nil {
			branch.Operand, err = decodeTyped(n.Operand, path+".operand")
			if err != nil {
				return nil, err
			}
		}
		return branch, nil

	case "aggregate":
		op, err := decodeOperator(n.Op, path)
		if err != nil {
			return nil, err
		}
		var t *ast.Type
		if n.Type != nil {
			t, err = decodeType(n.Type, path)
			if err != nil {
				return nil, err
			}
		}
		children := make([]ast.Node, len(n.Children))
		for i, child := range n.Children {
			children[i], err = decodeNode(child, fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
		}
		return &ast.Aggregate{Op: op, Name: n.Name, Type: t, Children: children}, nil

	default:
		return nil, badDump(path, "unknown node kind %q", n.Kind)
	}
}

func decodeTyped(n *jsonNode, path string) (ast.TypedNode, error) {
	if n == nil {
		return nil, badDump(path, "missing node")
	}
	node, err := decodeNode(n, path)
	if err != nil {
		return nil, err
	}
	typed, ok := node.(ast.TypedNode)
	if !ok {
		return nil, badDump(path, "node kind %q cannot stand in expression position", n.Kind)
	}
	return typed, nil
}

func decodeType(t *jsonType, path string) (*ast.Type, error) {
	if t == nil {
		return nil, nil
	}
	basic, ok := basicTypes[t.Basic]
	if !ok {
		return nil, badDump(path, "unknown basic type %q", t.Basic)
	}
	out := &ast.Type{
		Basic:      basic,
		VectorSize: t.VectorSize,
		MatrixCols: t.MatrixCols,
		MatrixRows: t.MatrixRows,
		Name:       t.Name,
		BuiltIn:    t.BuiltIn,
		ArraySizes: t.ArraySizes,
	}
	if t.Sampler != nil {
		dim, ok := samplerDims[t.Sampler.Dim]
		if !ok {
			return nil, badDump(path, "unknown sampler dimension %q", t.Sampler.Dim)
		}
		out.Sampler = &ast.Sampler{Dim: dim, Shadow: t.Sampler.Shadow, String: t.Sampler.String}
	}
	if t.Qualifier != nil {
		q := t.Qualifier
		precision, ok := precisions[q.Precision]
		if !ok {
			return nil, badDump(path, "unknown precision %q", q.Precision)
		}
		out.Qualifier = ast.Qualifier{
			Invariant:     q.Invariant,
			Flat:          q.Flat,
			NoPerspective: q.NoPerspective,
			Smooth:        q.Smooth,
			Const:         q.Const,
			Precision:     precision,
		}
		if q.Layout != nil {
			out.Qualifier.HasLayout = true
			out.Qualifier.Layout = *q.Layout
		}
	}
	return out, nil
}

func decodeOperator(name, path string) (ast.Operator, error) {
	if name == "" {
		return ast.OpNull, nil
	}
	op, ok := ast.OperatorByName(name)
	if !ok {
		return ast.OpNull, badDump(path, "unknown operator %q", name)
	}
	return op, nil
}
