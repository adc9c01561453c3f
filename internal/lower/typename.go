package lower

import (
	"strings"

	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

// Name tables for basic numeric types: four vector entries (size 1-4)
// followed, where matrices exist, by nine column-major matrix entries
// for (cols, rows) in [2,4]x[2,4].

var floatTypeNames = [...]string{
	"float", "vec2", "vec3", "vec4",
	"mat2", "mat2x3", "mat2x4",
	"mat3x2", "mat3", "mat3x4",
	"mat4x2", "mat4x3", "mat4",
}

var doubleTypeNames = [...]string{
	"double", "dvec2", "dvec3", "dvec4",
	"dmat2", "dmat2x3", "dmat2x4",
	"dmat3x2", "dmat3", "dmat3x4",
	"dmat4x2", "dmat4x3", "dmat4",
}

var intTypeNames = [...]string{"int", "ivec2", "ivec3", "ivec4"}

var uintTypeNames = [...]string{"uint", "uvec2", "uvec3", "uvec4"}

var boolTypeNames = [...]string{"bool", "bvec2", "bvec3", "bvec4"}

func vectorTypeName(names []string, vectorSize int, t *ast.Type) (string, error) {
	if vectorSize < 1 || vectorSize > 4 {
		return "", errNode(diag.LowerBadVectorSize, nil, nil,
			"vector size must be between 1 and 4, got %d for %s", vectorSize, ast.DescribeType(t))
	}
	return names[vectorSize-1], nil
}

func vectorOrMatrixTypeName(names []string, t *ast.Type) (string, error) {
	if !t.IsMatrix() {
		return vectorTypeName(names, t.VectorSize, t)
	}
	cols, rows := t.MatrixCols, t.MatrixRows
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return "", errNode(diag.LowerBadMatrixShape, nil, nil,
			"matrix dimensions must be between 2 and 4, got %dx%d for %s", cols, rows, ast.DescribeType(t))
	}
	return names[4+(cols-2)*3+(rows-2)], nil
}

// qualifierText assembles the canonical qualifier string in fixed order.
// An empty qualifier set yields ("", false): the type record carries no
// qualifier id at all rather than an empty string.
func qualifierText(q ast.Qualifier) (string, bool) {
	var sb strings.Builder
	if q.Invariant {
		sb.WriteString("invariant ")
	}
	if q.Flat {
		sb.WriteString("flat ")
	}
	if q.NoPerspective {
		sb.WriteString("noperspective ")
	}
	if q.Smooth {
		sb.WriteString("smooth ")
	}
	if q.HasLayout {
		sb.WriteString("layout(")
		sb.WriteString(q.Layout)
		sb.WriteString(") ")
	}
	if q.Const {
		sb.WriteString("const ")
	}
	switch q.Precision {
	case ast.PrecisionLow:
		sb.WriteString("lowp ")
	case ast.PrecisionMedium:
		sb.WriteString("mediump ")
	case ast.PrecisionHigh:
		sb.WriteString("highp ")
	}
	s := sb.String()
	return s, s != ""
}

// lowerType interns a front-end type descriptor as a canonical type
// record.
func (l *lowerer) lowerType(t *ast.Type) (pack.TypeID, error) {
	if t == nil {
		return pack.NoTypeID, errNode(diag.LowerUntypedNode, nil, nil, "missing type descriptor")
	}

	var (
		name string
		err  error
	)
	switch t.Basic {
	case ast.BasicVoid:
		name = "void"
	case ast.BasicFloat:
		name, err = vectorOrMatrixTypeName(floatTypeNames[:], t)
	case ast.BasicDouble:
		name, err = vectorOrMatrixTypeName(doubleTypeNames[:], t)
	case ast.BasicInt:
		name, err = vectorTypeName(intTypeNames[:], t.VectorSize, t)
	case ast.BasicUint:
		name, err = vectorTypeName(uintTypeNames[:], t.VectorSize, t)
	case ast.BasicBool:
		name, err = vectorTypeName(boolTypeNames[:], t.VectorSize, t)
	case ast.BasicAtomicUint:
		name = "atomic_uint"
	case ast.BasicSampler:
		if t.Sampler == nil {
			return pack.NoTypeID, errNode(diag.LowerUnsupportedType, nil, nil,
				"sampler type %s has no sampler descriptor", ast.DescribeType(t))
		}
		name = t.Sampler.String
	case ast.BasicStruct, ast.BasicBlock:
		name = t.Name
	default:
		return pack.NoTypeID, errNode(diag.LowerUnsupportedType, nil, nil,
			"cannot lower type %s", ast.DescribeType(t))
	}
	if err != nil {
		return pack.NoTypeID, err
	}

	record := pack.Type{Name: l.strings.Insert(name)}
	if text, ok := qualifierText(t.Qualifier); ok {
		record.Qualifiers = l.strings.Insert(text)
	}
	if len(t.ArraySizes) > 0 {
		record.ArraySizes = append([]uint64(nil), t.ArraySizes...)
	}
	return l.types.Insert(record), nil
}
