package lower

import (
	"errors"
	"testing"

	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

func newTypeLowerer() *lowerer {
	return &lowerer{
		strings: pack.NewStrings(),
		types:   pack.NewTypes(),
	}
}

func typeName(t *testing.T, l *lowerer, id pack.TypeID) string {
	t.Helper()
	types := l.types.Finalize()
	strings := l.strings.Finalize()
	record, ok := types[id]
	if !ok {
		t.Fatalf("type id %d not interned", id)
	}
	return strings[record.Name]
}

func TestLowerTypeNames(t *testing.T) {
	cases := []struct {
		in   ast.Type
		want string
	}{
		{ast.Type{Basic: ast.BasicVoid}, "void"},
		{ast.Type{Basic: ast.BasicFloat, VectorSize: 1}, "float"},
		{ast.Type{Basic: ast.BasicFloat, VectorSize: 3}, "vec3"},
		{ast.Type{Basic: ast.BasicFloat, MatrixCols: 2, MatrixRows: 2}, "mat2"},
		{ast.Type{Basic: ast.BasicFloat, MatrixCols: 3, MatrixRows: 4}, "mat3x4"},
		{ast.Type{Basic: ast.BasicFloat, MatrixCols: 4, MatrixRows: 4}, "mat4"},
		{ast.Type{Basic: ast.BasicDouble, VectorSize: 2}, "dvec2"},
		{ast.Type{Basic: ast.BasicDouble, MatrixCols: 4, MatrixRows: 2}, "dmat4x2"},
		{ast.Type{Basic: ast.BasicInt, VectorSize: 4}, "ivec4"},
		{ast.Type{Basic: ast.BasicUint, VectorSize: 1}, "uint"},
		{ast.Type{Basic: ast.BasicBool, VectorSize: 2}, "bvec2"},
		{ast.Type{Basic: ast.BasicAtomicUint, VectorSize: 1}, "atomic_uint"},
		{ast.Type{Basic: ast.BasicStruct, Name: "Light"}, "Light"},
		{ast.Type{Basic: ast.BasicBlock, Name: "Uniforms"}, "Uniforms"},
		{
			ast.Type{Basic: ast.BasicSampler, Sampler: &ast.Sampler{Dim: ast.Dim2D, String: "sampler2D"}},
			"sampler2D",
		},
	}

	for _, c := range cases {
		l := newTypeLowerer()
		id, err := l.lowerType(&c.in)
		if err != nil {
			t.Errorf("lowerType(%+v) failed: %v", c.in, err)
			continue
		}
		if got := typeName(t, l, id); got != c.want {
			t.Errorf("lowerType(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLowerTypeFatalCases(t *testing.T) {
	cases := []struct {
		in   *ast.Type
		code diag.Code
	}{
		{nil, diag.LowerUntypedNode},
		{&ast.Type{Basic: ast.BasicInt64, VectorSize: 1}, diag.LowerUnsupportedType},
		{&ast.Type{Basic: ast.BasicString, VectorSize: 1}, diag.LowerUnsupportedType},
		{&ast.Type{Basic: ast.BasicSampler}, diag.LowerUnsupportedType},
		{&ast.Type{Basic: ast.BasicFloat, VectorSize: 5}, diag.LowerBadVectorSize},
		{&ast.Type{Basic: ast.BasicInt, VectorSize: 0}, diag.LowerBadVectorSize},
		{&ast.Type{Basic: ast.BasicFloat, MatrixCols: 5, MatrixRows: 2}, diag.LowerBadMatrixShape},
	}
	for _, c := range cases {
		l := newTypeLowerer()
		_, err := l.lowerType(c.in)
		var lowErr *Error
		if !errors.As(err, &lowErr) || lowErr.Code != c.code {
			t.Errorf("lowerType(%+v): err = %v, want code %s", c.in, err, c.code)
		}
	}
}

func TestLowerTypeArrayDimensions(t *testing.T) {
	l := newTypeLowerer()
	id, err := l.lowerType(&ast.Type{
		Basic:      ast.BasicFloat,
		VectorSize: 1,
		ArraySizes: []uint64{2, 3},
	})
	if err != nil {
		t.Fatalf("lowerType failed: %v", err)
	}
	record := l.types.Finalize()[id]
	if len(record.ArraySizes) != 2 || record.ArraySizes[0] != 2 || record.ArraySizes[1] != 3 {
		t.Errorf("ArraySizes = %v, want [2 3]", record.ArraySizes)
	}
	// Dimensions stay out of the name so float[2] and float[3] share it.
	if got := typeName(t, l, id); got != "float" {
		t.Errorf("array type name = %q, want float", got)
	}
}

func TestQualifierText(t *testing.T) {
	cases := []struct {
		in     ast.Qualifier
		want   string
		wantOK bool
	}{
		{ast.Qualifier{}, "", false},
		{ast.Qualifier{Const: true}, "const ", true},
		{ast.Qualifier{Flat: true, Precision: ast.PrecisionHigh}, "flat highp ", true},
		{ast.Qualifier{HasLayout: true, Layout: "location = 2"}, "layout(location = 2) ", true},
		{
			ast.Qualifier{
				Invariant:     true,
				Flat:          true,
				NoPerspective: true,
				Smooth:        true,
				HasLayout:     true,
				Layout:        "binding = 0",
				Const:         true,
				Precision:     ast.PrecisionMedium,
			},
			"invariant flat noperspective smooth layout(binding = 0) const mediump ",
			true,
		},
	}
	for _, c := range cases {
		got, ok := qualifierText(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("qualifierText(%+v) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestLowerTypeQualifierInterning(t *testing.T) {
	l := newTypeLowerer()
	plain, err := l.lowerType(&ast.Type{Basic: ast.BasicFloat, VectorSize: 1})
	if err != nil {
		t.Fatal(err)
	}
	qualified, err := l.lowerType(&ast.Type{
		Basic:      ast.BasicFloat,
		VectorSize: 1,
		Qualifier:  ast.Qualifier{Const: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if plain == qualified {
		t.Error("qualified and unqualified types share an id")
	}
	types := l.types.Finalize()
	if types[plain].Qualifiers.IsValid() {
		t.Error("unqualified type carries a qualifier string")
	}
	if !types[qualified].Qualifiers.IsValid() {
		t.Error("qualified type lost its qualifier string")
	}
}
