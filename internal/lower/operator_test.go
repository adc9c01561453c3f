package lower

import (
	"errors"
	"testing"

	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

func TestMapOperatorTags(t *testing.T) {
	cases := []struct {
		op   ast.Operator
		want pack.RValueOperator
	}{
		{ast.OpAdd, pack.OpAdd},
		{ast.OpNegative, pack.OpNegative},
		{ast.OpAssign, pack.OpAssign},
		// The multiply family collapses onto one tag.
		{ast.OpMul, pack.OpMul},
		{ast.OpVectorTimesScalar, pack.OpMul},
		{ast.OpMatrixTimesVector, pack.OpMul},
	}
	for _, c := range cases {
		m, err := mapOperator(c.op, 310, nil, nil)
		if err != nil {
			t.Fatalf("mapOperator(%s) failed: %v", c.op, err)
		}
		if m.name != "" || m.tag != c.want {
			t.Errorf("mapOperator(%s) = %+v, want tag %s", c.op, m, c.want)
		}
	}
}

func TestMapOperatorBuiltinNames(t *testing.T) {
	cases := []struct {
		op   ast.Operator
		want string
	}{
		{ast.OpRadians, "radians"},
		{ast.OpSin, "sin"},
		{ast.OpClamp, "clamp"},
	}
	for _, c := range cases {
		m, err := mapOperator(c.op, 310, nil, nil)
		if err != nil {
			t.Fatalf("mapOperator(%s) failed: %v", c.op, err)
		}
		if m.name != c.want {
			t.Errorf("mapOperator(%s) = %+v, want name %q", c.op, m, c.want)
		}
	}
}

func TestConstructorArraySuffix(t *testing.T) {
	scalar := &ast.Type{Basic: ast.BasicFloat, VectorSize: 1}
	m, err := mapOperator(ast.OpConstructFloat, 310, scalar, nil)
	if err != nil || m.name != "float" {
		t.Errorf("scalar constructor = %+v, %v; want float", m, err)
	}

	arr := &ast.Type{Basic: ast.BasicFloat, VectorSize: 1, ArraySizes: []uint64{2, 3}}
	m, err = mapOperator(ast.OpConstructFloat, 310, arr, nil)
	if err != nil || m.name != "float[][]" {
		t.Errorf("array constructor = %+v, %v; want float[][]", m, err)
	}
}

func TestVersionedBuiltinNames(t *testing.T) {
	cases := []struct {
		op      ast.Operator
		version int
		want    string
	}{
		{ast.OpAnyInvocation, 460, "anyInvocation"},
		{ast.OpAnyInvocation, 450, "anyInvocationARB"},
		{ast.OpAtomicCounterAdd, 460, "atomicCounterAdd"},
		{ast.OpAtomicCounterAdd, 310, "atomicCounterAddARB"},
		{ast.OpTextureQueryLod, 400, "textureQueryLod"},
		{ast.OpTextureQueryLod, 330, "textureQueryLOD"},
	}
	for _, c := range cases {
		m, err := mapOperator(c.op, c.version, nil, nil)
		if err != nil {
			t.Fatalf("mapOperator(%s, %d) failed: %v", c.op, c.version, err)
		}
		if m.name != c.want {
			t.Errorf("mapOperator(%s, %d) = %q, want %q", c.op, c.version, m.name, c.want)
		}
	}
}

func samplerType(dim ast.SamplerDim, shadow bool) *ast.Type {
	return &ast.Type{
		Basic:   ast.BasicSampler,
		Sampler: &ast.Sampler{Dim: dim, Shadow: shadow},
	}
}

func TestTextureNamingModernVersions(t *testing.T) {
	// Above version 100 the overloaded texture* family applies and the
	// sampler argument is irrelevant.
	cases := []struct {
		op   ast.Operator
		want string
	}{
		{ast.OpTexture, "texture"},
		{ast.OpTextureProj, "textureProj"},
		{ast.OpTextureLod, "textureLod"},
		{ast.OpTextureProjLod, "textureProjLod"},
		{ast.OpTextureGrad, "textureGrad"},
		{ast.OpTextureProjGrad, "textureProjGrad"},
	}
	for _, c := range cases {
		m, err := mapOperator(c.op, 330, nil, nil)
		if err != nil {
			t.Fatalf("mapOperator(%s, 330) failed: %v", c.op, err)
		}
		if m.name != c.want {
			t.Errorf("mapOperator(%s, 330) = %q, want %q", c.op, m.name, c.want)
		}
	}
}

func TestTextureNamingLegacyVersions(t *testing.T) {
	cases := []struct {
		op     ast.Operator
		dim    ast.SamplerDim
		shadow bool
		want   string
	}{
		{ast.OpTexture, ast.Dim2D, false, "texture2D"},
		{ast.OpTexture, ast.Dim2D, true, "shadow2D"},
		{ast.OpTexture, ast.DimCube, false, "textureCube"},
		{ast.OpTexture, ast.DimRect, false, "texture2DRect"},
		{ast.OpTextureProj, ast.Dim3D, false, "texture3DProj"},
		{ast.OpTextureLod, ast.Dim1D, false, "texture1DLod"},
		{ast.OpTextureGrad, ast.Dim2D, false, "texture2DGradARB"},
		{ast.OpTextureProjGrad, ast.Dim2D, true, "shadow2DProjGradARB"},
	}
	for _, c := range cases {
		m, err := mapOperator(c.op, 100, nil, samplerType(c.dim, c.shadow))
		if err != nil {
			t.Fatalf("mapOperator(%s, 100) failed: %v", c.op, err)
		}
		if m.name != c.want {
			t.Errorf("mapOperator(%s, 100, dim=%d, shadow=%v) = %q, want %q",
				c.op, c.dim, c.shadow, m.name, c.want)
		}
	}
}

func TestTextureNamingRequiresSamplerType(t *testing.T) {
	_, err := mapOperator(ast.OpTexture, 100, nil, nil)
	var lowErr *Error
	if !errors.As(err, &lowErr) || lowErr.Code != diag.LowerMissingSamplerType {
		t.Fatalf("err = %v, want code %s", err, diag.LowerMissingSamplerType)
	}
}

func TestMapOperatorUnknown(t *testing.T) {
	if _, err := mapOperator(ast.OpNull, 310, nil, nil); !errors.Is(err, errUnknownOperator) {
		t.Fatalf("err = %v, want errUnknownOperator", err)
	}
	if _, err := mapOperator(ast.OpSequence, 310, nil, nil); !errors.Is(err, errUnknownOperator) {
		t.Fatalf("structural operator mapped as a value: %v", err)
	}
}

func TestBranchOperatorMapping(t *testing.T) {
	cases := []struct {
		op   ast.Operator
		want pack.BranchOperator
	}{
		{ast.OpKill, pack.BranchDiscard},
		{ast.OpTerminateInvocation, pack.BranchTerminateInvocation},
		{ast.OpDemote, pack.BranchDemote},
		{ast.OpTerminateRayKHR, pack.BranchTerminateRayEXT},
		{ast.OpIgnoreIntersectionKHR, pack.BranchIgnoreIntersectionEXT},
		{ast.OpReturn, pack.BranchReturn},
		{ast.OpBreak, pack.BranchBreak},
		{ast.OpContinue, pack.BranchContinue},
		{ast.OpCase, pack.BranchCase},
		{ast.OpDefault, pack.BranchDefault},
	}
	for _, c := range cases {
		got, err := branchOperator(c.op, nil, nil)
		if err != nil {
			t.Fatalf("branchOperator(%s) failed: %v", c.op, err)
		}
		if got != c.want {
			t.Errorf("branchOperator(%s) = %v, want %v", c.op, got, c.want)
		}
	}

	_, err := branchOperator(ast.OpAdd, nil, nil)
	var lowErr *Error
	if !errors.As(err, &lowErr) || lowErr.Code != diag.LowerUnknownBranchOperator {
		t.Fatalf("value operator accepted as a branch: %v", err)
	}
}
