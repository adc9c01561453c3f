package lower

import (
	"errors"
	"strings"

	"glslpack/internal/ast"
	"glslpack/internal/diag"
	"glslpack/internal/pack"
)

// errUnknownOperator marks the single tolerant degradation path: the
// caller reports it and substitutes the placeholder ternary tag instead
// of aborting the pass.
var errUnknownOperator = errors.New("unknown value operator")

// mappedOp is the result of mapping one front-end operator: either a
// closed-set tag or a builtin function name.
type mappedOp struct {
	tag  pack.RValueOperator
	name string // non-empty means builtin function name
}

// mapOperator is a pure function from (operator, shader version, result
// type, optional first-argument type) to a tag or builtin name. The
// first-argument type is consulted only for texture sampling at
// version <= 100.
func mapOperator(op ast.Operator, version int, returnType, arg1Type *ast.Type) (mappedOp, error) {
	if tag, ok := rvalueOperatorTags[op]; ok {
		return mappedOp{tag: tag}, nil
	}
	if name, ok := builtinFunctionNames[op]; ok {
		return mappedOp{name: name}, nil
	}
	if base, ok := constructorNames[op]; ok {
		return mappedOp{name: constructorName(base, returnType)}, nil
	}
	if vn, ok := versionedNames[op]; ok {
		if version >= vn.minVersion {
			return mappedOp{name: vn.name}, nil
		}
		return mappedOp{name: vn.older}, nil
	}

	// Texture sampling: the spelling depends on the shader version and,
	// for legacy versions, on the sampler argument.
	switch op {
	case ast.OpTexture:
		return textureName("", "", version, arg1Type)
	case ast.OpTextureProj:
		return textureName("Proj", "", version, arg1Type)
	case ast.OpTextureLod:
		return textureName("Lod", "", version, arg1Type)
	case ast.OpTextureProjLod:
		return textureName("ProjLod", "", version, arg1Type)
	case ast.OpTextureGrad:
		return textureName("Grad", "ARB", version, arg1Type)
	case ast.OpTextureProjGrad:
		return textureName("ProjGrad", "ARB", version, arg1Type)
	}

	return mappedOp{}, errUnknownOperator
}

// constructorName appends one "[]" per array dimension of the result
// type, so `float[2][3](...)` and `float(...)` intern as distinct
// functions.
func constructorName(base string, returnType *ast.Type) string {
	if returnType == nil || !returnType.IsArray() {
		return base
	}
	var sb strings.Builder
	sb.WriteString(base)
	for range returnType.ArraySizes {
		sb.WriteString("[]")
	}
	return sb.String()
}

// textureName resolves a texture-sampling builtin. Above version 100
// the modern overloaded "texture*" family applies; at or below 100 the
// name encodes the sampler's dimensionality and shadow-ness, which
// requires the first argument's type.
func textureName(suffix, arbOrExt string, version int, arg1Type *ast.Type) (mappedOp, error) {
	if version > 100 {
		return mappedOp{name: "texture" + suffix}, nil
	}
	if arg1Type == nil || arg1Type.Sampler == nil {
		return mappedOp{}, errNode(diag.LowerMissingSamplerType, nil, nil,
			"first argument to a texture function must carry a sampler type")
	}
	sampler := arg1Type.Sampler
	var sb strings.Builder
	if sampler.Shadow {
		sb.WriteString("shadow")
	} else {
		sb.WriteString("texture")
	}
	switch sampler.Dim {
	case ast.Dim1D:
		sb.WriteString("1D")
	case ast.Dim2D:
		sb.WriteString("2D")
	case ast.Dim3D:
		sb.WriteString("3D")
	case ast.DimCube:
		sb.WriteString("Cube")
	case ast.DimRect:
		sb.WriteString("2DRect")
	default:
		return mappedOp{}, errNode(diag.LowerMissingSamplerType, nil, nil,
			"unhandled sampler dimension %d", sampler.Dim)
	}
	sb.WriteString(suffix)
	sb.WriteString(arbOrExt)
	return mappedOp{name: sb.String()}, nil
}

// resolveOperator maps a value operator and interns builtin names as
// function ids. An unrecognized operator is reported through the
// reporter and degrades to the ternary placeholder; this is the only
// tolerated inconsistency in the whole pass.
func (l *lowerer) resolveOperator(op ast.Operator, node, parent ast.Node, returnType, arg1Type *ast.Type) (pack.OpRef, error) {
	m, err := mapOperator(op, l.version, returnType, arg1Type)
	switch {
	case errors.Is(err, errUnknownOperator):
		l.reporter.Report(diag.LowerUnknownOperator, diag.SevError,
			"cannot map operator "+op.String()+" to an rvalue operator; substituting a placeholder",
			ast.Describe(node), ast.Describe(parent))
		return pack.OperatorRef(pack.OpTernary), nil
	case err != nil:
		return pack.OpRef{}, err
	case m.name != "":
		return pack.FunctionRef(l.functionNames.Insert(m.name)), nil
	default:
		return pack.OperatorRef(m.tag), nil
	}
}

// branchOperator maps flow-control operators. This mapping is disjoint
// from the value mapping and fails hard on anything unrecognized.
func branchOperator(op ast.Operator, node, parent ast.Node) (pack.BranchOperator, error) {
	switch op {
	case ast.OpKill:
		return pack.BranchDiscard, nil
	case ast.OpTerminateInvocation:
		return pack.BranchTerminateInvocation, nil
	case ast.OpDemote:
		return pack.BranchDemote, nil
	case ast.OpTerminateRayKHR:
		return pack.BranchTerminateRayEXT, nil
	case ast.OpIgnoreIntersectionKHR:
		return pack.BranchIgnoreIntersectionEXT, nil
	case ast.OpReturn:
		return pack.BranchReturn, nil
	case ast.OpBreak:
		return pack.BranchBreak, nil
	case ast.OpContinue:
		return pack.BranchContinue, nil
	case ast.OpCase:
		return pack.BranchCase, nil
	case ast.OpDefault:
		return pack.BranchDefault, nil
	default:
		return 0, errNode(diag.LowerUnknownBranchOperator, node, parent,
			"cannot map operator %s to a branch operator", op)
	}
}
