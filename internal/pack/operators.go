package pack

// RValueOperator is the closed set of language operators an evaluable
// rvalue can apply directly. Everything outside this set is represented
// as a named builtin function instead. Compound assignments share the tag
// of their base operation with an Assign suffix; the various
// vector/matrix multiply forms all collapse to Mul.
type RValueOperator uint8

const (
	// OpInvalid is the zero sentinel; no stored rvalue uses it.
	OpInvalid RValueOperator = iota

	OpNegative
	OpLogicalNot
	OpBitwiseNot
	OpPostIncrement
	OpPostDecrement
	OpPreIncrement
	OpPreDecrement

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpRightShift
	OpLeftShift
	OpAnd
	OpInclusiveOr
	OpExclusiveOr

	OpEqual
	OpNotEqual
	OpLessThan
	OpGreaterThan
	OpLessThanEqual
	OpGreaterThanEqual

	OpComma
	OpLogicalOr
	OpLogicalXor
	OpLogicalAnd

	OpIndex
	OpIndexStruct
	OpVectorSwizzle

	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpDivAssign
	OpModAssign
	OpAndAssign
	OpInclusiveOrAssign
	OpExclusiveOrAssign
	OpLeftShiftAssign
	OpRightShiftAssign

	// OpTernary is also the placeholder substituted for operators the
	// mapping does not recognize.
	OpTernary
	OpConstructStruct
	OpArrayLength
)

var rvalueOperatorNames = [...]string{
	OpInvalid:           "Invalid",
	OpNegative:          "Negative",
	OpLogicalNot:        "LogicalNot",
	OpBitwiseNot:        "BitwiseNot",
	OpPostIncrement:     "PostIncrement",
	OpPostDecrement:     "PostDecrement",
	OpPreIncrement:      "PreIncrement",
	OpPreDecrement:      "PreDecrement",
	OpAdd:               "Add",
	OpSub:               "Sub",
	OpMul:               "Mul",
	OpDiv:               "Div",
	OpMod:               "Mod",
	OpRightShift:        "RightShift",
	OpLeftShift:         "LeftShift",
	OpAnd:               "And",
	OpInclusiveOr:       "InclusiveOr",
	OpExclusiveOr:       "ExclusiveOr",
	OpEqual:             "Equal",
	OpNotEqual:          "NotEqual",
	OpLessThan:          "LessThan",
	OpGreaterThan:       "GreaterThan",
	OpLessThanEqual:     "LessThanEqual",
	OpGreaterThanEqual:  "GreaterThanEqual",
	OpComma:             "Comma",
	OpLogicalOr:         "LogicalOr",
	OpLogicalXor:        "LogicalXor",
	OpLogicalAnd:        "LogicalAnd",
	OpIndex:             "Index",
	OpIndexStruct:       "IndexStruct",
	OpVectorSwizzle:     "VectorSwizzle",
	OpAssign:            "Assign",
	OpAddAssign:         "AddAssign",
	OpSubAssign:         "SubAssign",
	OpMulAssign:         "MulAssign",
	OpDivAssign:         "DivAssign",
	OpModAssign:         "ModAssign",
	OpAndAssign:         "AndAssign",
	OpInclusiveOrAssign: "InclusiveOrAssign",
	OpExclusiveOrAssign: "ExclusiveOrAssign",
	OpLeftShiftAssign:   "LeftShiftAssign",
	OpRightShiftAssign:  "RightShiftAssign",
	OpTernary:           "Ternary",
	OpConstructStruct:   "ConstructStruct",
	OpArrayLength:       "ArrayLength",
}

// String returns a stable name for the operator tag.
func (op RValueOperator) String() string {
	if int(op) < len(rvalueOperatorNames) {
		return rvalueOperatorNames[op]
	}
	return "Unknown"
}

// BranchOperator is the closed set of flow-control operators a branch
// statement can carry. Unlike RValueOperator there is no tolerant
// fallback: an unrecognized branch operator aborts the pass.
type BranchOperator uint8

const (
	BranchDiscard BranchOperator = iota
	BranchTerminateInvocation
	BranchDemote
	BranchTerminateRayEXT
	BranchIgnoreIntersectionEXT
	BranchReturn
	BranchBreak
	BranchContinue
	BranchCase
	BranchDefault
)

var branchOperatorNames = [...]string{
	BranchDiscard:               "Discard",
	BranchTerminateInvocation:   "TerminateInvocation",
	BranchDemote:                "Demote",
	BranchTerminateRayEXT:       "TerminateRayEXT",
	BranchIgnoreIntersectionEXT: "IgnoreIntersectionEXT",
	BranchReturn:                "Return",
	BranchBreak:                 "Break",
	BranchContinue:              "Continue",
	BranchCase:                  "Case",
	BranchDefault:               "Default",
}

// String returns a stable name for the branch operator.
func (op BranchOperator) String() string {
	if int(op) < len(branchOperatorNames) {
		return branchOperatorNames[op]
	}
	return "Unknown"
}
