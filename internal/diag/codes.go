package diag

import "fmt"

// Code identifies a diagnostic category.
type Code uint16

const (
	UnknownCode Code = 0

	// Lowering: tolerant diagnostics. Only LowerUnknownOperator may be
	// reported without aborting the pass.
	LowerInfo            Code = 3000
	LowerUnknownOperator Code = 3001

	// Lowering: fatal structural-precondition violations. These always
	// surface as errors that abort the pass.
	LowerBadNode               Code = 3100
	LowerUntypedNode           Code = 3101
	LowerUnsupportedLiteral    Code = 3102
	LowerUnsupportedType       Code = 3103
	LowerBadVectorSize         Code = 3104
	LowerBadMatrixShape        Code = 3105
	LowerUnknownBranchOperator Code = 3106
	LowerBadSwizzle            Code = 3107
	LowerBadFunctionShape      Code = 3108
	LowerBadInitializer        Code = 3109
	LowerGlobalScopeLeak       Code = 3110
	LowerMissingSamplerType    Code = 3111
	LowerBadLoopTerminal       Code = 3112
	LowerBadStatement          Code = 3113

	// Front-end interchange (CLI plumbing).
	IOBadDump Code = 4000
)

func (c Code) String() string {
	return fmt.Sprintf("GP%04d", uint16(c))
}
