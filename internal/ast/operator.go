package ast

import (
	"strconv"
	"sync"
)

// Operator is the operation tag attached to unary, binary, branch and
// aggregate nodes by the upstream front end. The set mirrors the front
// end's own operator space; the lowering tables key on it.
type Operator uint16

const (
	OpNull Operator = iota

	// Structural aggregates.
	OpSequence
	OpLinkerObjects
	OpFunction
	OpParameters
	OpFunctionCall

	// Flow control carried by branch nodes.
	OpKill
	OpTerminateInvocation
	OpDemote
	OpTerminateRayKHR
	OpIgnoreIntersectionKHR
	OpReturn
	OpBreak
	OpContinue
	OpCase
	OpDefault

	// Value-producing operators.
	OpNegative
	OpLogicalNot
	OpVectorLogicalNot
	OpBitwiseNot
	OpPostIncrement
	OpPostDecrement
	OpPreIncrement
	OpPreDecrement
	OpConvIntToBool
	OpConvUintToBool
	OpConvFloatToBool
	OpConvDoubleToBool
	OpConvBoolToInt
	OpConvUintToInt
	OpConvFloatToInt
	OpConvDoubleToInt
	OpConvBoolToFloat
	OpConvIntToFloat
	OpConvUintToFloat
	OpConvDoubleToFloat
	OpConvBoolToDouble
	OpConvIntToDouble
	OpConvUintToDouble
	OpConvFloatToDouble
	OpConvBoolToUint
	OpConvIntToUint
	OpConvFloatToUint
	OpConvDoubleToUint
	OpAdd
	OpSub
	OpMul
	OpVectorTimesScalar
	OpVectorTimesMatrix
	OpMatrixTimesVector
	OpMatrixTimesScalar
	OpDiv
	OpMod
	OpRightShift
	OpLeftShift
	OpAnd
	OpInclusiveOr
	OpExclusiveOr
	OpEqual
	OpNotEqual
	OpVectorEqual
	OpVectorNotEqual
	OpLessThan
	OpGreaterThan
	OpLessThanEqual
	OpGreaterThanEqual
	OpComma
	OpLogicalOr
	OpLogicalXor
	OpLogicalAnd
	OpIndexDirect
	OpIndexIndirect
	OpIndexDirectStruct
	OpVectorSwizzle
	OpRadians
	OpDegrees
	OpSin
	OpCos
	OpTan
	OpAsin
	OpAcos
	OpAtan
	OpSinh
	OpCosh
	OpTanh
	OpAsinh
	OpAcosh
	OpAtanh
	OpPow
	OpExp
	OpLog
	OpExp2
	OpLog2
	OpSqrt
	OpInverseSqrt
	OpAbs
	OpSign
	OpFloor
	OpTrunc
	OpRound
	OpRoundEven
	OpCeil
	OpFract
	OpModf
	OpMin
	OpMax
	OpClamp
	OpMix
	OpStep
	OpSmoothStep
	OpIsNan
	OpIsInf
	OpFma
	OpFrexp
	OpLdexp
	OpFloatBitsToInt
	OpFloatBitsToUint
	OpIntBitsToFloat
	OpUintBitsToFloat
	OpPackSnorm2x16
	OpUnpackSnorm2x16
	OpPackUnorm2x16
	OpUnpackUnorm2x16
	OpPackSnorm4x8
	OpUnpackSnorm4x8
	OpPackUnorm4x8
	OpUnpackUnorm4x8
	OpPackHalf2x16
	OpUnpackHalf2x16
	OpPackDouble2x32
	OpUnpackDouble2x32
	OpPackInt2x32
	OpUnpackInt2x32
	OpPackUint2x32
	OpUnpackUint2x32
	OpPackFloat2x16
	OpUnpackFloat2x16
	OpPackInt2x16
	OpUnpackInt2x16
	OpPackUint2x16
	OpUnpackUint2x16
	OpPackInt4x16
	OpUnpackInt4x16
	OpPackUint4x16
	OpUnpackUint4x16
	OpPack16
	OpPack32
	OpPack64
	OpUnpack32
	OpUnpack16
	OpUnpack8
	OpLength
	OpDistance
	OpDot
	OpCross
	OpNormalize
	OpFaceForward
	OpReflect
	OpRefract
	OpMin3
	OpMax3
	OpMid3
	OpDPdx
	OpDPdy
	OpFwidth
	OpDPdxFine
	OpDPdyFine
	OpFwidthFine
	OpDPdxCoarse
	OpDPdyCoarse
	OpFwidthCoarse
	OpInterpolateAtCentroid
	OpInterpolateAtSample
	OpInterpolateAtOffset
	OpInterpolateAtVertex
	OpOuterProduct
	OpDeterminant
	OpMatrixInverse
	OpTranspose
	OpFtransform
	OpEmitVertex
	OpEndPrimitive
	OpEmitStreamVertex
	OpEndStreamPrimitive
	OpBarrier
	OpMemoryBarrier
	OpMemoryBarrierAtomicCounter
	OpMemoryBarrierBuffer
	OpMemoryBarrierImage
	OpMemoryBarrierShared
	OpGroupMemoryBarrier
	OpBallot
	OpReadInvocation
	OpReadFirstInvocation
	OpAnyInvocation
	OpAllInvocations
	OpAllInvocationsEqual
	OpSubgroupBarrier
	OpSubgroupMemoryBarrier
	OpSubgroupMemoryBarrierBuffer
	OpSubgroupMemoryBarrierImage
	OpSubgroupMemoryBarrierShared
	OpSubgroupElect
	OpSubgroupAll
	OpSubgroupAny
	OpSubgroupAllEqual
	OpSubgroupBroadcast
	OpSubgroupBroadcastFirst
	OpSubgroupBallot
	OpSubgroupInverseBallot
	OpSubgroupBallotBitExtract
	OpSubgroupBallotBitCount
	OpSubgroupBallotInclusiveBitCount
	OpSubgroupBallotExclusiveBitCount
	OpSubgroupBallotFindLSB
	OpSubgroupBallotFindMSB
	OpSubgroupShuffle
	OpSubgroupShuffleXor
	OpSubgroupShuffleUp
	OpSubgroupShuffleDown
	OpSubgroupAdd
	OpSubgroupMul
	OpSubgroupMin
	OpSubgroupMax
	OpSubgroupAnd
	OpSubgroupOr
	OpSubgroupXor
	OpSubgroupInclusiveAdd
	OpSubgroupInclusiveMul
	OpSubgroupInclusiveMin
	OpSubgroupInclusiveMax
	OpSubgroupInclusiveAnd
	OpSubgroupInclusiveOr
	OpSubgroupInclusiveXor
	OpSubgroupExclusiveAdd
	OpSubgroupExclusiveMul
	OpSubgroupExclusiveMin
	OpSubgroupExclusiveMax
	OpSubgroupExclusiveAnd
	OpSubgroupExclusiveOr
	OpSubgroupExclusiveXor
	OpSubgroupClusteredAdd
	OpSubgroupClusteredMul
	OpSubgroupClusteredMin
	OpSubgroupClusteredMax
	OpSubgroupClusteredAnd
	OpSubgroupClusteredOr
	OpSubgroupClusteredXor
	OpSubgroupQuadBroadcast
	OpSubgroupQuadSwapHorizontal
	OpSubgroupQuadSwapVertical
	OpSubgroupQuadSwapDiagonal
	OpSubgroupPartition
	OpSubgroupPartitionedAdd
	OpSubgroupPartitionedMul
	OpSubgroupPartitionedMin
	OpSubgroupPartitionedMax
	OpSubgroupPartitionedAnd
	OpSubgroupPartitionedOr
	OpSubgroupPartitionedXor
	OpSubgroupPartitionedInclusiveAdd
	OpSubgroupPartitionedInclusiveMul
	OpSubgroupPartitionedInclusiveMin
	OpSubgroupPartitionedInclusiveMax
	OpSubgroupPartitionedInclusiveAnd
	OpSubgroupPartitionedInclusiveOr
	OpSubgroupPartitionedInclusiveXor
	OpSubgroupPartitionedExclusiveAdd
	OpSubgroupPartitionedExclusiveMul
	OpSubgroupPartitionedExclusiveMin
	OpSubgroupPartitionedExclusiveMax
	OpSubgroupPartitionedExclusiveAnd
	OpSubgroupPartitionedExclusiveOr
	OpSubgroupPartitionedExclusiveXor
	OpMinInvocations
	OpMaxInvocations
	OpAddInvocations
	OpMinInvocationsNonUniform
	OpMaxInvocationsNonUniform
	OpAddInvocationsNonUniform
	OpMinInvocationsInclusiveScan
	OpMaxInvocationsInclusiveScan
	OpAddInvocationsInclusiveScan
	OpMinInvocationsInclusiveScanNonUniform
	OpMaxInvocationsInclusiveScanNonUniform
	OpAddInvocationsInclusiveScanNonUniform
	OpMinInvocationsExclusiveScan
	OpMaxInvocationsExclusiveScan
	OpAddInvocationsExclusiveScan
	OpMinInvocationsExclusiveScanNonUniform
	OpMaxInvocationsExclusiveScanNonUniform
	OpAddInvocationsExclusiveScanNonUniform
	OpSwizzleInvocations
	OpSwizzleInvocationsMasked
	OpWriteInvocation
	OpMbcnt
	OpCubeFaceIndex
	OpCubeFaceCoord
	OpTime
	OpAtomicAdd
	OpAtomicMin
	OpAtomicMax
	OpAtomicAnd
	OpAtomicOr
	OpAtomicXor
	OpAtomicExchange
	OpAtomicCompSwap
	OpAtomicLoad
	OpAtomicStore
	OpAtomicCounterIncrement
	OpAtomicCounterDecrement
	OpAtomicCounter
	OpAtomicCounterAdd
	OpAtomicCounterSubtract
	OpAtomicCounterMin
	OpAtomicCounterMax
	OpAtomicCounterAnd
	OpAtomicCounterOr
	OpAtomicCounterXor
	OpAtomicCounterExchange
	OpAtomicCounterCompSwap
	OpAny
	OpAll
	OpCooperativeMatrixLoad
	OpCooperativeMatrixStore
	OpCooperativeMatrixMulAdd
	OpCooperativeMatrixLoadNV
	OpCooperativeMatrixStoreNV
	OpCooperativeMatrixMulAddNV
	OpBeginInvocationInterlock
	OpEndInvocationInterlock
	OpIsHelperInvocation
	OpDebugPrintf
	OpConstructInt
	OpConstructUint
	OpConstructInt8
	OpConstructUint8
	OpConstructInt16
	OpConstructUint16
	OpConstructInt64
	OpConstructUint64
	OpConstructBool
	OpConstructFloat
	OpConstructDouble
	OpConstructVec2
	OpConstructVec3
	OpConstructVec4
	OpConstructMat2x2
	OpConstructMat2x3
	OpConstructMat2x4
	OpConstructMat3x2
	OpConstructMat3x3
	OpConstructMat3x4
	OpConstructMat4x2
	OpConstructMat4x3
	OpConstructMat4x4
	OpConstructDVec2
	OpConstructDVec3
	OpConstructDVec4
	OpConstructBVec2
	OpConstructBVec3
	OpConstructBVec4
	OpConstructI8Vec2
	OpConstructI8Vec3
	OpConstructI8Vec4
	OpConstructU8Vec2
	OpConstructU8Vec3
	OpConstructU8Vec4
	OpConstructI16Vec2
	OpConstructI16Vec3
	OpConstructI16Vec4
	OpConstructU16Vec2
	OpConstructU16Vec3
	OpConstructU16Vec4
	OpConstructIVec2
	OpConstructIVec3
	OpConstructIVec4
	OpConstructUVec2
	OpConstructUVec3
	OpConstructUVec4
	OpConstructI64Vec2
	OpConstructI64Vec3
	OpConstructI64Vec4
	OpConstructU64Vec2
	OpConstructU64Vec3
	OpConstructU64Vec4
	OpConstructDMat2x2
	OpConstructDMat2x3
	OpConstructDMat2x4
	OpConstructDMat3x2
	OpConstructDMat3x3
	OpConstructDMat3x4
	OpConstructDMat4x2
	OpConstructDMat4x3
	OpConstructDMat4x4
	OpConstructIMat2x2
	OpConstructIMat2x3
	OpConstructIMat2x4
	OpConstructIMat3x2
	OpConstructIMat3x3
	OpConstructIMat3x4
	OpConstructIMat4x2
	OpConstructIMat4x3
	OpConstructIMat4x4
	OpConstructUMat2x2
	OpConstructUMat2x3
	OpConstructUMat2x4
	OpConstructUMat3x2
	OpConstructUMat3x3
	OpConstructUMat3x4
	OpConstructUMat4x2
	OpConstructUMat4x3
	OpConstructUMat4x4
	OpConstructBMat2x2
	OpConstructBMat2x3
	OpConstructBMat2x4
	OpConstructBMat3x2
	OpConstructBMat3x3
	OpConstructBMat3x4
	OpConstructBMat4x2
	OpConstructBMat4x3
	OpConstructBMat4x4
	OpConstructFloat16
	OpConstructF16Vec2
	OpConstructF16Vec3
	OpConstructF16Vec4
	OpConstructF16Mat2x2
	OpConstructF16Mat2x3
	OpConstructF16Mat2x4
	OpConstructF16Mat3x2
	OpConstructF16Mat3x3
	OpConstructF16Mat3x4
	OpConstructF16Mat4x2
	OpConstructF16Mat4x3
	OpConstructF16Mat4x4
	OpConstructStruct
	OpConstructTextureSampler
	OpConstructNonuniform
	OpConstructReference
	OpConstructCooperativeMatrixNV
	OpConstructCooperativeMatrixKHR
	OpAssign
	OpAddAssign
	OpSubAssign
	OpMulAssign
	OpVectorTimesMatrixAssign
	OpVectorTimesScalarAssign
	OpMatrixTimesScalarAssign
	OpMatrixTimesMatrixAssign
	OpDivAssign
	OpModAssign
	OpAndAssign
	OpInclusiveOrAssign
	OpExclusiveOrAssign
	OpLeftShiftAssign
	OpRightShiftAssign
	OpArrayLength
	OpImageQuerySize
	OpImageQuerySamples
	OpImageLoad
	OpImageStore
	OpImageLoadLod
	OpImageStoreLod
	OpImageAtomicAdd
	OpImageAtomicMin
	OpImageAtomicMax
	OpImageAtomicAnd
	OpImageAtomicOr
	OpImageAtomicXor
	OpImageAtomicExchange
	OpImageAtomicCompSwap
	OpImageAtomicLoad
	OpImageAtomicStore
	OpSubpassLoad
	OpSubpassLoadMS
	OpSparseImageLoad
	OpSparseImageLoadLod
	OpColorAttachmentReadEXT
	OpTextureQuerySize
	OpTextureQueryLod
	OpTextureQueryLevels
	OpTextureQuerySamples
	OpTexture
	OpTextureProj
	OpTextureLod
	OpTextureOffset
	OpTextureFetch
	OpTextureFetchOffset
	OpTextureProjOffset
	OpTextureLodOffset
	OpTextureProjLod
	OpTextureProjLodOffset
	OpTextureGrad
	OpTextureGradOffset
	OpTextureProjGrad
	OpTextureProjGradOffset
	OpTextureGather
	OpTextureGatherOffset
	OpTextureGatherOffsets
	OpTextureClamp
	OpTextureOffsetClamp
	OpTextureGradClamp
	OpTextureGradOffsetClamp
	OpTextureGatherLod
	OpTextureGatherLodOffset
	OpTextureGatherLodOffsets
	OpFragmentMaskFetch
	OpFragmentFetch
	OpSparseTexture
	OpSparseTextureLod
	OpSparseTextureOffset
	OpSparseTextureFetch
	OpSparseTextureFetchOffset
	OpSparseTextureLodOffset
	OpSparseTextureGrad
	OpSparseTextureGradOffset
	OpSparseTextureGather
	OpSparseTextureGatherOffset
	OpSparseTextureGatherOffsets
	OpSparseTexelsResident
	OpSparseTextureClamp
	OpSparseTextureOffsetClamp
	OpSparseTextureGradClamp
	OpSparseTextureGradOffsetClamp
	OpSparseTextureGatherLod
	OpSparseTextureGatherLodOffset
	OpSparseTextureGatherLodOffsets
	OpImageSampleFootprintNV
	OpImageSampleFootprintClampNV
	OpImageSampleFootprintLodNV
	OpImageSampleFootprintGradNV
	OpImageSampleFootprintGradClampNV
	OpAddCarry
	OpSubBorrow
	OpUMulExtended
	OpIMulExtended
	OpBitfieldExtract
	OpBitfieldInsert
	OpBitFieldReverse
	OpBitCount
	OpFindLSB
	OpFindMSB
	OpCountLeadingZeros
	OpCountTrailingZeros
	OpAbsDifference
	OpAddSaturate
	OpSubSaturate
	OpAverage
	OpAverageRounded
	OpMul32x16
	OpTraceNV
	OpTraceRayMotionNV
	OpTraceKHR
	OpReportIntersection
	OpIgnoreIntersectionNV
	OpTerminateRayNV
	OpExecuteCallableNV
	OpExecuteCallableKHR
	OpWritePackedPrimitiveIndices4x8NV
	OpEmitMeshTasksEXT
	OpSetMeshOutputsEXT
	OpRayQueryInitialize
	OpRayQueryTerminate
	OpRayQueryGenerateIntersection
	OpRayQueryConfirmIntersection
	OpRayQueryProceed
	OpRayQueryGetIntersectionType
	OpRayQueryGetRayTMin
	OpRayQueryGetRayFlags
	OpRayQueryGetIntersectionT
	OpRayQueryGetIntersectionInstanceCustomIndex
	OpRayQueryGetIntersectionInstanceId
	OpRayQueryGetIntersectionInstanceShaderBindingTableRecordOffset
	OpRayQueryGetIntersectionGeometryIndex
	OpRayQueryGetIntersectionPrimitiveIndex
	OpRayQueryGetIntersectionBarycentrics
	OpRayQueryGetIntersectionFrontFace
	OpRayQueryGetIntersectionCandidateAABBOpaque
	OpRayQueryGetIntersectionObjectRayDirection
	OpRayQueryGetIntersectionObjectRayOrigin
	OpRayQueryGetWorldRayDirection
	OpRayQueryGetWorldRayOrigin
	OpRayQueryGetIntersectionObjectToWorld
	OpRayQueryGetIntersectionWorldToObject
	OpHitObjectTraceRayNV
	OpHitObjectTraceRayMotionNV
	OpHitObjectRecordHitNV
	OpHitObjectRecordHitMotionNV
	OpHitObjectRecordHitWithIndexNV
	OpHitObjectRecordHitWithIndexMotionNV
	OpHitObjectRecordMissNV
	OpHitObjectRecordMissMotionNV
	OpHitObjectRecordEmptyNV
	OpHitObjectExecuteShaderNV
	OpHitObjectIsEmptyNV
	OpHitObjectIsMissNV
	OpHitObjectIsHitNV
	OpHitObjectGetRayTMinNV
	OpHitObjectGetRayTMaxNV
	OpHitObjectGetObjectRayOriginNV
	OpHitObjectGetObjectRayDirectionNV
	OpHitObjectGetWorldRayOriginNV
	OpHitObjectGetWorldRayDirectionNV
	OpHitObjectGetWorldToObjectNV
	OpHitObjectGetObjectToWorldNV
	OpHitObjectGetInstanceCustomIndexNV
	OpHitObjectGetInstanceIdNV
	OpHitObjectGetGeometryIndexNV
	OpHitObjectGetPrimitiveIndexNV
	OpHitObjectGetHitKindNV
	OpHitObjectGetShaderBindingTableRecordIndexNV
	OpHitObjectGetShaderRecordBufferHandleNV
	OpHitObjectGetAttributesNV
	OpHitObjectGetCurrentTimeNV
	OpReorderThreadNV
	OpFetchMicroTriangleVertexPositionNV
	OpFetchMicroTriangleVertexBarycentricNV
	OpReadClockSubgroupKHR
	OpReadClockDeviceKHR
	OpRayQueryGetIntersectionTriangleVertexPositionsEXT
	OpStencilAttachmentReadEXT
	OpDepthAttachmentReadEXT
	OpImageSampleWeightedQCOM
	OpImageBoxFilterQCOM
	OpImageBlockMatchSADQCOM
	OpImageBlockMatchSSDQCOM
)

var operatorNames = [...]string{
	OpNull:                 "Null",
	OpSequence:             "Sequence",
	OpLinkerObjects:        "LinkerObjects",
	OpFunction:             "Function",
	OpParameters:           "Parameters",
	OpFunctionCall:         "FunctionCall",
	OpKill:                 "Kill",
	OpTerminateInvocation:  "TerminateInvocation",
	OpDemote:               "Demote",
	OpTerminateRayKHR:      "TerminateRayKHR",
	OpIgnoreIntersectionKHR: "IgnoreIntersectionKHR",
	OpReturn:               "Return",
	OpBreak:                "Break",
	OpContinue:             "Continue",
	OpCase:                 "Case",
	OpDefault:              "Default",
	OpNegative: "Negative",
	OpLogicalNot: "LogicalNot",
	OpVectorLogicalNot: "VectorLogicalNot",
	OpBitwiseNot: "BitwiseNot",
	OpPostIncrement: "PostIncrement",
	OpPostDecrement: "PostDecrement",
	OpPreIncrement: "PreIncrement",
	OpPreDecrement: "PreDecrement",
	OpConvIntToBool: "ConvIntToBool",
	OpConvUintToBool: "ConvUintToBool",
	OpConvFloatToBool: "ConvFloatToBool",
	OpConvDoubleToBool: "ConvDoubleToBool",
	OpConvBoolToInt: "ConvBoolToInt",
	OpConvUintToInt: "ConvUintToInt",
	OpConvFloatToInt: "ConvFloatToInt",
	OpConvDoubleToInt: "ConvDoubleToInt",
	OpConvBoolToFloat: "ConvBoolToFloat",
	OpConvIntToFloat: "ConvIntToFloat",
	OpConvUintToFloat: "ConvUintToFloat",
	OpConvDoubleToFloat: "ConvDoubleToFloat",
	OpConvBoolToDouble: "ConvBoolToDouble",
	OpConvIntToDouble: "ConvIntToDouble",
	OpConvUintToDouble: "ConvUintToDouble",
	OpConvFloatToDouble: "ConvFloatToDouble",
	OpConvBoolToUint: "ConvBoolToUint",
	OpConvIntToUint: "ConvIntToUint",
	OpConvFloatToUint: "ConvFloatToUint",
	OpConvDoubleToUint: "ConvDoubleToUint",
	OpAdd: "Add",
	OpSub: "Sub",
	OpMul: "Mul",
	OpVectorTimesScalar: "VectorTimesScalar",
	OpVectorTimesMatrix: "VectorTimesMatrix",
	OpMatrixTimesVector: "MatrixTimesVector",
	OpMatrixTimesScalar: "MatrixTimesScalar",
	OpDiv: "Div",
	OpMod: "Mod",
	OpRightShift: "RightShift",
	OpLeftShift: "LeftShift",
	OpAnd: "And",
	OpInclusiveOr: "InclusiveOr",
	OpExclusiveOr: "ExclusiveOr",
	OpEqual: "Equal",
	OpNotEqual: "NotEqual",
	OpVectorEqual: "VectorEqual",
	OpVectorNotEqual: "VectorNotEqual",
	OpLessThan: "LessThan",
	OpGreaterThan: "GreaterThan",
	OpLessThanEqual: "LessThanEqual",
	OpGreaterThanEqual: "GreaterThanEqual",
	OpComma: "Comma",
	OpLogicalOr: "LogicalOr",
	OpLogicalXor: "LogicalXor",
	OpLogicalAnd: "LogicalAnd",
	OpIndexDirect: "IndexDirect",
	OpIndexIndirect: "IndexIndirect",
	OpIndexDirectStruct: "IndexDirectStruct",
	OpVectorSwizzle: "VectorSwizzle",
	OpRadians: "Radians",
	OpDegrees: "Degrees",
	OpSin: "Sin",
	OpCos: "Cos",
	OpTan: "Tan",
	OpAsin: "Asin",
	OpAcos: "Acos",
	OpAtan: "Atan",
	OpSinh: "Sinh",
	OpCosh: "Cosh",
	OpTanh: "Tanh",
	OpAsinh: "Asinh",
	OpAcosh: "Acosh",
	OpAtanh: "Atanh",
	OpPow: "Pow",
	OpExp: "Exp",
	OpLog: "Log",
	OpExp2: "Exp2",
	OpLog2: "Log2",
	OpSqrt: "Sqrt",
	OpInverseSqrt: "InverseSqrt",
	OpAbs: "Abs",
	OpSign: "Sign",
	OpFloor: "Floor",
	OpTrunc: "Trunc",
	OpRound: "Round",
	OpRoundEven: "RoundEven",
	OpCeil: "Ceil",
	OpFract: "Fract",
	OpModf: "Modf",
	OpMin: "Min",
	OpMax: "Max",
	OpClamp: "Clamp",
	OpMix: "Mix",
	OpStep: "Step",
	OpSmoothStep: "SmoothStep",
	OpIsNan: "IsNan",
	OpIsInf: "IsInf",
	OpFma: "Fma",
	OpFrexp: "Frexp",
	OpLdexp: "Ldexp",
	OpFloatBitsToInt: "FloatBitsToInt",
	OpFloatBitsToUint: "FloatBitsToUint",
	OpIntBitsToFloat: "IntBitsToFloat",
	OpUintBitsToFloat: "UintBitsToFloat",
	OpPackSnorm2x16: "PackSnorm2x16",
	OpUnpackSnorm2x16: "UnpackSnorm2x16",
	OpPackUnorm2x16: "PackUnorm2x16",
	OpUnpackUnorm2x16: "UnpackUnorm2x16",
	OpPackSnorm4x8: "PackSnorm4x8",
	OpUnpackSnorm4x8: "UnpackSnorm4x8",
	OpPackUnorm4x8: "PackUnorm4x8",
	OpUnpackUnorm4x8: "UnpackUnorm4x8",
	OpPackHalf2x16: "PackHalf2x16",
	OpUnpackHalf2x16: "UnpackHalf2x16",
	OpPackDouble2x32: "PackDouble2x32",
	OpUnpackDouble2x32: "UnpackDouble2x32",
	OpPackInt2x32: "PackInt2x32",
	OpUnpackInt2x32: "UnpackInt2x32",
	OpPackUint2x32: "PackUint2x32",
	OpUnpackUint2x32: "UnpackUint2x32",
	OpPackFloat2x16: "PackFloat2x16",
	OpUnpackFloat2x16: "UnpackFloat2x16",
	OpPackInt2x16: "PackInt2x16",
	OpUnpackInt2x16: "UnpackInt2x16",
	OpPackUint2x16: "PackUint2x16",
	OpUnpackUint2x16: "UnpackUint2x16",
	OpPackInt4x16: "PackInt4x16",
	OpUnpackInt4x16: "UnpackInt4x16",
	OpPackUint4x16: "PackUint4x16",
	OpUnpackUint4x16: "UnpackUint4x16",
	OpPack16: "Pack16",
	OpPack32: "Pack32",
	OpPack64: "Pack64",
	OpUnpack32: "Unpack32",
	OpUnpack16: "Unpack16",
	OpUnpack8: "Unpack8",
	OpLength: "Length",
	OpDistance: "Distance",
	OpDot: "Dot",
	OpCross: "Cross",
	OpNormalize: "Normalize",
	OpFaceForward: "FaceForward",
	OpReflect: "Reflect",
	OpRefract: "Refract",
	OpMin3: "Min3",
	OpMax3: "Max3",
	OpMid3: "Mid3",
	OpDPdx: "DPdx",
	OpDPdy: "DPdy",
	OpFwidth: "Fwidth",
	OpDPdxFine: "DPdxFine",
	OpDPdyFine: "DPdyFine",
	OpFwidthFine: "FwidthFine",
	OpDPdxCoarse: "DPdxCoarse",
	OpDPdyCoarse: "DPdyCoarse",
	OpFwidthCoarse: "FwidthCoarse",
	OpInterpolateAtCentroid: "InterpolateAtCentroid",
	OpInterpolateAtSample: "InterpolateAtSample",
	OpInterpolateAtOffset: "InterpolateAtOffset",
	OpInterpolateAtVertex: "InterpolateAtVertex",
	OpOuterProduct: "OuterProduct",
	OpDeterminant: "Determinant",
	OpMatrixInverse: "MatrixInverse",
	OpTranspose: "Transpose",
	OpFtransform: "Ftransform",
	OpEmitVertex: "EmitVertex",
	OpEndPrimitive: "EndPrimitive",
	OpEmitStreamVertex: "EmitStreamVertex",
	OpEndStreamPrimitive: "EndStreamPrimitive",
	OpBarrier: "Barrier",
	OpMemoryBarrier: "MemoryBarrier",
	OpMemoryBarrierAtomicCounter: "MemoryBarrierAtomicCounter",
	OpMemoryBarrierBuffer: "MemoryBarrierBuffer",
	OpMemoryBarrierImage: "MemoryBarrierImage",
	OpMemoryBarrierShared: "MemoryBarrierShared",
	OpGroupMemoryBarrier: "GroupMemoryBarrier",
	OpBallot: "Ballot",
	OpReadInvocation: "ReadInvocation",
	OpReadFirstInvocation: "ReadFirstInvocation",
	OpAnyInvocation: "AnyInvocation",
	OpAllInvocations: "AllInvocations",
	OpAllInvocationsEqual: "AllInvocationsEqual",
	OpSubgroupBarrier: "SubgroupBarrier",
	OpSubgroupMemoryBarrier: "SubgroupMemoryBarrier",
	OpSubgroupMemoryBarrierBuffer: "SubgroupMemoryBarrierBuffer",
	OpSubgroupMemoryBarrierImage: "SubgroupMemoryBarrierImage",
	OpSubgroupMemoryBarrierShared: "SubgroupMemoryBarrierShared",
	OpSubgroupElect: "SubgroupElect",
	OpSubgroupAll: "SubgroupAll",
	OpSubgroupAny: "SubgroupAny",
	OpSubgroupAllEqual: "SubgroupAllEqual",
	OpSubgroupBroadcast: "SubgroupBroadcast",
	OpSubgroupBroadcastFirst: "SubgroupBroadcastFirst",
	OpSubgroupBallot: "SubgroupBallot",
	OpSubgroupInverseBallot: "SubgroupInverseBallot",
	OpSubgroupBallotBitExtract: "SubgroupBallotBitExtract",
	OpSubgroupBallotBitCount: "SubgroupBallotBitCount",
	OpSubgroupBallotInclusiveBitCount: "SubgroupBallotInclusiveBitCount",
	OpSubgroupBallotExclusiveBitCount: "SubgroupBallotExclusiveBitCount",
	OpSubgroupBallotFindLSB: "SubgroupBallotFindLSB",
	OpSubgroupBallotFindMSB: "SubgroupBallotFindMSB",
	OpSubgroupShuffle: "SubgroupShuffle",
	OpSubgroupShuffleXor: "SubgroupShuffleXor",
	OpSubgroupShuffleUp: "SubgroupShuffleUp",
	OpSubgroupShuffleDown: "SubgroupShuffleDown",
	OpSubgroupAdd: "SubgroupAdd",
	OpSubgroupMul: "SubgroupMul",
	OpSubgroupMin: "SubgroupMin",
	OpSubgroupMax: "SubgroupMax",
	OpSubgroupAnd: "SubgroupAnd",
	OpSubgroupOr: "SubgroupOr",
	OpSubgroupXor: "SubgroupXor",
	OpSubgroupInclusiveAdd: "SubgroupInclusiveAdd",
	OpSubgroupInclusiveMul: "SubgroupInclusiveMul",
	OpSubgroupInclusiveMin: "SubgroupInclusiveMin",
	OpSubgroupInclusiveMax: "SubgroupInclusiveMax",
	OpSubgroupInclusiveAnd: "SubgroupInclusiveAnd",
	OpSubgroupInclusiveOr: "SubgroupInclusiveOr",
	OpSubgroupInclusiveXor: "SubgroupInclusiveXor",
	OpSubgroupExclusiveAdd: "SubgroupExclusiveAdd",
	OpSubgroupExclusiveMul: "SubgroupExclusiveMul",
	OpSubgroupExclusiveMin: "SubgroupExclusiveMin",
	OpSubgroupExclusiveMax: "SubgroupExclusiveMax",
	OpSubgroupExclusiveAnd: "SubgroupExclusiveAnd",
	OpSubgroupExclusiveOr: "SubgroupExclusiveOr",
	OpSubgroupExclusiveXor: "SubgroupExclusiveXor",
	OpSubgroupClusteredAdd: "SubgroupClusteredAdd",
	OpSubgroupClusteredMul: "SubgroupClusteredMul",
	OpSubgroupClusteredMin: "SubgroupClusteredMin",
	OpSubgroupClusteredMax: "SubgroupClusteredMax",
	OpSubgroupClusteredAnd: "SubgroupClusteredAnd",
	OpSubgroupClusteredOr: "SubgroupClusteredOr",
	OpSubgroupClusteredXor: "SubgroupClusteredXor",
	OpSubgroupQuadBroadcast: "SubgroupQuadBroadcast",
	OpSubgroupQuadSwapHorizontal: "SubgroupQuadSwapHorizontal",
	OpSubgroupQuadSwapVertical: "SubgroupQuadSwapVertical",
	OpSubgroupQuadSwapDiagonal: "SubgroupQuadSwapDiagonal",
	OpSubgroupPartition: "SubgroupPartition",
	OpSubgroupPartitionedAdd: "SubgroupPartitionedAdd",
	OpSubgroupPartitionedMul: "SubgroupPartitionedMul",
	OpSubgroupPartitionedMin: "SubgroupPartitionedMin",
	OpSubgroupPartitionedMax: "SubgroupPartitionedMax",
	OpSubgroupPartitionedAnd: "SubgroupPartitionedAnd",
	OpSubgroupPartitionedOr: "SubgroupPartitionedOr",
	OpSubgroupPartitionedXor: "SubgroupPartitionedXor",
	OpSubgroupPartitionedInclusiveAdd: "SubgroupPartitionedInclusiveAdd",
	OpSubgroupPartitionedInclusiveMul: "SubgroupPartitionedInclusiveMul",
	OpSubgroupPartitionedInclusiveMin: "SubgroupPartitionedInclusiveMin",
	OpSubgroupPartitionedInclusiveMax: "SubgroupPartitionedInclusiveMax",
	OpSubgroupPartitionedInclusiveAnd: "SubgroupPartitionedInclusiveAnd",
	OpSubgroupPartitionedInclusiveOr: "SubgroupPartitionedInclusiveOr",
	OpSubgroupPartitionedInclusiveXor: "SubgroupPartitionedInclusiveXor",
	OpSubgroupPartitionedExclusiveAdd: "SubgroupPartitionedExclusiveAdd",
	OpSubgroupPartitionedExclusiveMul: "SubgroupPartitionedExclusiveMul",
	OpSubgroupPartitionedExclusiveMin: "SubgroupPartitionedExclusiveMin",
	OpSubgroupPartitionedExclusiveMax: "SubgroupPartitionedExclusiveMax",
	OpSubgroupPartitionedExclusiveAnd: "SubgroupPartitionedExclusiveAnd",
	OpSubgroupPartitionedExclusiveOr: "SubgroupPartitionedExclusiveOr",
	OpSubgroupPartitionedExclusiveXor: "SubgroupPartitionedExclusiveXor",
	OpMinInvocations: "MinInvocations",
	OpMaxInvocations: "MaxInvocations",
	OpAddInvocations: "AddInvocations",
	OpMinInvocationsNonUniform: "MinInvocationsNonUniform",
	OpMaxInvocationsNonUniform: "MaxInvocationsNonUniform",
	OpAddInvocationsNonUniform: "AddInvocationsNonUniform",
	OpMinInvocationsInclusiveScan: "MinInvocationsInclusiveScan",
	OpMaxInvocationsInclusiveScan: "MaxInvocationsInclusiveScan",
	OpAddInvocationsInclusiveScan: "AddInvocationsInclusiveScan",
	OpMinInvocationsInclusiveScanNonUniform: "MinInvocationsInclusiveScanNonUniform",
	OpMaxInvocationsInclusiveScanNonUniform: "MaxInvocationsInclusiveScanNonUniform",
	OpAddInvocationsInclusiveScanNonUniform: "AddInvocationsInclusiveScanNonUniform",
	OpMinInvocationsExclusiveScan: "MinInvocationsExclusiveScan",
	OpMaxInvocationsExclusiveScan: "MaxInvocationsExclusiveScan",
	OpAddInvocationsExclusiveScan: "AddInvocationsExclusiveScan",
	OpMinInvocationsExclusiveScanNonUniform: "MinInvocationsExclusiveScanNonUniform",
	OpMaxInvocationsExclusiveScanNonUniform: "MaxInvocationsExclusiveScanNonUniform",
	OpAddInvocationsExclusiveScanNonUniform: "AddInvocationsExclusiveScanNonUniform",
	OpSwizzleInvocations: "SwizzleInvocations",
	OpSwizzleInvocationsMasked: "SwizzleInvocationsMasked",
	OpWriteInvocation: "WriteInvocation",
	OpMbcnt: "Mbcnt",
	OpCubeFaceIndex: "CubeFaceIndex",
	OpCubeFaceCoord: "CubeFaceCoord",
	OpTime: "Time",
	OpAtomicAdd: "AtomicAdd",
	OpAtomicMin: "AtomicMin",
	OpAtomicMax: "AtomicMax",
	OpAtomicAnd: "AtomicAnd",
	OpAtomicOr: "AtomicOr",
	OpAtomicXor: "AtomicXor",
	OpAtomicExchange: "AtomicExchange",
	OpAtomicCompSwap: "AtomicCompSwap",
	OpAtomicLoad: "AtomicLoad",
	OpAtomicStore: "AtomicStore",
	OpAtomicCounterIncrement: "AtomicCounterIncrement",
	OpAtomicCounterDecrement: "AtomicCounterDecrement",
	OpAtomicCounter: "AtomicCounter",
	OpAtomicCounterAdd: "AtomicCounterAdd",
	OpAtomicCounterSubtract: "AtomicCounterSubtract",
	OpAtomicCounterMin: "AtomicCounterMin",
	OpAtomicCounterMax: "AtomicCounterMax",
	OpAtomicCounterAnd: "AtomicCounterAnd",
	OpAtomicCounterOr: "AtomicCounterOr",
	OpAtomicCounterXor: "AtomicCounterXor",
	OpAtomicCounterExchange: "AtomicCounterExchange",
	OpAtomicCounterCompSwap: "AtomicCounterCompSwap",
	OpAny: "Any",
	OpAll: "All",
	OpCooperativeMatrixLoad: "CooperativeMatrixLoad",
	OpCooperativeMatrixStore: "CooperativeMatrixStore",
	OpCooperativeMatrixMulAdd: "CooperativeMatrixMulAdd",
	OpCooperativeMatrixLoadNV: "CooperativeMatrixLoadNV",
	OpCooperativeMatrixStoreNV: "CooperativeMatrixStoreNV",
	OpCooperativeMatrixMulAddNV: "CooperativeMatrixMulAddNV",
	OpBeginInvocationInterlock: "BeginInvocationInterlock",
	OpEndInvocationInterlock: "EndInvocationInterlock",
	OpIsHelperInvocation: "IsHelperInvocation",
	OpDebugPrintf: "DebugPrintf",
	OpConstructInt: "ConstructInt",
	OpConstructUint: "ConstructUint",
	OpConstructInt8: "ConstructInt8",
	OpConstructUint8: "ConstructUint8",
	OpConstructInt16: "ConstructInt16",
	OpConstructUint16: "ConstructUint16",
	OpConstructInt64: "ConstructInt64",
	OpConstructUint64: "ConstructUint64",
	OpConstructBool: "ConstructBool",
	OpConstructFloat: "ConstructFloat",
	OpConstructDouble: "ConstructDouble",
	OpConstructVec2: "ConstructVec2",
	OpConstructVec3: "ConstructVec3",
	OpConstructVec4: "ConstructVec4",
	OpConstructMat2x2: "ConstructMat2x2",
	OpConstructMat2x3: "ConstructMat2x3",
	OpConstructMat2x4: "ConstructMat2x4",
	OpConstructMat3x2: "ConstructMat3x2",
	OpConstructMat3x3: "ConstructMat3x3",
	OpConstructMat3x4: "ConstructMat3x4",
	OpConstructMat4x2: "ConstructMat4x2",
	OpConstructMat4x3: "ConstructMat4x3",
	OpConstructMat4x4: "ConstructMat4x4",
	OpConstructDVec2: "ConstructDVec2",
	OpConstructDVec3: "ConstructDVec3",
	OpConstructDVec4: "ConstructDVec4",
	OpConstructBVec2: "ConstructBVec2",
	OpConstructBVec3: "ConstructBVec3",
	OpConstructBVec4: "ConstructBVec4",
	OpConstructI8Vec2: "ConstructI8Vec2",
	OpConstructI8Vec3: "ConstructI8Vec3",
	OpConstructI8Vec4: "ConstructI8Vec4",
	OpConstructU8Vec2: "ConstructU8Vec2",
	OpConstructU8Vec3: "ConstructU8Vec3",
	OpConstructU8Vec4: "ConstructU8Vec4",
	OpConstructI16Vec2: "ConstructI16Vec2",
	OpConstructI16Vec3: "ConstructI16Vec3",
	OpConstructI16Vec4: "ConstructI16Vec4",
	OpConstructU16Vec2: "ConstructU16Vec2",
	OpConstructU16Vec3: "ConstructU16Vec3",
	OpConstructU16Vec4: "ConstructU16Vec4",
	OpConstructIVec2: "ConstructIVec2",
	OpConstructIVec3: "ConstructIVec3",
	OpConstructIVec4: "ConstructIVec4",
	OpConstructUVec2: "ConstructUVec2",
	OpConstructUVec3: "ConstructUVec3",
	OpConstructUVec4: "ConstructUVec4",
	OpConstructI64Vec2: "ConstructI64Vec2",
	OpConstructI64Vec3: "ConstructI64Vec3",
	OpConstructI64Vec4: "ConstructI64Vec4",
	OpConstructU64Vec2: "ConstructU64Vec2",
	OpConstructU64Vec3: "ConstructU64Vec3",
	OpConstructU64Vec4: "ConstructU64Vec4",
	OpConstructDMat2x2: "ConstructDMat2x2",
	OpConstructDMat2x3: "ConstructDMat2x3",
	OpConstructDMat2x4: "ConstructDMat2x4",
	OpConstructDMat3x2: "ConstructDMat3x2",
	OpConstructDMat3x3: "ConstructDMat3x3",
	OpConstructDMat3x4: "ConstructDMat3x4",
	OpConstructDMat4x2: "ConstructDMat4x2",
	OpConstructDMat4x3: "ConstructDMat4x3",
	OpConstructDMat4x4: "ConstructDMat4x4",
	OpConstructIMat2x2: "ConstructIMat2x2",
	OpConstructIMat2x3: "ConstructIMat2x3",
	OpConstructIMat2x4: "ConstructIMat2x4",
	OpConstructIMat3x2: "ConstructIMat3x2",
	OpConstructIMat3x3: "ConstructIMat3x3",
	OpConstructIMat3x4: "ConstructIMat3x4",
	OpConstructIMat4x2: "ConstructIMat4x2",
	OpConstructIMat4x3: "ConstructIMat4x3",
	OpConstructIMat4x4: "ConstructIMat4x4",
	OpConstructUMat2x2: "ConstructUMat2x2",
	OpConstructUMat2x3: "ConstructUMat2x3",
	OpConstructUMat2x4: "ConstructUMat2x4",
	OpConstructUMat3x2: "ConstructUMat3x2",
	OpConstructUMat3x3: "ConstructUMat3x3",
	OpConstructUMat3x4: "ConstructUMat3x4",
	OpConstructUMat4x2: "ConstructUMat4x2",
	OpConstructUMat4x3: "ConstructUMat4x3",
	OpConstructUMat4x4: "ConstructUMat4x4",
	OpConstructBMat2x2: "ConstructBMat2x2",
	OpConstructBMat2x3: "ConstructBMat2x3",
	OpConstructBMat2x4: "ConstructBMat2x4",
	OpConstructBMat3x2: "ConstructBMat3x2",
	OpConstructBMat3x3: "ConstructBMat3x3",
	OpConstructBMat3x4: "ConstructBMat3x4",
	OpConstructBMat4x2: "ConstructBMat4x2",
	OpConstructBMat4x3: "ConstructBMat4x3",
	OpConstructBMat4x4: "ConstructBMat4x4",
	OpConstructFloat16: "ConstructFloat16",
	OpConstructF16Vec2: "ConstructF16Vec2",
	OpConstructF16Vec3: "ConstructF16Vec3",
	OpConstructF16Vec4: "ConstructF16Vec4",
	OpConstructF16Mat2x2: "ConstructF16Mat2x2",
	OpConstructF16Mat2x3: "ConstructF16Mat2x3",
	OpConstructF16Mat2x4: "ConstructF16Mat2x4",
	OpConstructF16Mat3x2: "ConstructF16Mat3x2",
	OpConstructF16Mat3x3: "ConstructF16Mat3x3",
	OpConstructF16Mat3x4: "ConstructF16Mat3x4",
	OpConstructF16Mat4x2: "ConstructF16Mat4x2",
	OpConstructF16Mat4x3: "ConstructF16Mat4x3",
	OpConstructF16Mat4x4: "ConstructF16Mat4x4",
	OpConstructStruct: "ConstructStruct",
	OpConstructTextureSampler: "ConstructTextureSampler",
	OpConstructNonuniform: "ConstructNonuniform",
	OpConstructReference: "ConstructReference",
	OpConstructCooperativeMatrixNV: "ConstructCooperativeMatrixNV",
	OpConstructCooperativeMatrixKHR: "ConstructCooperativeMatrixKHR",
	OpAssign: "Assign",
	OpAddAssign: "AddAssign",
	OpSubAssign: "SubAssign",
	OpMulAssign: "MulAssign",
	OpVectorTimesMatrixAssign: "VectorTimesMatrixAssign",
	OpVectorTimesScalarAssign: "VectorTimesScalarAssign",
	OpMatrixTimesScalarAssign: "MatrixTimesScalarAssign",
	OpMatrixTimesMatrixAssign: "MatrixTimesMatrixAssign",
	OpDivAssign: "DivAssign",
	OpModAssign: "ModAssign",
	OpAndAssign: "AndAssign",
	OpInclusiveOrAssign: "InclusiveOrAssign",
	OpExclusiveOrAssign: "ExclusiveOrAssign",
	OpLeftShiftAssign: "LeftShiftAssign",
	OpRightShiftAssign: "RightShiftAssign",
	OpArrayLength: "ArrayLength",
	OpImageQuerySize: "ImageQuerySize",
	OpImageQuerySamples: "ImageQuerySamples",
	OpImageLoad: "ImageLoad",
	OpImageStore: "ImageStore",
	OpImageLoadLod: "ImageLoadLod",
	OpImageStoreLod: "ImageStoreLod",
	OpImageAtomicAdd: "ImageAtomicAdd",
	OpImageAtomicMin: "ImageAtomicMin",
	OpImageAtomicMax: "ImageAtomicMax",
	OpImageAtomicAnd: "ImageAtomicAnd",
	OpImageAtomicOr: "ImageAtomicOr",
	OpImageAtomicXor: "ImageAtomicXor",
	OpImageAtomicExchange: "ImageAtomicExchange",
	OpImageAtomicCompSwap: "ImageAtomicCompSwap",
	OpImageAtomicLoad: "ImageAtomicLoad",
	OpImageAtomicStore: "ImageAtomicStore",
	OpSubpassLoad: "SubpassLoad",
	OpSubpassLoadMS: "SubpassLoadMS",
	OpSparseImageLoad: "SparseImageLoad",
	OpSparseImageLoadLod: "SparseImageLoadLod",
	OpColorAttachmentReadEXT: "ColorAttachmentReadEXT",
	OpTextureQuerySize: "TextureQuerySize",
	OpTextureQueryLod: "TextureQueryLod",
	OpTextureQueryLevels: "TextureQueryLevels",
	OpTextureQuerySamples: "TextureQuerySamples",
	OpTexture: "Texture",
	OpTextureProj: "TextureProj",
	OpTextureLod: "TextureLod",
	OpTextureOffset: "TextureOffset",
	OpTextureFetch: "TextureFetch",
	OpTextureFetchOffset: "TextureFetchOffset",
	OpTextureProjOffset: "TextureProjOffset",
	OpTextureLodOffset: "TextureLodOffset",
	OpTextureProjLod: "TextureProjLod",
	OpTextureProjLodOffset: "TextureProjLodOffset",
	OpTextureGrad: "TextureGrad",
	OpTextureGradOffset: "TextureGradOffset",
	OpTextureProjGrad: "TextureProjGrad",
	OpTextureProjGradOffset: "TextureProjGradOffset",
	OpTextureGather: "TextureGather",
	OpTextureGatherOffset: "TextureGatherOffset",
	OpTextureGatherOffsets: "TextureGatherOffsets",
	OpTextureClamp: "TextureClamp",
	OpTextureOffsetClamp: "TextureOffsetClamp",
	OpTextureGradClamp: "TextureGradClamp",
	OpTextureGradOffsetClamp: "TextureGradOffsetClamp",
	OpTextureGatherLod: "TextureGatherLod",
	OpTextureGatherLodOffset: "TextureGatherLodOffset",
	OpTextureGatherLodOffsets: "TextureGatherLodOffsets",
	OpFragmentMaskFetch: "FragmentMaskFetch",
	OpFragmentFetch: "FragmentFetch",
	OpSparseTexture: "SparseTexture",
	OpSparseTextureLod: "SparseTextureLod",
	OpSparseTextureOffset: "SparseTextureOffset",
	OpSparseTextureFetch: "SparseTextureFetch",
	OpSparseTextureFetchOffset: "SparseTextureFetchOffset",
	OpSparseTextureLodOffset: "SparseTextureLodOffset",
	OpSparseTextureGrad: "SparseTextureGrad",
	OpSparseTextureGradOffset: "SparseTextureGradOffset",
	OpSparseTextureGather: "SparseTextureGather",
	OpSparseTextureGatherOffset: "SparseTextureGatherOffset",
	OpSparseTextureGatherOffsets: "SparseTextureGatherOffsets",
	OpSparseTexelsResident: "SparseTexelsResident",
	OpSparseTextureClamp: "SparseTextureClamp",
	OpSparseTextureOffsetClamp: "SparseTextureOffsetClamp",
	OpSparseTextureGradClamp: "SparseTextureGradClamp",
	OpSparseTextureGradOffsetClamp: "SparseTextureGradOffsetClamp",
	OpSparseTextureGatherLod: "SparseTextureGatherLod",
	OpSparseTextureGatherLodOffset: "SparseTextureGatherLodOffset",
	OpSparseTextureGatherLodOffsets: "SparseTextureGatherLodOffsets",
	OpImageSampleFootprintNV: "ImageSampleFootprintNV",
	OpImageSampleFootprintClampNV: "ImageSampleFootprintClampNV",
	OpImageSampleFootprintLodNV: "ImageSampleFootprintLodNV",
	OpImageSampleFootprintGradNV: "ImageSampleFootprintGradNV",
	OpImageSampleFootprintGradClampNV: "ImageSampleFootprintGradClampNV",
	OpAddCarry: "AddCarry",
	OpSubBorrow: "SubBorrow",
	OpUMulExtended: "UMulExtended",
	OpIMulExtended: "IMulExtended",
	OpBitfieldExtract: "BitfieldExtract",
	OpBitfieldInsert: "BitfieldInsert",
	OpBitFieldReverse: "BitFieldReverse",
	OpBitCount: "BitCount",
	OpFindLSB: "FindLSB",
	OpFindMSB: "FindMSB",
	OpCountLeadingZeros: "CountLeadingZeros",
	OpCountTrailingZeros: "CountTrailingZeros",
	OpAbsDifference: "AbsDifference",
	OpAddSaturate: "AddSaturate",
	OpSubSaturate: "SubSaturate",
	OpAverage: "Average",
	OpAverageRounded: "AverageRounded",
	OpMul32x16: "Mul32x16",
	OpTraceNV: "TraceNV",
	OpTraceRayMotionNV: "TraceRayMotionNV",
	OpTraceKHR: "TraceKHR",
	OpReportIntersection: "ReportIntersection",
	OpIgnoreIntersectionNV: "IgnoreIntersectionNV",
	OpTerminateRayNV: "TerminateRayNV",
	OpExecuteCallableNV: "ExecuteCallableNV",
	OpExecuteCallableKHR: "ExecuteCallableKHR",
	OpWritePackedPrimitiveIndices4x8NV: "WritePackedPrimitiveIndices4x8NV",
	OpEmitMeshTasksEXT: "EmitMeshTasksEXT",
	OpSetMeshOutputsEXT: "SetMeshOutputsEXT",
	OpRayQueryInitialize: "RayQueryInitialize",
	OpRayQueryTerminate: "RayQueryTerminate",
	OpRayQueryGenerateIntersection: "RayQueryGenerateIntersection",
	OpRayQueryConfirmIntersection: "RayQueryConfirmIntersection",
	OpRayQueryProceed: "RayQueryProceed",
	OpRayQueryGetIntersectionType: "RayQueryGetIntersectionType",
	OpRayQueryGetRayTMin: "RayQueryGetRayTMin",
	OpRayQueryGetRayFlags: "RayQueryGetRayFlags",
	OpRayQueryGetIntersectionT: "RayQueryGetIntersectionT",
	OpRayQueryGetIntersectionInstanceCustomIndex: "RayQueryGetIntersectionInstanceCustomIndex",
	OpRayQueryGetIntersectionInstanceId: "RayQueryGetIntersectionInstanceId",
	OpRayQueryGetIntersectionInstanceShaderBindingTableRecordOffset: "RayQueryGetIntersectionInstanceShaderBindingTableRecordOffset",
	OpRayQueryGetIntersectionGeometryIndex: "RayQueryGetIntersectionGeometryIndex",
	OpRayQueryGetIntersectionPrimitiveIndex: "RayQueryGetIntersectionPrimitiveIndex",
	OpRayQueryGetIntersectionBarycentrics: "RayQueryGetIntersectionBarycentrics",
	OpRayQueryGetIntersectionFrontFace: "RayQueryGetIntersectionFrontFace",
	OpRayQueryGetIntersectionCandidateAABBOpaque: "RayQueryGetIntersectionCandidateAABBOpaque",
	OpRayQueryGetIntersectionObjectRayDirection: "RayQueryGetIntersectionObjectRayDirection",
	OpRayQueryGetIntersectionObjectRayOrigin: "RayQueryGetIntersectionObjectRayOrigin",
	OpRayQueryGetWorldRayDirection: "RayQueryGetWorldRayDirection",
	OpRayQueryGetWorldRayOrigin: "RayQueryGetWorldRayOrigin",
	OpRayQueryGetIntersectionObjectToWorld: "RayQueryGetIntersectionObjectToWorld",
	OpRayQueryGetIntersectionWorldToObject: "RayQueryGetIntersectionWorldToObject",
	OpHitObjectTraceRayNV: "HitObjectTraceRayNV",
	OpHitObjectTraceRayMotionNV: "HitObjectTraceRayMotionNV",
	OpHitObjectRecordHitNV: "HitObjectRecordHitNV",
	OpHitObjectRecordHitMotionNV: "HitObjectRecordHitMotionNV",
	OpHitObjectRecordHitWithIndexNV: "HitObjectRecordHitWithIndexNV",
	OpHitObjectRecordHitWithIndexMotionNV: "HitObjectRecordHitWithIndexMotionNV",
	OpHitObjectRecordMissNV: "HitObjectRecordMissNV",
	OpHitObjectRecordMissMotionNV: "HitObjectRecordMissMotionNV",
	OpHitObjectRecordEmptyNV: "HitObjectRecordEmptyNV",
	OpHitObjectExecuteShaderNV: "HitObjectExecuteShaderNV",
	OpHitObjectIsEmptyNV: "HitObjectIsEmptyNV",
	OpHitObjectIsMissNV: "HitObjectIsMissNV",
	OpHitObjectIsHitNV: "HitObjectIsHitNV",
	OpHitObjectGetRayTMinNV: "HitObjectGetRayTMinNV",
	OpHitObjectGetRayTMaxNV: "HitObjectGetRayTMaxNV",
	OpHitObjectGetObjectRayOriginNV: "HitObjectGetObjectRayOriginNV",
	OpHitObjectGetObjectRayDirectionNV: "HitObjectGetObjectRayDirectionNV",
	OpHitObjectGetWorldRayOriginNV: "HitObjectGetWorldRayOriginNV",
	OpHitObjectGetWorldRayDirectionNV: "HitObjectGetWorldRayDirectionNV",
	OpHitObjectGetWorldToObjectNV: "HitObjectGetWorldToObjectNV",
	OpHitObjectGetObjectToWorldNV: "HitObjectGetObjectToWorldNV",
	OpHitObjectGetInstanceCustomIndexNV: "HitObjectGetInstanceCustomIndexNV",
	OpHitObjectGetInstanceIdNV: "HitObjectGetInstanceIdNV",
	OpHitObjectGetGeometryIndexNV: "HitObjectGetGeometryIndexNV",
	OpHitObjectGetPrimitiveIndexNV: "HitObjectGetPrimitiveIndexNV",
	OpHitObjectGetHitKindNV: "HitObjectGetHitKindNV",
	OpHitObjectGetShaderBindingTableRecordIndexNV: "HitObjectGetShaderBindingTableRecordIndexNV",
	OpHitObjectGetShaderRecordBufferHandleNV: "HitObjectGetShaderRecordBufferHandleNV",
	OpHitObjectGetAttributesNV: "HitObjectGetAttributesNV",
	OpHitObjectGetCurrentTimeNV: "HitObjectGetCurrentTimeNV",
	OpReorderThreadNV: "ReorderThreadNV",
	OpFetchMicroTriangleVertexPositionNV: "FetchMicroTriangleVertexPositionNV",
	OpFetchMicroTriangleVertexBarycentricNV: "FetchMicroTriangleVertexBarycentricNV",
	OpReadClockSubgroupKHR: "ReadClockSubgroupKHR",
	OpReadClockDeviceKHR: "ReadClockDeviceKHR",
	OpRayQueryGetIntersectionTriangleVertexPositionsEXT: "RayQueryGetIntersectionTriangleVertexPositionsEXT",
	OpStencilAttachmentReadEXT: "StencilAttachmentReadEXT",
	OpDepthAttachmentReadEXT: "DepthAttachmentReadEXT",
	OpImageSampleWeightedQCOM: "ImageSampleWeightedQCOM",
	OpImageBoxFilterQCOM: "ImageBoxFilterQCOM",
	OpImageBlockMatchSADQCOM: "ImageBlockMatchSADQCOM",
	OpImageBlockMatchSSDQCOM: "ImageBlockMatchSSDQCOM",
}

// String returns the front end's name for the operator.
func (op Operator) String() string {
	if int(op) < len(operatorNames) && operatorNames[op] != "" {
		return operatorNames[op]
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

var operatorsByName = sync.OnceValue(func() map[string]Operator {
	m := make(map[string]Operator, len(operatorNames))
	for op, name := range operatorNames {
		if name != "" {
			m[name] = Operator(op)
		}
	}
	return m
})

// OperatorByName resolves the front end's spelling of an operator.
func OperatorByName(name string) (Operator, bool) {
	op, ok := operatorsByName()[name]
	return op, ok
}
