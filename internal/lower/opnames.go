package lower

import (
	"glslpack/internal/ast"
	"glslpack/internal/pack"
)

// Mapping tables from the front end's operator space to canonical
// operator tags and builtin function names. This is pure data; the only
// real logic lives in operator.go (texture naming, version gates,
// constructor array suffixes).

// rvalueOperatorTags maps language operators onto the closed tag set.
// All compound-assignment forms collapse to their base tag and the
// vector/matrix multiply variants collapse to Mul; direct and indirect
// indexing share one tag.
var rvalueOperatorTags = map[ast.Operator]pack.RValueOperator{
	ast.OpNegative: pack.OpNegative,
	ast.OpLogicalNot: pack.OpLogicalNot,
	ast.OpBitwiseNot: pack.OpBitwiseNot,
	ast.OpPostIncrement: pack.OpPostIncrement,
	ast.OpPostDecrement: pack.OpPostDecrement,
	ast.OpPreIncrement: pack.OpPreIncrement,
	ast.OpPreDecrement: pack.OpPreDecrement,
	ast.OpAdd: pack.OpAdd,
	ast.OpSub: pack.OpSub,
	ast.OpMul: pack.OpMul,
	ast.OpVectorTimesScalar: pack.OpMul,
	ast.OpVectorTimesMatrix: pack.OpMul,
	ast.OpMatrixTimesVector: pack.OpMul,
	ast.OpMatrixTimesScalar: pack.OpMul,
	ast.OpDiv: pack.OpDiv,
	ast.OpMod: pack.OpMod,
	ast.OpRightShift: pack.OpRightShift,
	ast.OpLeftShift: pack.OpLeftShift,
	ast.OpAnd: pack.OpAnd,
	ast.OpInclusiveOr: pack.OpInclusiveOr,
	ast.OpExclusiveOr: pack.OpExclusiveOr,
	ast.OpEqual: pack.OpEqual,
	ast.OpNotEqual: pack.OpNotEqual,
	ast.OpLessThan: pack.OpLessThan,
	ast.OpGreaterThan: pack.OpGreaterThan,
	ast.OpLessThanEqual: pack.OpLessThanEqual,
	ast.OpGreaterThanEqual: pack.OpGreaterThanEqual,
	ast.OpComma: pack.OpComma,
	ast.OpLogicalOr: pack.OpLogicalOr,
	ast.OpLogicalXor: pack.OpLogicalXor,
	ast.OpLogicalAnd: pack.OpLogicalAnd,
	ast.OpIndexDirect: pack.OpIndex,
	ast.OpIndexIndirect: pack.OpIndex,
	ast.OpIndexDirectStruct: pack.OpIndexStruct,
	ast.OpVectorSwizzle: pack.OpVectorSwizzle,
	ast.OpConstructStruct: pack.OpConstructStruct,
	ast.OpAssign: pack.OpAssign,
	ast.OpAddAssign: pack.OpAddAssign,
	ast.OpSubAssign: pack.OpSubAssign,
	ast.OpMulAssign: pack.OpMulAssign,
	ast.OpVectorTimesMatrixAssign: pack.OpMulAssign,
	ast.OpVectorTimesScalarAssign: pack.OpMulAssign,
	ast.OpMatrixTimesScalarAssign: pack.OpMulAssign,
	ast.OpMatrixTimesMatrixAssign: pack.OpMulAssign,
	ast.OpDivAssign: pack.OpDivAssign,
	ast.OpModAssign: pack.OpModAssign,
	ast.OpAndAssign: pack.OpAndAssign,
	ast.OpInclusiveOrAssign: pack.OpInclusiveOrAssign,
	ast.OpExclusiveOrAssign: pack.OpExclusiveOrAssign,
	ast.OpLeftShiftAssign: pack.OpLeftShiftAssign,
	ast.OpRightShiftAssign: pack.OpRightShiftAssign,
	ast.OpArrayLength: pack.OpArrayLength,
}

// builtinFunctionNames maps operators that have no tag onto the literal
// GLSL builtin name, later interned as a function id. Conversion
// operators deliberately share the names of the scalar constructors.
var builtinFunctionNames = map[ast.Operator]string{
	ast.OpVectorLogicalNot: "not",
	ast.OpConvIntToBool: "bool",
	ast.OpConvUintToBool: "bool",
	ast.OpConvFloatToBool: "bool",
	ast.OpConvDoubleToBool: "bool",
	ast.OpConvBoolToInt: "int",
	ast.OpConvUintToInt: "int",
	ast.OpConvFloatToInt: "int",
	ast.OpConvDoubleToInt: "int",
	ast.OpConvBoolToFloat: "float",
	ast.OpConvIntToFloat: "float",
	ast.OpConvUintToFloat: "float",
	ast.OpConvDoubleToFloat: "float",
	ast.OpConvBoolToDouble: "double",
	ast.OpConvIntToDouble: "double",
	ast.OpConvUintToDouble: "double",
	ast.OpConvFloatToDouble: "double",
	ast.OpConvBoolToUint: "uint",
	ast.OpConvIntToUint: "uint",
	ast.OpConvFloatToUint: "uint",
	ast.OpConvDoubleToUint: "uint",
	ast.OpVectorEqual: "equal",
	ast.OpVectorNotEqual: "notEqual",
	ast.OpRadians: "radians",
	ast.OpDegrees: "degrees",
	ast.OpSin: "sin",
	ast.OpCos: "cos",
	ast.OpTan: "tan",
	ast.OpAsin: "asin",
	ast.OpAcos: "acos",
	ast.OpAtan: "atan",
	ast.OpSinh: "sinh",
	ast.OpCosh: "cosh",
	ast.OpTanh: "tanh",
	ast.OpAsinh: "asinh",
	ast.OpAcosh: "acosh",
	ast.OpAtanh: "atanh",
	ast.OpPow: "pow",
	ast.OpExp: "exp",
	ast.OpLog: "log",
	ast.OpExp2: "exp2",
	ast.OpLog2: "log2",
	ast.OpSqrt: "sqrt",
	ast.OpInverseSqrt: "inversesqrt",
	ast.OpAbs: "abs",
	ast.OpSign: "sign",
	ast.OpFloor: "floor",
	ast.OpTrunc: "trunc",
	ast.OpRound: "round",
	ast.OpRoundEven: "roundEven",
	ast.OpCeil: "ceil",
	ast.OpFract: "fract",
	ast.OpModf: "modf",
	ast.OpMin: "min",
	ast.OpMax: "max",
	ast.OpClamp: "clamp",
	ast.OpMix: "mix",
	ast.OpStep: "step",
	ast.OpSmoothStep: "smoothstep",
	ast.OpIsNan: "isnan",
	ast.OpIsInf: "isinf",
	ast.OpFma: "fma",
	ast.OpFrexp: "frexp",
	ast.OpLdexp: "ldexp",
	ast.OpFloatBitsToInt: "floatBitsToInt",
	ast.OpFloatBitsToUint: "floatBitsToUint",
	ast.OpIntBitsToFloat: "intBitsToFloat",
	ast.OpUintBitsToFloat: "uintBitsToFloat",
	ast.OpPackSnorm2x16: "packSnorm2x16",
	ast.OpUnpackSnorm2x16: "unpackSnorm2x16",
	ast.OpPackUnorm2x16: "packUnorm2x16",
	ast.OpUnpackUnorm2x16: "unpackUnorm2x16",
	ast.OpPackSnorm4x8: "packSnorm4x8",
	ast.OpUnpackSnorm4x8: "unpackSnorm4x8",
	ast.OpPackUnorm4x8: "packUnorm4x8",
	ast.OpUnpackUnorm4x8: "unpackUnorm4x8",
	ast.OpPackHalf2x16: "packHalf2x16",
	ast.OpUnpackHalf2x16: "unpackHalf2x16",
	ast.OpPackDouble2x32: "packDouble2x32",
	ast.OpUnpackDouble2x32: "unpackDouble2x32",
	ast.OpPackInt2x32: "packInt2x32",
	ast.OpUnpackInt2x32: "unpackInt2x32",
	ast.OpPackUint2x32: "packUint2x32",
	ast.OpUnpackUint2x32: "unpackUint2x32",
	ast.OpPackFloat2x16: "packFloat2x16",
	ast.OpUnpackFloat2x16: "unpackFloat2x16",
	ast.OpPackInt2x16: "packInt2x16",
	ast.OpUnpackInt2x16: "unpackInt2x16",
	ast.OpPackUint2x16: "packUint2x16",
	ast.OpUnpackUint2x16: "unpackUint2x16",
	ast.OpPackInt4x16: "packInt4x16",
	ast.OpUnpackInt4x16: "unpackInt4x16",
	ast.OpPackUint4x16: "packUint4x16",
	ast.OpUnpackUint4x16: "unpackUint4x16",
	ast.OpPack16: "pack16",
	ast.OpPack32: "pack32",
	ast.OpPack64: "pack64",
	ast.OpUnpack32: "unpack32",
	ast.OpUnpack16: "unpack16",
	ast.OpUnpack8: "unpack8",
	ast.OpLength: "length",
	ast.OpDistance: "distance",
	ast.OpDot: "dot",
	ast.OpCross: "cross",
	ast.OpNormalize: "normalize",
	ast.OpFaceForward: "faceforward",
	ast.OpReflect: "reflect",
	ast.OpRefract: "refract",
	ast.OpMin3: "min3",
	ast.OpMax3: "max3",
	ast.OpMid3: "mid3",
	ast.OpDPdx: "dFdx",
	ast.OpDPdy: "dFdy",
	ast.OpFwidth: "fwidth",
	ast.OpDPdxFine: "dFdxFine",
	ast.OpDPdyFine: "dFdyFine",
	ast.OpFwidthFine: "fwidthFine",
	ast.OpDPdxCoarse: "dFdxCoarse",
	ast.OpDPdyCoarse: "dFdyCoarse",
	ast.OpFwidthCoarse: "fwidthCoarse",
	ast.OpInterpolateAtCentroid: "interpolateAtCentroid",
	ast.OpInterpolateAtSample: "interpolateAtSample",
	ast.OpInterpolateAtOffset: "interpolateAtOffset",
	ast.OpInterpolateAtVertex: "interpolateAtVertexAMD",
	ast.OpOuterProduct: "outerProduct",
	ast.OpDeterminant: "determinant",
	ast.OpMatrixInverse: "inverse",
	ast.OpTranspose: "transpose",
	ast.OpFtransform: "ftransform",
	ast.OpEmitVertex: "EmitVertex",
	ast.OpEndPrimitive: "EndPrimitive",
	ast.OpEmitStreamVertex: "EmitStreamVertex",
	ast.OpEndStreamPrimitive: "EndStreamPrimitive",
	ast.OpBarrier: "barrier",
	ast.OpMemoryBarrier: "memoryBarrier",
	ast.OpMemoryBarrierAtomicCounter: "memoryBarrierAtomicCounter",
	ast.OpMemoryBarrierBuffer: "memoryBarrierBuffer",
	ast.OpMemoryBarrierImage: "memoryBarrierImage",
	ast.OpMemoryBarrierShared: "memoryBarrierShared",
	ast.OpGroupMemoryBarrier: "groupMemoryBarrier",
	ast.OpBallot: "ballotARB",
	ast.OpReadInvocation: "readInvocationARB",
	ast.OpReadFirstInvocation: "readFirstInvocationARB",
	ast.OpSubgroupBarrier: "subgroupBarrier",
	ast.OpSubgroupMemoryBarrier: "subgroupMemoryBarrier",
	ast.OpSubgroupMemoryBarrierBuffer: "subgroupMemoryBarrierBuffer",
	ast.OpSubgroupMemoryBarrierImage: "subgroupMemoryBarrierImage",
	ast.OpSubgroupMemoryBarrierShared: "subgroupMemoryBarrierShared",
	ast.OpSubgroupElect: "subgroupElect",
	ast.OpSubgroupAll: "subgroupAll",
	ast.OpSubgroupAny: "subgroupAny",
	ast.OpSubgroupAllEqual: "subgroupAllEqual",
	ast.OpSubgroupBroadcast: "subgroupBroadcast",
	ast.OpSubgroupBroadcastFirst: "subgroupBroadcastFirst",
	ast.OpSubgroupBallot: "subgroupBallot",
	ast.OpSubgroupInverseBallot: "subgroupInverseBallot",
	ast.OpSubgroupBallotBitExtract: "subgroupBallotBitExtract",
	ast.OpSubgroupBallotBitCount: "subgroupBallotBitCount",
	ast.OpSubgroupBallotInclusiveBitCount: "subgroupBallotInclusiveBitCount",
	ast.OpSubgroupBallotExclusiveBitCount: "subgroupBallotExclusiveBitCount",
	ast.OpSubgroupBallotFindLSB: "subgroupBallotFindLSB",
	ast.OpSubgroupBallotFindMSB: "subgroupBallotFindMSB",
	ast.OpSubgroupShuffle: "subgroupShuffle",
	ast.OpSubgroupShuffleXor: "subgroupShuffleXor",
	ast.OpSubgroupShuffleUp: "subgroupShuffleUp",
	ast.OpSubgroupShuffleDown: "subgroupShuffleDown",
	ast.OpSubgroupAdd: "subgroupAdd",
	ast.OpSubgroupMul: "subgroupMul",
	ast.OpSubgroupMin: "subgroupMin",
	ast.OpSubgroupMax: "subgroupMax",
	ast.OpSubgroupAnd: "subgroupAnd",
	ast.OpSubgroupOr: "subgroupOr",
	ast.OpSubgroupXor: "subgroupXor",
	ast.OpSubgroupInclusiveAdd: "subgroupInclusiveAdd",
	ast.OpSubgroupInclusiveMul: "subgroupInclusiveMul",
	ast.OpSubgroupInclusiveMin: "subgroupInclusiveMin",
	ast.OpSubgroupInclusiveMax: "subgroupInclusiveMax",
	ast.OpSubgroupInclusiveAnd: "subgroupInclusiveAnd",
	ast.OpSubgroupInclusiveOr: "subgroupInclusiveOr",
	ast.OpSubgroupInclusiveXor: "subgroupInclusiveXor",
	ast.OpSubgroupExclusiveAdd: "subgroupExclusiveAdd",
	ast.OpSubgroupExclusiveMul: "subgroupExclusiveMul",
	ast.OpSubgroupExclusiveMin: "subgroupExclusiveMin",
	ast.OpSubgroupExclusiveMax: "subgroupExclusiveMax",
	ast.OpSubgroupExclusiveAnd: "subgroupExclusiveAnd",
	ast.OpSubgroupExclusiveOr: "subgroupExclusiveOr",
	ast.OpSubgroupExclusiveXor: "subgroupExclusiveXor",
	ast.OpSubgroupClusteredAdd: "subgroupClusteredAdd",
	ast.OpSubgroupClusteredMul: "subgroupClusteredMul",
	ast.OpSubgroupClusteredMin: "subgroupClusteredMin",
	ast.OpSubgroupClusteredMax: "subgroupClusteredMax",
	ast.OpSubgroupClusteredAnd: "subgroupClusteredAnd",
	ast.OpSubgroupClusteredOr: "subgroupClusteredOr",
	ast.OpSubgroupClusteredXor: "subgroupClusteredXor",
	ast.OpSubgroupQuadBroadcast: "subgroupQuadBroadcast",
	ast.OpSubgroupQuadSwapHorizontal: "subgroupQuadSwapHorizontal",
	ast.OpSubgroupQuadSwapVertical: "subgroupQuadSwapVertical",
	ast.OpSubgroupQuadSwapDiagonal: "subgroupQuadSwapDiagonal",
	ast.OpSubgroupPartition: "subgroupPartitionNV",
	ast.OpSubgroupPartitionedAdd: "subgroupPartitionedAddNV",
	ast.OpSubgroupPartitionedMul: "subgroupPartitionedMulNV",
	ast.OpSubgroupPartitionedMin: "subgroupPartitionedMinNV",
	ast.OpSubgroupPartitionedMax: "subgroupPartitionedMaxNV",
	ast.OpSubgroupPartitionedAnd: "subgroupPartitionedAndNV",
	ast.OpSubgroupPartitionedOr: "subgroupPartitionedOrNV",
	ast.OpSubgroupPartitionedXor: "subgroupPartitionedXorNV",
	ast.OpSubgroupPartitionedInclusiveAdd: "subgroupPartitionedInclusiveAddNV",
	ast.OpSubgroupPartitionedInclusiveMul: "subgroupPartitionedInclusiveMulNV",
	ast.OpSubgroupPartitionedInclusiveMin: "subgroupPartitionedInclusiveMinNV",
	ast.OpSubgroupPartitionedInclusiveMax: "subgroupPartitionedInclusiveMaxNV",
	ast.OpSubgroupPartitionedInclusiveAnd: "subgroupPartitionedInclusiveAndNV",
	ast.OpSubgroupPartitionedInclusiveOr: "subgroupPartitionedInclusiveOrNV",
	ast.OpSubgroupPartitionedInclusiveXor: "subgroupPartitionedInclusiveXorNV",
	ast.OpSubgroupPartitionedExclusiveAdd: "subgroupPartitionedExclusiveAddNV",
	ast.OpSubgroupPartitionedExclusiveMul: "subgroupPartitionedExclusiveMulNV",
	ast.OpSubgroupPartitionedExclusiveMin: "subgroupPartitionedExclusiveMinNV",
	ast.OpSubgroupPartitionedExclusiveMax: "subgroupPartitionedExclusiveMaxNV",
	ast.OpSubgroupPartitionedExclusiveAnd: "subgroupPartitionedExclusiveAndNV",
	ast.OpSubgroupPartitionedExclusiveOr: "subgroupPartitionedExclusiveOrNV",
	ast.OpSubgroupPartitionedExclusiveXor: "subgroupPartitionedExclusiveXorNV",
	ast.OpMinInvocations: "minInvocationsAMD",
	ast.OpMaxInvocations: "maxInvocationsAMD",
	ast.OpAddInvocations: "addInvocationsAMD",
	ast.OpMinInvocationsNonUniform: "minInvocationsNonUniformAMD",
	ast.OpMaxInvocationsNonUniform: "maxInvocationsNonUniformAMD",
	ast.OpAddInvocationsNonUniform: "addInvocationsNonUniformAMD",
	ast.OpMinInvocationsInclusiveScan: "minInvocationsInclusiveScanAMD",
	ast.OpMaxInvocationsInclusiveScan: "maxInvocationsInclusiveScanAMD",
	ast.OpAddInvocationsInclusiveScan: "addInvocationsInclusiveScanAMD",
	ast.OpMinInvocationsInclusiveScanNonUniform: "minInvocationsInclusiveScanNonUniformAMD",
	ast.OpMaxInvocationsInclusiveScanNonUniform: "maxInvocationsInclusiveScanNonUniformAMD",
	ast.OpAddInvocationsInclusiveScanNonUniform: "addInvocationsInclusiveScanNonUniformAMD",
	ast.OpMinInvocationsExclusiveScan: "minInvocationsExclusiveScanAMD",
	ast.OpMaxInvocationsExclusiveScan: "maxInvocationsExclusiveScanAMD",
	ast.OpAddInvocationsExclusiveScan: "addInvocationsExclusiveScanAMD",
	ast.OpMinInvocationsExclusiveScanNonUniform: "minInvocationsExclusiveScanNonUniformAMD",
	ast.OpMaxInvocationsExclusiveScanNonUniform: "maxInvocationsExclusiveScanNonUniformAMD",
	ast.OpAddInvocationsExclusiveScanNonUniform: "addInvocationsExclusiveScanNonUniformAMD",
	ast.OpSwizzleInvocations: "swizzleInvocationsAMD",
	ast.OpSwizzleInvocationsMasked: "swizzleInvocationsMaskedAMD",
	ast.OpWriteInvocation: "writeInvocationAMD",
	ast.OpMbcnt: "mbcntAMD",
	ast.OpCubeFaceIndex: "cubeFaceIndexAMD",
	ast.OpCubeFaceCoord: "cubeFaceCoordAMD",
	ast.OpTime: "timeAMD",
	ast.OpAtomicAdd: "atomicAdd",
	ast.OpAtomicMin: "atomicMin",
	ast.OpAtomicMax: "atomicMax",
	ast.OpAtomicAnd: "atomicAnd",
	ast.OpAtomicOr: "atomicOr",
	ast.OpAtomicXor: "atomicXor",
	ast.OpAtomicExchange: "atomicExchange",
	ast.OpAtomicCompSwap: "atomicCompSwap",
	ast.OpAtomicLoad: "atomicLoad",
	ast.OpAtomicStore: "atomicStore",
	ast.OpAtomicCounterIncrement: "atomicCounterIncrement",
	ast.OpAtomicCounterDecrement: "atomicCounterDecrement",
	ast.OpAtomicCounter: "atomicCounter",
	ast.OpAny: "any",
	ast.OpAll: "all",
	ast.OpCooperativeMatrixLoad: "coopMatLoad",
	ast.OpCooperativeMatrixStore: "coopMatStore",
	ast.OpCooperativeMatrixMulAdd: "coopMatMulAdd",
	ast.OpCooperativeMatrixLoadNV: "coopMatLoadNV",
	ast.OpCooperativeMatrixStoreNV: "coopMatStoreNV",
	ast.OpCooperativeMatrixMulAddNV: "coopMatMulAddNV",
	ast.OpBeginInvocationInterlock: "beginInvocationInterlockARB",
	ast.OpEndInvocationInterlock: "endInvocationInterlockARB",
	ast.OpIsHelperInvocation: "helperInvocationEXT",
	ast.OpDebugPrintf: "debugPrintfEXT",
	ast.OpConstructTextureSampler: "textureSampler",
	ast.OpConstructNonuniform: "nonuniform",
	ast.OpConstructReference: "reference",
	ast.OpConstructCooperativeMatrixNV: "cooperativeMatrixNV",
	ast.OpConstructCooperativeMatrixKHR: "cooperativeMatrixKHR",
	ast.OpImageQuerySize: "imageSize",
	ast.OpImageQuerySamples: "imageSamples",
	ast.OpImageLoad: "imageLoad",
	ast.OpImageStore: "imageStore",
	ast.OpImageLoadLod: "imageLoadLodAMD",
	ast.OpImageStoreLod: "imageStoreLodAMD",
	ast.OpImageAtomicAdd: "imageAtomicAdd",
	ast.OpImageAtomicMin: "imageAtomicMin",
	ast.OpImageAtomicMax: "imageAtomicMax",
	ast.OpImageAtomicAnd: "imageAtomicAnd",
	ast.OpImageAtomicOr: "imageAtomicOr",
	ast.OpImageAtomicXor: "imageAtomicXor",
	ast.OpImageAtomicExchange: "imageAtomicExchange",
	ast.OpImageAtomicCompSwap: "imageAtomicCompSwap",
	ast.OpImageAtomicLoad: "imageAtomicLoad",
	ast.OpImageAtomicStore: "imageAtomicStore",
	ast.OpSubpassLoad: "subpassLoad",
	ast.OpSubpassLoadMS: "subpassLoadMS",
	ast.OpSparseImageLoad: "sparseImageLoadARB",
	ast.OpSparseImageLoadLod: "sparseImageLoadLodAMD",
	ast.OpColorAttachmentReadEXT: "colorAttachmentReadEXT",
	ast.OpTextureQuerySize: "textureSize",
	ast.OpTextureQueryLevels: "textureQueryLevels",
	ast.OpTextureQuerySamples: "textureSamples",
	ast.OpTextureOffset: "textureOffset",
	ast.OpTextureFetch: "texelFetch",
	ast.OpTextureFetchOffset: "texelFetchOffset",
	ast.OpTextureProjOffset: "textureProjOffset",
	ast.OpTextureLodOffset: "textureLodOffset",
	ast.OpTextureProjLodOffset: "textureProjLodOffset",
	ast.OpTextureGradOffset: "textureGradOffset",
	ast.OpTextureProjGradOffset: "textureProjGradOffset",
	ast.OpTextureGather: "textureGather",
	ast.OpTextureGatherOffset: "textureGatherOffset",
	ast.OpTextureGatherOffsets: "textureGatherOffsets",
	ast.OpTextureClamp: "textureClampARB",
	ast.OpTextureOffsetClamp: "textureOffsetClampARB",
	ast.OpTextureGradClamp: "textureGradClampARB",
	ast.OpTextureGradOffsetClamp: "textureGradOffsetClampARB",
	ast.OpTextureGatherLod: "textureGatherLodAMD",
	ast.OpTextureGatherLodOffset: "textureGatherLodOffsetAMD",
	ast.OpTextureGatherLodOffsets: "textureGatherLodOffsetsAMD",
	ast.OpFragmentMaskFetch: "fragmentMaskFetchAMD",
	ast.OpFragmentFetch: "fragmentFetchAMD",
	ast.OpSparseTexture: "sparseTextureARB",
	ast.OpSparseTextureLod: "sparseTextureLodARB",
	ast.OpSparseTextureOffset: "sparseTextureOffsetARB",
	ast.OpSparseTextureFetch: "sparseTexelFetchARB",
	ast.OpSparseTextureFetchOffset: "sparseTexelFetchOffsetARB",
	ast.OpSparseTextureLodOffset: "sparseTextureLodOffsetARB",
	ast.OpSparseTextureGrad: "sparseTextureGradARB",
	ast.OpSparseTextureGradOffset: "sparseTextureGradOffsetARB",
	ast.OpSparseTextureGather: "sparseTextureGatherARB",
	ast.OpSparseTextureGatherOffset: "sparseTextureGatherOffsetARB",
	ast.OpSparseTextureGatherOffsets: "sparseTextureGatherOffsetsARB",
	ast.OpSparseTexelsResident: "sparseTexelsResidentARB",
	ast.OpSparseTextureClamp: "sparseTextureClampARB",
	ast.OpSparseTextureOffsetClamp: "sparseTextureOffsetClampARB",
	ast.OpSparseTextureGradClamp: "sparseTextureGradClampARB",
	ast.OpSparseTextureGradOffsetClamp: "sparseTextureGradOffsetClampARB",
	ast.OpSparseTextureGatherLod: "sparseTextureGatherLodAMD",
	ast.OpSparseTextureGatherLodOffset: "sparseTextureGatherLodOffsetAMD",
	ast.OpSparseTextureGatherLodOffsets: "sparseTextureGatherLodOffsetsAMD",
	ast.OpImageSampleFootprintNV: "textureFootprintNV",
	ast.OpImageSampleFootprintClampNV: "textureFootprintClampNV",
	ast.OpImageSampleFootprintLodNV: "textureFootprintLodNV",
	ast.OpImageSampleFootprintGradNV: "textureFootprintGradNV",
	ast.OpImageSampleFootprintGradClampNV: "textureFootprintGradClampNV",
	ast.OpAddCarry: "uaddCarry",
	ast.OpSubBorrow: "usubBorrow",
	ast.OpUMulExtended: "umulExtended",
	ast.OpIMulExtended: "imulExtended",
	ast.OpBitfieldExtract: "bitfieldExtract",
	ast.OpBitfieldInsert: "bitfieldInsert",
	ast.OpBitFieldReverse: "bitfieldReverse",
	ast.OpBitCount: "bitCount",
	ast.OpFindLSB: "findLSB",
	ast.OpFindMSB: "findMSB",
	ast.OpCountLeadingZeros: "countLeadingZeros",
	ast.OpCountTrailingZeros: "countTrailingZeros",
	ast.OpAbsDifference: "absoluteDifference",
	ast.OpAddSaturate: "addSaturate",
	ast.OpSubSaturate: "subtractSaturate",
	ast.OpAverage: "average",
	ast.OpAverageRounded: "averageRounded",
	ast.OpMul32x16: "multiply32x16",
	ast.OpTraceNV: "traceNV",
	ast.OpTraceRayMotionNV: "traceRayMotionNV",
	ast.OpTraceKHR: "traceRayEXT",
	ast.OpReportIntersection: "reportIntersectionEXT",
	ast.OpIgnoreIntersectionNV: "ignoreIntersectionNV",
	ast.OpTerminateRayNV: "terminateRayNV",
	ast.OpExecuteCallableNV: "executeCallableNV",
	ast.OpExecuteCallableKHR: "executeCallableEXT",
	ast.OpWritePackedPrimitiveIndices4x8NV: "writePackedPrimitiveIndices4x8NV",
	ast.OpEmitMeshTasksEXT: "EmitMeshTasksEXT",
	ast.OpSetMeshOutputsEXT: "SetMeshOutputsEXT",
	ast.OpRayQueryInitialize: "rayQueryInitializeEXT",
	ast.OpRayQueryTerminate: "rayQueryTerminateEXT",
	ast.OpRayQueryGenerateIntersection: "rayQueryGenerateIntersectionEXT",
	ast.OpRayQueryConfirmIntersection: "rayQueryConfirmIntersectionEXT",
	ast.OpRayQueryProceed: "rayQueryProceedEXT",
	ast.OpRayQueryGetIntersectionType: "rayQueryGetIntersectionTypeEXT",
	ast.OpRayQueryGetRayTMin: "rayQueryGetRayTMinEXT",
	ast.OpRayQueryGetRayFlags: "rayQueryGetRayFlagsEXT",
	ast.OpRayQueryGetIntersectionT: "rayQueryGetIntersectionTEXT",
	ast.OpRayQueryGetIntersectionInstanceCustomIndex: "rayQueryGetIntersectionInstanceCustomIndexEXT",
	ast.OpRayQueryGetIntersectionInstanceId: "rayQueryGetIntersectionInstanceIdEXT",
	ast.OpRayQueryGetIntersectionInstanceShaderBindingTableRecordOffset: "rayQueryGetIntersectionInstanceShaderBindingTableRecordOffsetEXT",
	ast.OpRayQueryGetIntersectionGeometryIndex: "rayQueryGetIntersectionGeometryIndexEXT",
	ast.OpRayQueryGetIntersectionPrimitiveIndex: "rayQueryGetIntersectionPrimitiveIndexEXT",
	ast.OpRayQueryGetIntersectionBarycentrics: "rayQueryGetIntersectionBarycentricsEXT",
	ast.OpRayQueryGetIntersectionFrontFace: "rayQueryGetIntersectionFrontFaceEXT",
	ast.OpRayQueryGetIntersectionCandidateAABBOpaque: "rayQueryGetIntersectionCandidateAABBOpaqueEXT",
	ast.OpRayQueryGetIntersectionObjectRayDirection: "rayQueryGetIntersectionObjectRayDirectionEXT",
	ast.OpRayQueryGetIntersectionObjectRayOrigin: "rayQueryGetIntersectionObjectRayOriginEXT",
	ast.OpRayQueryGetWorldRayDirection: "rayQueryGetWorldRayDirectionEXT",
	ast.OpRayQueryGetWorldRayOrigin: "rayQueryGetWorldRayOriginEXT",
	ast.OpRayQueryGetIntersectionObjectToWorld: "rayQueryGetIntersectionObjectToWorldEXT",
	ast.OpRayQueryGetIntersectionWorldToObject: "rayQueryGetIntersectionWorldToObjectEXT",
	ast.OpHitObjectTraceRayNV: "hitObjectTraceRayNV",
	ast.OpHitObjectTraceRayMotionNV: "hitObjectTraceRayMotionNV",
	ast.OpHitObjectRecordHitNV: "hitObjectRecordHitNV",
	ast.OpHitObjectRecordHitMotionNV: "hitObjectRecordHitMotionNV",
	ast.OpHitObjectRecordHitWithIndexNV: "hitObjectRecordHitWithIndexNV",
	ast.OpHitObjectRecordHitWithIndexMotionNV: "hitObjectRecordHitWithIndexMotionNV",
	ast.OpHitObjectRecordMissNV: "hitObjectRecordMissNV",
	ast.OpHitObjectRecordMissMotionNV: "hitObjectRecordMissMotionNV",
	ast.OpHitObjectRecordEmptyNV: "hitObjectRecordEmptyNV",
	ast.OpHitObjectExecuteShaderNV: "hitObjectExecuteShaderNV",
	ast.OpHitObjectIsEmptyNV: "hitObjectIsEmptyNV",
	ast.OpHitObjectIsMissNV: "hitObjectIsMissNV",
	ast.OpHitObjectIsHitNV: "hitObjectIsHitNV",
	ast.OpHitObjectGetRayTMinNV: "hitObjectGetRayTMinNV",
	ast.OpHitObjectGetRayTMaxNV: "hitObjectGetRayTMaxNV",
	ast.OpHitObjectGetObjectRayOriginNV: "hitObjectGetObjectRayOriginNV",
	ast.OpHitObjectGetObjectRayDirectionNV: "hitObjectGetObjectRayDirectionNV",
	ast.OpHitObjectGetWorldRayOriginNV: "hitObjectGetWorldRayOriginNV",
	ast.OpHitObjectGetWorldRayDirectionNV: "hitObjectGetWorldRayDirectionNV",
	ast.OpHitObjectGetWorldToObjectNV: "hitObjectGetWorldToObjectNV",
	ast.OpHitObjectGetObjectToWorldNV: "hitObjectGetObjectToWorldNV",
	ast.OpHitObjectGetInstanceCustomIndexNV: "hitObjectGetInstanceCustomIndexNV",
	ast.OpHitObjectGetInstanceIdNV: "hitObjectGetInstanceIdNV",
	ast.OpHitObjectGetGeometryIndexNV: "hitObjectGetGeometryIndexNV",
	ast.OpHitObjectGetPrimitiveIndexNV: "hitObjectGetPrimitiveIndexNV",
	ast.OpHitObjectGetHitKindNV: "hitObjectGetHitKindNV",
	ast.OpHitObjectGetShaderBindingTableRecordIndexNV: "hitObjectGetShaderBindingTableRecordIndexNV",
	ast.OpHitObjectGetShaderRecordBufferHandleNV: "hitObjectGetShaderRecordBufferHandleNV",
	ast.OpHitObjectGetAttributesNV: "hitObjectGetAttributesNV",
	ast.OpHitObjectGetCurrentTimeNV: "hitObjectGetCurrentTimeNV",
	ast.OpReorderThreadNV: "reorderThreadNV",
	ast.OpFetchMicroTriangleVertexPositionNV: "fetchMicroTriangleVertexPositionNV",
	ast.OpFetchMicroTriangleVertexBarycentricNV: "fetchMicroTriangleVertexBarycentricNV",
	ast.OpReadClockSubgroupKHR: "clock2x32ARB",
	ast.OpReadClockDeviceKHR: "clockRealtime2x32EXT",
	ast.OpRayQueryGetIntersectionTriangleVertexPositionsEXT: "rayQueryGetIntersectionTriangleVertexPositionsEXT",
	ast.OpStencilAttachmentReadEXT: "stencilAttachmentReadEXT",
	ast.OpDepthAttachmentReadEXT: "depthAttachmentReadEXT",
	ast.OpImageSampleWeightedQCOM: "textureWeightedQCOM",
	ast.OpImageBoxFilterQCOM: "textureBoxFilterQCOM",
	ast.OpImageBlockMatchSADQCOM: "textureBlockMatchSADQCOM",
	ast.OpImageBlockMatchSSDQCOM: "textureBlockMatchSSDQCOM",
}

// constructorNames maps type-construction operators onto the base type
// name; one "[]" per array dimension of the result type is appended at
// mapping time.
var constructorNames = map[ast.Operator]string{
	ast.OpConstructInt: "int",
	ast.OpConstructUint: "uint",
	ast.OpConstructInt8: "int8",
	ast.OpConstructUint8: "uint8",
	ast.OpConstructInt16: "int16",
	ast.OpConstructUint16: "uint16",
	ast.OpConstructInt64: "int64",
	ast.OpConstructUint64: "uint64",
	ast.OpConstructBool: "bool",
	ast.OpConstructFloat: "float",
	ast.OpConstructDouble: "double",
	ast.OpConstructVec2: "vec2",
	ast.OpConstructVec3: "vec3",
	ast.OpConstructVec4: "vec4",
	ast.OpConstructMat2x2: "mat2x2",
	ast.OpConstructMat2x3: "mat2x3",
	ast.OpConstructMat2x4: "mat2x4",
	ast.OpConstructMat3x2: "mat3x2",
	ast.OpConstructMat3x3: "mat3x3",
	ast.OpConstructMat3x4: "mat3x4",
	ast.OpConstructMat4x2: "mat4x2",
	ast.OpConstructMat4x3: "mat4x3",
	ast.OpConstructMat4x4: "mat4x4",
	ast.OpConstructDVec2: "dvec2",
	ast.OpConstructDVec3: "dvec3",
	ast.OpConstructDVec4: "dvec4",
	ast.OpConstructBVec2: "bvec2",
	ast.OpConstructBVec3: "bvec3",
	ast.OpConstructBVec4: "bvec4",
	ast.OpConstructI8Vec2: "i8vec2",
	ast.OpConstructI8Vec3: "i8vec3",
	ast.OpConstructI8Vec4: "i8vec4",
	ast.OpConstructU8Vec2: "u8vec2",
	ast.OpConstructU8Vec3: "u8vec3",
	ast.OpConstructU8Vec4: "u8vec4",
	ast.OpConstructI16Vec2: "i16vec2",
	ast.OpConstructI16Vec3: "i16vec3",
	ast.OpConstructI16Vec4: "i16vec4",
	ast.OpConstructU16Vec2: "u16vec2",
	ast.OpConstructU16Vec3: "u16vec3",
	ast.OpConstructU16Vec4: "u16vec4",
	ast.OpConstructIVec2: "ivec2",
	ast.OpConstructIVec3: "ivec3",
	ast.OpConstructIVec4: "ivec4",
	ast.OpConstructUVec2: "uvec2",
	ast.OpConstructUVec3: "uvec3",
	ast.OpConstructUVec4: "uvec4",
	ast.OpConstructI64Vec2: "i64vec2",
	ast.OpConstructI64Vec3: "i64vec3",
	ast.OpConstructI64Vec4: "i64vec4",
	ast.OpConstructU64Vec2: "u64vec2",
	ast.OpConstructU64Vec3: "u64vec3",
	ast.OpConstructU64Vec4: "u64vec4",
	ast.OpConstructDMat2x2: "dmat2x2",
	ast.OpConstructDMat2x3: "dmat2x3",
	ast.OpConstructDMat2x4: "dmat2x4",
	ast.OpConstructDMat3x2: "dmat3x2",
	ast.OpConstructDMat3x3: "dmat3x3",
	ast.OpConstructDMat3x4: "dmat3x4",
	ast.OpConstructDMat4x2: "dmat4x2",
	ast.OpConstructDMat4x3: "dmat4x3",
	ast.OpConstructDMat4x4: "dmat4x4",
	ast.OpConstructIMat2x2: "imat2x2",
	ast.OpConstructIMat2x3: "imat2x3",
	ast.OpConstructIMat2x4: "imat2x4",
	ast.OpConstructIMat3x2: "imat3x2",
	ast.OpConstructIMat3x3: "imat3x3",
	ast.OpConstructIMat3x4: "imat3x4",
	ast.OpConstructIMat4x2: "imat4x2",
	ast.OpConstructIMat4x3: "imat4x3",
	ast.OpConstructIMat4x4: "imat4x4",
	ast.OpConstructUMat2x2: "umat2x2",
	ast.OpConstructUMat2x3: "umat2x3",
	ast.OpConstructUMat2x4: "umat2x4",
	ast.OpConstructUMat3x2: "umat3x2",
	ast.OpConstructUMat3x3: "umat3x3",
	ast.OpConstructUMat3x4: "umat3x4",
	ast.OpConstructUMat4x2: "umat4x2",
	ast.OpConstructUMat4x3: "umat4x3",
	ast.OpConstructUMat4x4: "umat4x4",
	ast.OpConstructBMat2x2: "bmat2x2",
	ast.OpConstructBMat2x3: "bmat2x3",
	ast.OpConstructBMat2x4: "bmat2x4",
	ast.OpConstructBMat3x2: "bmat3x2",
	ast.OpConstructBMat3x3: "bmat3x3",
	ast.OpConstructBMat3x4: "bmat3x4",
	ast.OpConstructBMat4x2: "bmat4x2",
	ast.OpConstructBMat4x3: "bmat4x3",
	ast.OpConstructBMat4x4: "bmat4x4",
	ast.OpConstructFloat16: "float16",
	ast.OpConstructF16Vec2: "f16vec2",
	ast.OpConstructF16Vec3: "f16vec3",
	ast.OpConstructF16Vec4: "f16vec4",
	ast.OpConstructF16Mat2x2: "f16mat2x2",
	ast.OpConstructF16Mat2x3: "f16mat2x3",
	ast.OpConstructF16Mat2x4: "f16mat2x4",
	ast.OpConstructF16Mat3x2: "f16mat3x2",
	ast.OpConstructF16Mat3x3: "f16mat3x3",
	ast.OpConstructF16Mat3x4: "f16mat3x4",
	ast.OpConstructF16Mat4x2: "f16mat4x2",
	ast.OpConstructF16Mat4x3: "f16mat4x3",
	ast.OpConstructF16Mat4x4: "f16mat4x4",
}

// versionedName is a builtin whose spelling depends on the shader
// language version.
type versionedName struct {
	minVersion int
	name       string // used when version >= minVersion
	older      string
}

var versionedNames = map[ast.Operator]versionedName{
	ast.OpAnyInvocation: {460, "anyInvocation", "anyInvocationARB"},
	ast.OpAllInvocations: {460, "allInvocations", "allInvocationsARB"},
	ast.OpAllInvocationsEqual: {460, "allInvocationsEqual", "allInvocationsEqualARB"},
	ast.OpAtomicCounterAdd: {460, "atomicCounterAdd", "atomicCounterAddARB"},
	ast.OpAtomicCounterSubtract: {460, "atomicCounterSubtract", "atomicCounterSubtractARB"},
	ast.OpAtomicCounterMin: {460, "atomicCounterMin", "atomicCounterMinARB"},
	ast.OpAtomicCounterMax: {460, "atomicCounterMax", "atomicCounterMaxARB"},
	ast.OpAtomicCounterAnd: {460, "atomicCounterAnd", "atomicCounterAndARB"},
	ast.OpAtomicCounterOr: {460, "atomicCounterOr", "atomicCounterOrARB"},
	ast.OpAtomicCounterXor: {460, "atomicCounterXor", "atomicCounterXorARB"},
	ast.OpAtomicCounterExchange: {460, "atomicCounterExchange", "atomicCounterExchangeARB"},
	ast.OpAtomicCounterCompSwap: {460, "atomicCounterCompSwap", "atomicCounterCompSwapARB"},
	ast.OpTextureQueryLod: {400, "textureQueryLod", "textureQueryLOD"},
}
