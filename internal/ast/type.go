package ast

// BasicType enumerates the front end's basic type classes.
type BasicType uint8

const (
	BasicVoid BasicType = iota
	BasicFloat
	BasicDouble
	BasicInt
	BasicUint
	BasicBool
	BasicAtomicUint
	BasicSampler
	BasicStruct
	BasicBlock
	// BasicInt64 and later classes exist in the front end but are not
	// representable in a Pack; lowering them is a fatal condition.
	BasicInt64
	BasicUint64
	BasicString
)

var basicTypeNames = [...]string{
	BasicVoid:       "void",
	BasicFloat:      "float",
	BasicDouble:     "double",
	BasicInt:        "int",
	BasicUint:       "uint",
	BasicBool:       "bool",
	BasicAtomicUint: "atomic_uint",
	BasicSampler:    "sampler",
	BasicStruct:     "struct",
	BasicBlock:      "block",
	BasicInt64:      "int64",
	BasicUint64:     "uint64",
	BasicString:     "string",
}

// String returns the front end's name for the basic type class.
func (b BasicType) String() string {
	if int(b) < len(basicTypeNames) {
		return basicTypeNames[b]
	}
	return "unknown"
}

// Precision is the GLSL precision qualifier.
type Precision uint8

const (
	PrecisionNone Precision = iota
	PrecisionLow
	PrecisionMedium
	PrecisionHigh
)

// Qualifier carries the qualifier bits the front end resolved for a
// type. Layout holds the front end's canonical layout argument text,
// meaningful only when HasLayout is set.
type Qualifier struct {
	Invariant     bool
	Flat          bool
	NoPerspective bool
	Smooth        bool
	HasLayout     bool
	Layout        string
	Const         bool
	Precision     Precision
}

// SamplerDim enumerates sampler dimensionalities.
type SamplerDim uint8

const (
	Dim1D SamplerDim = iota
	Dim2D
	Dim3D
	DimCube
	DimRect
	DimBuffer
	DimSubpass
)

// Sampler describes a sampler type. String is the front end's full
// descriptor (e.g. "sampler2DShadow") used directly as the type name.
type Sampler struct {
	Dim    SamplerDim
	Shadow bool
	String string
}

// Type is a resolved front-end type descriptor.
type Type struct {
	Basic      BasicType
	VectorSize int // 1 for scalars, 2-4 for vectors
	MatrixCols int // 0 when not a matrix; 2-4 otherwise
	MatrixRows int
	Name       string   // declared name for struct/block types
	Sampler    *Sampler // set when Basic == BasicSampler
	Qualifier  Qualifier
	ArraySizes []uint64 // outer-to-inner as declared; empty for non-arrays
	BuiltIn    bool     // language-predefined, no user declaration
}

// IsMatrix reports whether the type is a matrix.
func (t *Type) IsMatrix() bool { return t.MatrixCols > 0 }

// IsArray reports whether the type carries array dimensions.
func (t *Type) IsArray() bool { return len(t.ArraySizes) > 0 }

// IsVector reports whether the type is a 2-4 component vector.
func (t *Type) IsVector() bool { return !t.IsMatrix() && t.VectorSize > 1 }
