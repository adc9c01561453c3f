package ast

// ScalarKind enumerates the scalar kinds a folded constant entry can
// hold. Int64, Uint64 and String exist in the front end's union but are
// not representable in a Pack.
type ScalarKind uint8

const (
	ScalarBool ScalarKind = iota
	ScalarInt8
	ScalarUint8
	ScalarInt16
	ScalarUint16
	ScalarInt
	ScalarUint
	ScalarDouble
	ScalarInt64
	ScalarUint64
	ScalarString
)

var scalarKindNames = [...]string{
	ScalarBool:   "bool",
	ScalarInt8:   "int8",
	ScalarUint8:  "uint8",
	ScalarInt16:  "int16",
	ScalarUint16: "uint16",
	ScalarInt:    "int",
	ScalarUint:   "uint",
	ScalarDouble: "double",
	ScalarInt64:  "int64",
	ScalarUint64: "uint64",
	ScalarString: "string",
}

// String returns the scalar kind's name.
func (k ScalarKind) String() string {
	if int(k) < len(scalarKindNames) {
		return scalarKindNames[k]
	}
	return "unknown"
}

// ConstantValue is one entry of a folded constant. The payload field
// selected by Kind is meaningful; the rest are zero.
type ConstantValue struct {
	Kind  ScalarKind
	Int   int64
	Uint  uint64
	Float float64
	Bool  bool
	Str   string
}

// IntConst builds a signed integer entry of the given kind.
func IntConst(kind ScalarKind, v int64) ConstantValue {
	return ConstantValue{Kind: kind, Int: v}
}

// UintConst builds an unsigned integer entry of the given kind.
func UintConst(kind ScalarKind, v uint64) ConstantValue {
	return ConstantValue{Kind: kind, Uint: v}
}

// DoubleConst builds a floating-point entry.
func DoubleConst(v float64) ConstantValue {
	return ConstantValue{Kind: ScalarDouble, Float: v}
}

// BoolConst builds a boolean entry.
func BoolConst(v bool) ConstantValue {
	return ConstantValue{Kind: ScalarBool, Bool: v}
}
