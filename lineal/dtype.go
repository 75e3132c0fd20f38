package lineal

// Number is the set of element types a Vector can hold.
type Number interface {
	float64 | float32 | int64 | int32 | int16 | int8 | uint64 | uint32 | uint16 | uint8
}

// DType tags the element type of a vector, scalar or expression at runtime.
type DType uint8

const (
	// Invalid is the zero DType. It is returned by PreciseType() with no
	// arguments and carried by the zero Scalar.
	Invalid DType = iota
	Float64
	Float32
	Int64
	Int32
	Int16
	Int8
	Uint64
	Uint32
	Uint16
	Uint8
)

var dtypeNames = [...]string{
	Invalid: "invalid",
	Float64: "float64",
	Float32: "float32",
	Int64:   "int64",
	Int32:   "int32",
	Int16:   "int16",
	Int8:    "int8",
	Uint64:  "uint64",
	Uint32:  "uint32",
	Uint16:  "uint16",
	Uint8:   "uint8",
}

func (d DType) String() string {
	if int(d) < len(dtypeNames) {
		return dtypeNames[d]
	}
	return "invalid"
}

// Size returns the storage size of one element in bytes, 0 for Invalid.
func (d DType) Size() int {
	switch d {
	case Float64, Int64, Uint64:
		return 8
	case Float32, Int32, Uint32:
		return 4
	case Int16, Uint16:
		return 2
	case Int8, Uint8:
		return 1
	}
	return 0
}

// IsValid reports whether d names an element type.
func (d DType) IsValid() bool {
	return d > Invalid && d <= Uint8
}

// IsFloat reports whether d is a floating-point type.
func (d DType) IsFloat() bool {
	return d == Float64 || d == Float32
}

// IsSigned reports whether d can represent negative values.
func (d DType) IsSigned() bool {
	return d.IsFloat() || (d >= Int64 && d <= Int8)
}

// DTypeOf returns the DType of T.
func DTypeOf[T Number]() DType {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case int64:
		return Int64
	case int32:
		return Int32
	case int16:
		return Int16
	case int8:
		return Int8
	case uint64:
		return Uint64
	case uint32:
		return Uint32
	case uint16:
		return Uint16
	case uint8:
		return Uint8
	}
	panic("unreachable")
}

// PreciseType returns the element type in which a composition of values of
// the given types is evaluated. Types are combined pairwise from left to
// right. For a pair, if exactly one type is floating point it wins; otherwise
// the larger type wins, and on equal sizes the first one is kept. So
// PreciseType(Int32, Uint32) is Int32 while PreciseType(Uint32, Int32) is
// Uint32.
//
// Invalid propagates. PreciseType() is Invalid.
func PreciseType(dts ...DType) DType {
	if len(dts) == 0 {
		return Invalid
	}
	result := dts[0]
	for _, d := range dts[1:] {
		result = precisePair(result, d)
	}
	return result
}

func precisePair(a, b DType) DType {
	if !a.IsValid() || !b.IsValid() {
		return Invalid
	}
	if a.IsFloat() != b.IsFloat() {
		if a.IsFloat() {
			return a
		}
		return b
	}
	if b.Size() > a.Size() {
		return b
	}
	return a
}
