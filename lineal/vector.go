package lineal

import (
	"fmt"
)

// Orientation tells whether a vector is a row or a column.
type Orientation uint8

const (
	// Unoriented is the zero Orientation. No Operand has it.
	Unoriented Orientation = iota
	Row
	Col
)

func (o Orientation) String() string {
	switch o {
	case Row:
		return "row"
	case Col:
		return "col"
	}
	return "unoriented"
}

func (o Orientation) mustBeValid() {
	if o != Row && o != Col {
		panic(fmt.Sprintf("lineal: invalid orientation %d", o))
	}
}

// Operand is a lazily evaluated one-dimensional value: a *Vector or an
// *Expr.
type Operand interface {
	// DType returns the element type of Elem.
	DType() DType
	// Orientation returns Row or Col.
	Orientation() Orientation
	// Len returns the number of elements.
	Len() int
	// Elem evaluates element i.
	Elem(i int) Scalar
}

// Vector is an oriented handle over a Buffer. The orientation is fixed at
// construction. A vector created with ViewVector is read-only.
type Vector[T Number] struct {
	buf      *Buffer[T]
	orient   Orientation
	readOnly bool
}

// NewVector allocates an owned vector of count elements.
func NewVector[T Number](orient Orientation, count int, fill FillPolicy) (*Vector[T], error) {
	orient.mustBeValid()
	buf, err := Allocate[T](count, fill)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{buf: buf, orient: orient}, nil
}

// NewRow allocates an owned row vector.
func NewRow[T Number](count int, fill FillPolicy) (*Vector[T], error) {
	return NewVector[T](Row, count, fill)
}

// NewCol allocates an owned column vector.
func NewCol[T Number](count int, fill FillPolicy) (*Vector[T], error) {
	return NewVector[T](Col, count, fill)
}

// WrapVector returns a mutable vector borrowing data.
func WrapVector[T Number](orient Orientation, data []T) *Vector[T] {
	orient.mustBeValid()
	return &Vector[T]{buf: Wrap(data), orient: orient}
}

// ViewVector returns a read-only vector borrowing data. Set panics on it.
func ViewVector[T Number](orient Orientation, data []T) *Vector[T] {
	orient.mustBeValid()
	return &Vector[T]{buf: Wrap(data), orient: orient, readOnly: true}
}

// VectorOf returns a vector taking ownership of buf (see Buffer.Move).
func VectorOf[T Number](orient Orientation, buf *Buffer[T]) *Vector[T] {
	orient.mustBeValid()
	return &Vector[T]{buf: buf.Move(), orient: orient}
}

// At returns element i.
func (v *Vector[T]) At(i int) T {
	return v.buf.At(i)
}

// Set writes element i. It panics on a read-only view.
func (v *Vector[T]) Set(i int, x T) {
	if v.readOnly {
		panic("lineal: Set on read-only view")
	}
	v.buf.Set(i, x)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return v.buf.Len()
}

// DType returns the DType of T.
func (v *Vector[T]) DType() DType {
	return DTypeOf[T]()
}

// Orientation returns Row or Col.
func (v *Vector[T]) Orientation() Orientation {
	return v.orient
}

// ReadOnly reports whether v was created by ViewVector.
func (v *Vector[T]) ReadOnly() bool {
	return v.readOnly
}

// Owned reports whether v releases its buffer.
func (v *Vector[T]) Owned() bool {
	return v.buf.Owned()
}

// Data returns the elements. It aliases the vector; callers must not write
// to the slice of a read-only view.
func (v *Vector[T]) Data() []T {
	return v.buf.Data()
}

// Release releases the buffer if v owns it.
func (v *Vector[T]) Release() {
	v.buf.Release()
}

// Elem returns element i as a Scalar.
func (v *Vector[T]) Elem(i int) Scalar {
	return ScalarOf(v.buf.At(i))
}

func (v *Vector[T]) String() string {
	return fmt.Sprintf("%s<%s>[%d]", v.orient, v.DType(), v.Len())
}

func (v *Vector[T]) released() bool {
	return v.buf.Released()
}

// IsRow reports whether x is an Operand with Row orientation.
func IsRow(x any) bool {
	o, ok := x.(Operand)
	return ok && o.Orientation() == Row
}

// IsCol reports whether x is an Operand with Col orientation.
func IsCol(x any) bool {
	o, ok := x.(Operand)
	return ok && o.Orientation() == Col
}

// IsVector reports whether x is a row or a column.
func IsVector(x any) bool {
	return IsRow(x) || IsCol(x)
}

// IsRaw reports whether x is an oriented operand that is not an *Expr.
func IsRaw(x any) bool {
	_, composed := x.(*Expr)
	return IsVector(x) && !composed
}

// IsComposed reports whether x is an *Expr.
func IsComposed(x any) bool {
	_, composed := x.(*Expr)
	return composed
}
