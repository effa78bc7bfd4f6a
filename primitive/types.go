// SPDX-License-Identifier: MIT

package primitive

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a buffer may hold.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~bool
}

// Elem tags the element type of an untyped buffer. The zero value is not a
// valid tag.
type Elem uint8

const (
	Bool Elem = iota + 1
	Int
	Int8
	Int16
	Int32
	Int64
	Uint
	Uint8
	Uint16
	Uint32
	Uint64
	Uintptr
	Float32
	Float64
	Complex64
	Complex128

	elemEnd
)

var elemNames = [elemEnd]string{
	Bool:       "bool",
	Int:        "int",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint:       "uint",
	Uint8:      "uint8",
	Uint16:     "uint16",
	Uint32:     "uint32",
	Uint64:     "uint64",
	Uintptr:    "uintptr",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// Valid reports whether e is a declared tag.
func (e Elem) Valid() bool { return e >= Bool && e < elemEnd }

// String returns the Go name of the element type.
func (e Elem) String() string {
	if e.Valid() {
		return elemNames[e]
	}
	return fmt.Sprintf("Elem(%d)", uint8(e))
}

// ElemOf returns the tag matching buf, which must be a slice of one of the
// predeclared scalar types. Slices of named types are not recognised.
func ElemOf(buf any) (Elem, error) {
	switch buf.(type) {
	case nil:
		return 0, ErrNilBuffer
	case []bool:
		return Bool, nil
	case []int:
		return Int, nil
	case []int8:
		return Int8, nil
	case []int16:
		return Int16, nil
	case []int32:
		return Int32, nil
	case []int64:
		return Int64, nil
	case []uint:
		return Uint, nil
	case []uint8:
		return Uint8, nil
	case []uint16:
		return Uint16, nil
	case []uint32:
		return Uint32, nil
	case []uint64:
		return Uint64, nil
	case []uintptr:
		return Uintptr, nil
	case []float32:
		return Float32, nil
	case []float64:
		return Float64, nil
	case []complex64:
		return Complex64, nil
	case []complex128:
		return Complex128, nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedBuffer, buf)
	}
}
