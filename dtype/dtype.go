// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dtype lists the element types an array can hold.
package dtype

import "github.com/born-ml/ndarray/internal/dtype"

// DataType represents runtime type information for array elements.
type DataType = dtype.DataType

// DType is a constraint for the Go element types.
type DType = dtype.DType

// Supported data types.
const (
	Bool    = dtype.Bool
	Int8    = dtype.Int8
	Uint8   = dtype.Uint8
	Int16   = dtype.Int16
	Int32   = dtype.Int32
	Int64   = dtype.Int64
	Float32 = dtype.Float32
	Float64 = dtype.Float64
)

// Errors.
var (
	ErrUnknownType  = dtype.ErrUnknownType
	ErrTypeMismatch = dtype.ErrTypeMismatch
)

// Parse looks up a data type by name ("float32", "f32", "float", "double", ...).
func Parse(name string) (DataType, error) {
	return dtype.Parse(name)
}

// Of returns the DataType of the Go type T.
func Of[T DType]() DataType {
	return dtype.Of[T]()
}

// Base converts x to the predeclared Go type of its data type.
func Base[T DType](x T) any {
	return dtype.Base(x)
}

// As converts a decoded element to T.
func As[T DType](x any) T {
	return dtype.As[T](x)
}
