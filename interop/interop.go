// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop exposes arrays and views to foreign callers as array-like,
// pointer-like objects with a single "pointer" member.
package interop

import (
	"github.com/born-ml/ndarray/internal/interop"
	"github.com/born-ml/ndarray/internal/ndarray"
)

// Object is the foreign representation of an array or view.
type Object = interop.Object

// MemberPointer is the member name holding an array's base address.
const MemberPointer = interop.MemberPointer

// Errors.
var (
	ErrInvalidArrayIndex  = interop.ErrInvalidArrayIndex
	ErrUnknownIdentifier  = interop.ErrUnknownIdentifier
	ErrUnsupportedMessage = interop.ErrUnsupportedMessage
)

// Wrap returns the foreign representation of an *ndarray.Array or *ndarray.View.
func Wrap(v ndarray.Indexable) *Object {
	return interop.Wrap(v)
}
