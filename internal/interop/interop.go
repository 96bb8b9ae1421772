// Package interop describes arrays and views to foreign callers through a small,
// message-style protocol: array-like (size and element access), pointer-like (base
// address) and member-bearing (a single readable "pointer" member on arrays).
//
// The protocol carries no logic of its own; every message delegates to the public
// accessors and the indexing chain of package ndarray.
package interop

import (
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// MemberPointer is the only member exposed by arrays.
const MemberPointer = "pointer"

// Common errors.
var (
	ErrInvalidArrayIndex  = errors.New("invalid array index")
	ErrUnknownIdentifier  = errors.New("unknown identifier")
	ErrUnsupportedMessage = errors.New("unsupported message")
)

var (
	publicMembers   = []string{}
	internalMembers = []string{MemberPointer}
)

// Object exposes an *ndarray.Array or an *ndarray.View to foreign callers.
type Object struct {
	value ndarray.Indexable
}

// Wrap returns the foreign representation of an array or view.
func Wrap(v ndarray.Indexable) *Object {
	return &Object{value: v}
}

// Unwrap returns the wrapped array or view.
func (o *Object) Unwrap() ndarray.Indexable {
	return o.value
}

// HasArrayElements reports that arrays and views are array-like.
func (o *Object) HasArrayElements() bool {
	return true
}

// ArraySize returns the extent of the next free dimension (shape[0] for an array).
func (o *Object) ArraySize() int64 {
	return int64(o.value.Len())
}

// IsArrayElementReadable reports whether index i can be read.
func (o *Object) IsArrayElementReadable(i int64) bool {
	return i >= 0 && i < o.ArraySize()
}

// IsArrayElementWritable reports whether index i can be written: only elements of a
// view with a single free dimension are scalars.
func (o *Object) IsArrayElementWritable(i int64) bool {
	v, ok := o.value.(*ndarray.View)
	return ok && v.Terminal() && o.IsArrayElementReadable(i)
}

// ReadArrayElement indexes the wrapped value. Indexing an array or a view with more
// than one free dimension returns the next view wrapped in an Object; indexing a view
// with a single free dimension returns the scalar element.
func (o *Object) ReadArrayElement(i int64) (any, error) {
	if !o.IsArrayElementReadable(i) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidArrayIndex, i)
	}
	if v, ok := o.value.(*ndarray.View); ok && v.Terminal() {
		return v.Get(int(i))
	}
	next, err := o.value.Index(int(i))
	if err != nil {
		return nil, err
	}
	return Wrap(next), nil
}

// WriteArrayElement stores x at index i of a view with a single free dimension.
func (o *Object) WriteArrayElement(i int64, x any) error {
	v, ok := o.value.(*ndarray.View)
	if !ok || !v.Terminal() {
		return fmt.Errorf("%w: elements of a %d-dimensional value are not writable", ErrUnsupportedMessage, o.value.Rank())
	}
	if !o.IsArrayElementReadable(i) {
		return fmt.Errorf("%w: %d", ErrInvalidArrayIndex, i)
	}
	return v.Set(int(i), x)
}

// HasMembers reports whether the value carries named members (arrays only).
func (o *Object) HasMembers() bool {
	_, ok := o.value.(*ndarray.Array)
	return ok
}

// Members lists member names. The pointer member is internal and only listed when
// includeInternal is set.
func (o *Object) Members(includeInternal bool) []string {
	if !o.HasMembers() {
		return nil
	}
	if includeInternal {
		return slices.Clone(internalMembers)
	}
	return slices.Clone(publicMembers)
}

// IsMemberReadable reports whether name can be read.
func (o *Object) IsMemberReadable(name string) bool {
	return o.HasMembers() && name == MemberPointer
}

// ReadMember returns the value of member name.
func (o *Object) ReadMember(name string) (any, error) {
	if !o.IsMemberReadable(name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIdentifier, name)
	}
	return o.AsPointer()
}

// IsPointer reports whether the value can be passed as a raw pointer (arrays only).
func (o *Object) IsPointer() bool {
	_, ok := o.value.(*ndarray.Array)
	return ok
}

// AsPointer returns the base address of the wrapped array.
func (o *Object) AsPointer() (uintptr, error) {
	if !o.IsPointer() {
		return 0, fmt.Errorf("%w: not a pointer", ErrUnsupportedMessage)
	}
	return o.value.Pointer(), nil
}
