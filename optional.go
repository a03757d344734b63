package jsonvalue_airp

import (
	"github.com/pkg/errors"
)

// Optional is a T that may be absent. Absent is the null cell, so the zero
// Optional is empty and an optional is no larger than T.
type Optional[T Elem[T]] Value

// Some returns an optional holding x. x is left empty as after Take.
func Some[T Elem[T]](x *T) Optional[T] {
	var z T
	return Optional[T](z.unbind(x).Take())
}

func (o *Optional[T]) v() *Value {
	return (*Value)(o)
}

// AsValue returns o as a generic value aliasing the same cell.
func (o *Optional[T]) AsValue() *Value {
	return o.v()
}

// HasValue reports whether o holds a T.
func (o *Optional[T]) HasValue() bool {
	return o.tag != tagNull
}

// Value returns the T held by o, or ErrNotEngaged when o is empty.
func (o *Optional[T]) Value() (*T, error) {
	if !o.HasValue() {
		return nil, errors.WithStack(ErrNotEngaged)
	}
	var z T
	return z.bind(o.v()), nil
}

// ValueOr returns the T held by o, or fallback when o is empty.
func (o *Optional[T]) ValueOr(fallback *T) *T {
	if !o.HasValue() {
		return fallback
	}
	var z T
	return z.bind(o.v())
}

// Set moves x into o, releasing what o held before.
func (o *Optional[T]) Set(x *T) {
	var z T
	o.v().MoveFrom(z.unbind(x))
}

// Reset empties o and releases what it held.
func (o *Optional[T]) Reset() {
	o.v().Reset()
}

// Swap exchanges the contents of o and p.
func (o *Optional[T]) Swap(p *Optional[T]) {
	o.v().Swap(p.v())
}

// Clone returns a deep copy of o.
func (o *Optional[T]) Clone() Optional[T] {
	return Optional[T](o.v().Clone())
}
