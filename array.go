package jsonvalue_airp

import (
	"iter"

	"github.com/pkg/errors"
)

// Array is a view of an array cell whose elements are viewed as T. The
// elements live in one heap buffer owned by the cell; its capacity moves
// along the class ladder 0, 3, 7, 15, ...
//
// Pointers returned by At and All are valid until the next call that grows
// or clears the array.
type Array[T Elem[T]] Value

// NewArray returns an empty array. Nothing is allocated until the first
// element arrives.
func NewArray[T Elem[T]]() Array[T] {
	return Array[T]{tag: tagArray}
}

func (a *Array[T]) v() *Value {
	return (*Value)(a)
}

// AsValue returns a as a generic value aliasing the same cell.
func (a *Array[T]) AsValue() *Value {
	return a.v()
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.v().count()
}

// Empty reports whether a has no elements.
func (a *Array[T]) Empty() bool {
	return a.Len() == 0
}

// Cap returns the number of elements a can hold before it reallocates.
func (a *Array[T]) Cap() int {
	return capacity(a.v().class())
}

// At returns the element at i. An index outside [0, Len()) panics.
func (a *Array[T]) At(i int) *T {
	var z T
	return z.bind(&a.v().live()[i])
}

// All iterates the elements in order.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		var z T
		cells := a.v().live()
		for i := range cells {
			if !yield(i, z.bind(&cells[i])) {
				return
			}
		}
	}
}

// Clear drops all elements and keeps the buffer.
func (a *Array[T]) Clear() {
	a.v().clearEntries()
}

// Reserve makes room for at least n elements. It does nothing when a can
// already hold n.
func (a *Array[T]) Reserve(n int) {
	a.v().reserveCells(n)
}

// PushBack moves x to the end of a. x is left empty as after Take; its heap
// payload is not copied.
func (a *Array[T]) PushBack(x *T) {
	var z T
	n := a.Len()
	if n >= maxCount {
		panic(errors.Wrapf(ErrTooLarge, "array of %d elements", n+1))
	}
	// x may point into a itself, so it is taken before the buffer moves.
	moved := z.unbind(x).Take()
	a.Reserve(n + 1)
	a.ref.cells[n] = moved
	a.v().setCount(n + 1)
}

// Append moves xs to the end of a in order. Each of xs is left empty as
// after Take.
func (a *Array[T]) Append(xs ...*T) {
	if len(xs) == 0 {
		return
	}
	var z T
	n := a.Len()
	if n+len(xs) > maxCount {
		panic(errors.Wrapf(ErrTooLarge, "array of %d elements", n+len(xs)))
	}
	// xs may point into a itself, so all are taken before the buffer moves.
	moved := make([]Value, len(xs))
	for i, x := range xs {
		moved[i] = z.unbind(x).Take()
	}
	a.Reserve(n + len(moved))
	copy(a.ref.cells[n:], moved)
	a.v().setCount(n + len(moved))
}

// Clone returns a deep copy of a.
func (a *Array[T]) Clone() Array[T] {
	return Array[T](a.v().Clone())
}

// Take moves a out and leaves an empty array behind.
func (a *Array[T]) Take() Array[T] {
	return Array[T](a.v().Take())
}
