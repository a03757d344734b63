package jsonvalue_airp

import (
	"iter"
)

// Object is a view of an object cell mapping string keys to values viewed
// as T. Keys are unique. Entries live in one heap buffer of key/value cell
// pairs with the same capacity ladder as Array, next to an open addressing
// index hashed with xxhash. Iteration follows storage order, which is not
// guaranteed to be insertion order.
//
// Pointers returned by At, Lookup and All are valid until the next call
// that grows or clears the object.
type Object[T Elem[T]] Value

// NewObject returns an empty object. Nothing is allocated until the first
// entry arrives.
func NewObject[T Elem[T]]() Object[T] {
	return Object[T]{tag: tagObject}
}

func (o *Object[T]) v() *Value {
	return (*Value)(o)
}

// AsValue returns o as a generic value aliasing the same cell.
func (o *Object[T]) AsValue() *Value {
	return o.v()
}

// Len returns the number of entries.
func (o *Object[T]) Len() int {
	return o.v().count()
}

// Empty reports whether o has no entries.
func (o *Object[T]) Empty() bool {
	return o.Len() == 0
}

// Cap returns the number of entries o can hold before it reallocates.
func (o *Object[T]) Cap() int {
	return capacity(o.v().class())
}

// At returns the value stored under key. A missing key is inserted first
// with the initial value of T: null, "", 0, false or an empty container.
func (o *Object[T]) At(key string) *T {
	var z T
	return z.bind(o.v().upsert(key, z.blank()))
}

// AtBytes is At for a key given as bytes.
func (o *Object[T]) AtBytes(key []byte) *T {
	return o.At(string(key))
}

// Lookup returns the value stored under key without inserting it.
func (o *Object[T]) Lookup(key string) (*T, bool) {
	var z T
	if m := o.v().lookup(key); m != nil {
		return z.bind(m), true
	}
	return nil, false
}

// Has reports whether key is present.
func (o *Object[T]) Has(key string) bool {
	return o.v().lookup(key) != nil
}

// All iterates the entries. The key cells must not be modified.
func (o *Object[T]) All() iter.Seq2[*String, *T] {
	return func(yield func(*String, *T) bool) {
		var z T
		cells := o.v().live()
		for i := 0; i < len(cells); i += 2 {
			if !yield((*String)(&cells[i]), z.bind(&cells[i+1])) {
				return
			}
		}
	}
}

// Keys returns the keys in iteration order.
func (o *Object[T]) Keys() []string {
	keys := make([]string, 0, o.Len())
	for k := range o.All() {
		keys = append(keys, k.String())
	}
	return keys
}

// Clear drops all entries and keeps the buffer.
func (o *Object[T]) Clear() {
	o.v().clearEntries()
}

// Reserve makes room for at least n entries. It does nothing when o can
// already hold n.
func (o *Object[T]) Reserve(n int) {
	o.v().reserveEntries(n)
}

// Clone returns a deep copy of o.
func (o *Object[T]) Clone() Object[T] {
	return Object[T](o.v().Clone())
}

// Take moves o out and leaves an empty object behind.
func (o *Object[T]) Take() Object[T] {
	return Object[T](o.v().Take())
}
