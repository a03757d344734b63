package jsonvalue_airp

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Value is one cell of a JSON document. Depending on its tag it holds:
//     tag                  payload
//     null, false, true    nothing
//     int64/uint64/float64 8 bytes in data
//     short00..short15     up to 15 string bytes in data
//     string               heap text in ref, length in data
//     array                heap cells in ref, count and capacity class in data
//     object               heap key/value cells and index in ref, ditto
//
// A cell owns its heap payload exclusively. Plain assignment of a cell that
// holds a heap string, array or object shares that payload; use Clone to
// copy and Take or MoveFrom to transfer ownership.
//
// The zero Value is null.
type Value struct {
	ref  *slab
	data [maxInline]byte
	tag  tag
}

// slab is the heap payload of a string, array or object cell.
type slab struct {
	text  []byte   // string bytes plus a terminating NUL
	cells []Value  // array elements, or object keys and values interleaved
	index []uint32 // object slots holding entry+1; 0 marks a free slot
}

// Lengths a cell can record: 56 bits for strings, 48 bits for containers.
const (
	maxStringLen = 1<<56 - 1
	maxCount     = 1<<48 - 1
)

// Null returns the null value.
func Null() Value {
	return Value{}
}

func (v *Value) word() uint64 {
	return binary.LittleEndian.Uint64(v.data[:8])
}

func (v *Value) setWord(w uint64) {
	binary.LittleEndian.PutUint64(v.data[:8], w)
}

func (v *Value) count() int {
	return int(v.word())
}

func (v *Value) setCount(n int) {
	v.setWord(uint64(n))
}

func (v *Value) class() uint8 {
	return v.data[8]
}

func (v *Value) setClass(k uint8) {
	v.data[8] = k
}

// Kind returns the logical JSON kind of v.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return kindOf(v.tag)
}

// IsNull reports whether v holds null.
func (v *Value) IsNull() bool {
	return v.tag == tagNull
}

// Clone returns a deep copy of v. Heap strings get a fresh buffer and
// containers a fresh buffer of the smallest capacity class that holds their
// elements.
func (v *Value) Clone() Value {
	c := *v
	switch v.tag {
	case tagString:
		text := make([]byte, len(v.ref.text))
		copy(text, v.ref.text)
		c.ref = &slab{text: text}
	case tagArray:
		c.ref, c.data[8] = nil, 0
		n := v.count()
		if n == 0 {
			break
		}
		k := classFor(n)
		cells := make([]Value, capacity(k))
		for i, e := range v.ref.cells[:n] {
			cells[i] = e.Clone()
		}
		c.ref = &slab{cells: cells}
		c.setClass(k)
	case tagObject:
		c.ref, c.data[8] = nil, 0
		n := v.count()
		if n == 0 {
			break
		}
		k := classFor(n)
		cells := make([]Value, 2*capacity(k))
		index := make([]uint32, indexSize(k))
		for i, e := range v.ref.cells[:2*n] {
			cells[i] = e.Clone()
		}
		for i := 0; i < n; i++ {
			indexEntry(index, cells, i)
		}
		c.ref = &slab{cells: cells, index: index}
		c.setClass(k)
	}
	return c
}

// Take moves v out and returns it. A heap string, array or object leaves
// behind an empty value of the same kind; scalars and inline strings are
// left as they are.
func (v *Value) Take() Value {
	out := *v
	switch {
	case v.tag == tagString:
		*v = Value{tag: tagShort00}
	case v.tag.owns():
		*v = Value{tag: v.tag}
	}
	return out
}

// MoveFrom releases what v holds and moves src into it.
func (v *Value) MoveFrom(src *Value) {
	if v == src {
		return
	}
	*v = src.Take()
}

// Swap exchanges the contents of v and o.
func (v *Value) Swap(o *Value) {
	*v, *o = *o, *v
}

// Reset releases any heap payload and sets v to null.
func (v *Value) Reset() {
	*v = Value{}
}

// bytes returns the string payload of a string cell.
func (v *Value) bytes() []byte {
	if v.tag.isInline() {
		n := v.tag.inlineLen()
		return v.data[:n:n]
	}
	n := v.word()
	return v.ref.text[:n:n]
}

// live returns the occupied cells of an array or object.
func (v *Value) live() []Value {
	if v.ref == nil {
		return nil
	}
	if v.tag == tagObject {
		return v.ref.cells[:2*v.count()]
	}
	return v.ref.cells[:v.count()]
}

// Equal compares v and o and all their children. Object key order is
// ignored and numbers compare by value across encodings.
func (v *Value) Equal(o *Value) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil || v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindNull:
		return true
	case KindBool:
		return v.tag == o.tag
	case KindNumber:
		return numberEqual(v, o)
	case KindString:
		return bytes.Equal(v.bytes(), o.bytes())
	case KindArray:
		a, b := v.live(), o.live()
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(&b[i]) {
				return false
			}
		}
		return true
	default:
		if v.count() != o.count() {
			return false
		}
		cells := v.live()
		for i := 0; i < len(cells); i += 2 {
			m := o.lookup(string(cells[i].bytes()))
			if m == nil || !cells[i+1].Equal(m) {
				return false
			}
		}
		return true
	}
}

func numberEqual(a, b *Value) bool {
	if a.tag == b.tag {
		if a.tag == tagFloat {
			return math.Float64frombits(a.word()) == math.Float64frombits(b.word())
		}
		return a.word() == b.word()
	}
	if a.tag > b.tag {
		a, b = b, a
	}
	switch {
	case a.tag == tagInt && b.tag == tagUint:
		return int64(a.word()) >= 0 && a.word() == b.word()
	case a.tag == tagInt:
		return float64(int64(a.word())) == math.Float64frombits(b.word())
	default:
		return float64(a.word()) == math.Float64frombits(b.word())
	}
}
