package jsonvalue_airp

import (
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// Container capacity moves along a ladder of classes: class k holds
// 2^k - 1 elements, class 0 holds none and has no buffer.
func capacity(k uint8) int {
	return 1<<k - 1
}

// classFor returns the smallest class holding n elements.
func classFor(n int) uint8 {
	k := uint8(0)
	for capacity(k) < n {
		k++
	}
	return k
}

// growClass steps at least one class up from k, and never below class 2,
// until n elements fit.
func growClass(k uint8, n int) uint8 {
	k = max(k+1, 2)
	for capacity(k) < n {
		k++
	}
	return k
}

// maxEntries bounds objects so that entry positions fit the uint32 index.
const maxEntries = 1<<31 - 1

// indexSize is the number of index slots of an object of class k. Keeping
// twice the capacity leaves the table at most half full.
func indexSize(k uint8) int {
	return 1 << (k + 1)
}

// reserveCells makes room for n elements in the array v. The new buffer is
// allocated before anything in v changes.
func (v *Value) reserveCells(n int) {
	if n <= capacity(v.class()) {
		return
	}
	if n > maxCount {
		panic(errors.Wrapf(ErrTooLarge, "array of %d elements", n))
	}
	k := growClass(v.class(), n)
	cells := make([]Value, capacity(k))
	if v.ref != nil {
		old := v.ref.cells[:v.count()]
		copy(cells, old)
		clear(old)
	}
	v.ref = &slab{cells: cells}
	v.setClass(k)
}

// reserveEntries is reserveCells for objects; the index is rebuilt for the
// new table size.
func (v *Value) reserveEntries(n int) {
	if n <= capacity(v.class()) {
		return
	}
	if n > maxEntries {
		panic(errors.Wrapf(ErrTooLarge, "object of %d entries", n))
	}
	k := growClass(v.class(), n)
	cells := make([]Value, 2*capacity(k))
	index := make([]uint32, indexSize(k))
	live := v.count()
	if v.ref != nil {
		old := v.ref.cells[:2*live]
		copy(cells, old)
		clear(old)
	}
	for i := 0; i < live; i++ {
		indexEntry(index, cells, i)
	}
	v.ref = &slab{cells: cells, index: index}
	v.setClass(k)
}

// indexEntry records entry i of cells in index. The key must not be in the
// index yet.
func indexEntry(index []uint32, cells []Value, i int) {
	mask := uint64(len(index) - 1)
	s := xxhash.Sum64(cells[2*i].bytes()) & mask
	for index[s] != 0 {
		s = (s + 1) & mask
	}
	index[s] = uint32(i + 1)
}

// probe looks key up in the object v. It returns the index slot where the
// search ended and the entry found there, or -1.
func (v *Value) probe(key string) (slot, entry int) {
	if v.ref == nil {
		return -1, -1
	}
	index, cells := v.ref.index, v.ref.cells
	mask := uint64(len(index) - 1)
	for s := xxhash.Sum64String(key) & mask; ; s = (s + 1) & mask {
		e := index[s]
		if e == 0 {
			return int(s), -1
		}
		if string(cells[2*(e-1)].bytes()) == key {
			return int(s), int(e - 1)
		}
	}
}

// lookup returns the value stored under key in the object v, or nil.
func (v *Value) lookup(key string) *Value {
	if _, e := v.probe(key); e >= 0 {
		return &v.ref.cells[2*e+1]
	}
	return nil
}

// upsert returns the value stored under key in the object v, inserting
// blank under a new key cell first when key is absent.
func (v *Value) upsert(key string, blank Value) *Value {
	if m := v.lookup(key); m != nil {
		return m
	}
	k := stringCell(key)
	n := v.count()
	v.reserveEntries(n + 1)
	s, _ := v.probe(key)
	v.ref.cells[2*n] = k
	v.ref.cells[2*n+1] = blank
	v.ref.index[s] = uint32(n + 1)
	v.setCount(n + 1)
	return &v.ref.cells[2*n+1]
}

// clearEntries empties an array or object and keeps its buffer.
func (v *Value) clearEntries() {
	clear(v.live())
	if v.ref != nil && v.ref.index != nil {
		clear(v.ref.index)
	}
	v.setCount(0)
}
