package jsonvalue_airp

import (
	"bytes"
	"strings"
	"testing"
)

// text returns n distinct-ish bytes.
func text(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(i%26)
	}
	return string(b)
}

func TestZeroValueIsNull(t *testing.T) {
	var v Value
	if v.tag != tagNull || v.Kind() != KindNull || !v.IsNull() {
		t.Errorf("zero value is %s", v.tag)
	}
	var p *Value
	if p.Kind() != KindNull {
		t.Errorf("nil value kind %s", p.Kind())
	}
}

func TestShortStrings(t *testing.T) {
	for n := 0; n <= maxInline; n++ {
		have := text(n)
		s := NewString(have)
		if !s.Inline() || s.ref != nil {
			t.Errorf("length %d: not inline", n)
		}
		if s.tag != shortTag(n) {
			t.Errorf("length %d: tag %s", n, s.tag)
		}
		if s.Len() != n || s.String() != have {
			t.Errorf("length %d: got %d %q", n, s.Len(), s.String())
		}
		b := NewStringBytes([]byte(have))
		if !s.Equal(&b) {
			t.Errorf("length %d: bytes constructor differs", n)
		}
	}
}

func TestHeapStrings(t *testing.T) {
	for _, n := range []int{16, 17, 64, 1000} {
		have := text(n)
		s := NewString(have)
		if s.Inline() || s.tag != tagString {
			t.Errorf("length %d: stored inline", n)
		}
		if s.Len() != n || s.String() != have {
			t.Errorf("length %d: got %d %q", n, s.Len(), s.String())
		}
		if len(s.ref.text) != n+1 || s.ref.text[n] != 0 {
			t.Errorf("length %d: buffer not terminated", n)
		}
		c := s.Clone()
		if &c.ref.text[0] == &s.ref.text[0] {
			t.Errorf("length %d: clone shares the buffer", n)
		}
		if !c.Equal(&s) {
			t.Errorf("length %d: clone differs", n)
		}
	}
}

func TestStringEqualAcrossStorage(t *testing.T) {
	inline := NewString("abc")
	var heap Value
	heap.ref = &slab{text: []byte("abc\x00")}
	heap.setWord(3)
	heap.tag = tagString
	hs := (*String)(&heap)
	if !inline.Equal(hs) || inline.Compare(hs) != 0 {
		t.Errorf("inline and heap %q differ", "abc")
	}
	if !inline.AsValue().Equal(&heap) {
		t.Error("Value.Equal depends on storage")
	}
	long := NewString(text(20))
	if inline.Compare(&long) >= 0 {
		t.Errorf("want %q < %q", inline.String(), long.String())
	}
}

func TestTakeResetsToSameKind(t *testing.T) {
	tests := []struct {
		name string
		have Value
		want tag
	}{
		{"heap string", Value(NewString(text(40))), tagShort00},
		{"inline string", Value(NewString("hi")), shortTag(2)},
		{"array", func() Value {
			a := NewArray[Value]()
			one := Value(Int(1))
			a.Append(&one)
			return Value(a)
		}(), tagArray},
		{"object", func() Value {
			o := NewObject[Value]()
			*o.At("k") = Value(True())
			return Value(o)
		}(), tagObject},
		{"number", Value(Float(1.5)), tagFloat},
		{"null", Value{}, tagNull},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src := test.have
			ref := src.ref
			dst := src.Take()
			if src.tag != test.want {
				t.Errorf("source left as %s, want %s", src.tag, test.want)
			}
			if dst.ref != ref {
				t.Error("payload was not transferred")
			}
			if src.tag.owns() && src.ref != nil {
				t.Error("source still owns a payload")
			}
			if src.tag == tagArray || src.tag == tagObject {
				if src.count() != 0 || src.class() != 0 {
					t.Errorf("source not empty: len %d class %d", src.count(), src.class())
				}
			}
		})
	}
}

func TestMoveFrom(t *testing.T) {
	src := Value(NewString(text(30)))
	ref := src.ref
	dst := Value(Int(4))
	dst.MoveFrom(&src)
	if dst.ref != ref || dst.tag != tagString {
		t.Error("move did not transfer the buffer")
	}
	if src.tag != tagShort00 {
		t.Errorf("source left as %s", src.tag)
	}
	dst.MoveFrom(&dst)
	if dst.ref != ref {
		t.Error("self move lost the payload")
	}
}

func TestCapacityLadder(t *testing.T) {
	a := NewArray[Number]()
	if a.Cap() != 0 || a.ref != nil {
		t.Fatalf("new array allocated %d slots", a.Cap())
	}
	want := map[int]int{1: 3, 3: 3, 4: 7, 7: 7, 8: 15, 16: 31, 100: 127}
	for i := 1; i <= 100; i++ {
		n := Int(int64(i))
		a.PushBack(&n)
		if c, ok := want[i]; ok && a.Cap() != c {
			t.Errorf("after %d pushes cap %d, want %d", i, a.Cap(), c)
		}
		if len(a.ref.cells) != a.Cap() {
			t.Errorf("buffer of %d cells for cap %d", len(a.ref.cells), a.Cap())
		}
	}
	for i, n := range a.All() {
		if n.Int64() != int64(i+1) {
			t.Fatalf("element %d is %d", i, n.Int64())
		}
	}
}

func TestGrowClass(t *testing.T) {
	tests := []struct {
		k    uint8
		n    int
		want uint8
	}{
		{0, 1, 2},
		{0, 3, 2},
		{0, 4, 3},
		{2, 4, 3},
		{3, 8, 4},
		{0, 100, 7},
		{5, 32, 6},
	}
	for _, test := range tests {
		if got := growClass(test.k, test.n); got != test.want {
			t.Errorf("growClass(%d, %d) = %d, want %d", test.k, test.n, got, test.want)
		}
	}
	for n, want := range []uint8{0, 1, 2, 2, 3, 3, 3, 3, 4} {
		if got := classFor(n); got != want {
			t.Errorf("classFor(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestReserveKeepsBuffer(t *testing.T) {
	a := NewArray[Value]()
	a.Reserve(5)
	if a.Cap() != 7 {
		t.Fatalf("cap %d, want 7", a.Cap())
	}
	ref := a.ref
	for _, n := range []int{0, 3, 7} {
		a.Reserve(n)
		if a.ref != ref {
			t.Errorf("Reserve(%d) reallocated", n)
		}
	}
	a.Reserve(8)
	if a.ref == ref || a.Cap() != 15 {
		t.Errorf("Reserve(8) cap %d", a.Cap())
	}
}

func TestGrowthRelocatesWithoutCopy(t *testing.T) {
	a := NewArray[String]()
	s0, s1, s2 := NewString(text(20)), NewString(text(21)), NewString(text(22))
	a.Append(&s0, &s1, &s2)
	refs := make([]*slab, 0, 3)
	for _, s := range a.All() {
		refs = append(refs, s.ref)
	}
	old := a.ref.cells
	a.Reserve(50)
	for i, s := range a.All() {
		if s.ref != refs[i] {
			t.Errorf("element %d was duplicated on growth", i)
		}
	}
	for i := range old {
		if old[i].ref != nil {
			t.Errorf("old slot %d still references a payload", i)
		}
	}
}

func TestPushBackMoves(t *testing.T) {
	a := NewArray[String]()
	s := NewString(text(32))
	ref := s.ref
	a.PushBack(&s)
	if a.At(0).ref != ref {
		t.Error("push back duplicated the payload")
	}
	if s.tag != tagShort00 || s.ref != nil {
		t.Errorf("source left as %s", s.tag)
	}
	// pushing an element of the array itself
	a.PushBack(a.At(0))
	if a.Len() != 2 || a.At(1).ref != ref || a.At(0).Len() != 0 {
		t.Errorf("self push: %q %q", a.At(0).String(), a.At(1).String())
	}
}

func TestCloneSizedToCount(t *testing.T) {
	a := NewArray[Number]()
	a.Reserve(100)
	for i := 0; i < 5; i++ {
		n := Uint(uint64(i))
		a.PushBack(&n)
	}
	c := a.Clone()
	if c.Cap() != 7 || len(c.ref.cells) != 7 {
		t.Errorf("clone cap %d, want 7", c.Cap())
	}
	empty := NewArray[Number]()
	empty.Reserve(10)
	ce := empty.Clone()
	if ce.ref != nil || ce.Cap() != 0 {
		t.Errorf("clone of empty array allocated %d", ce.Cap())
	}

	o := NewObject[Value]()
	o.Reserve(60)
	*o.At("a") = Value(Int(1))
	oc := o.Clone()
	if oc.Cap() != 1 || len(oc.ref.index) != indexSize(1) {
		t.Errorf("object clone cap %d", oc.Cap())
	}
	if m, ok := oc.Lookup("a"); !ok || !m.Equal(o.AsValue().lookup("a")) {
		t.Error("clone lost its index")
	}
}

func TestObjectIndex(t *testing.T) {
	o := NewObject[Number]()
	keys := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		keys = append(keys, strings.Repeat("k", i%40)+text(i%7))
	}
	for i, k := range keys {
		*o.At(k) = Int(int64(i))
	}
	uniq := map[string]int{}
	for i, k := range keys {
		uniq[k] = i
	}
	if o.Len() != len(uniq) {
		t.Fatalf("len %d, want %d", o.Len(), len(uniq))
	}
	for k, i := range uniq {
		n, ok := o.Lookup(k)
		if !ok || n.Int64() != int64(i) {
			t.Errorf("key %q: %v %v", k, ok, n)
		}
	}
	used := 0
	for _, e := range o.ref.index {
		if e != 0 {
			used++
		}
	}
	if used != o.Len() || used*2 > len(o.ref.index) {
		t.Errorf("index holds %d of %d slots for %d entries", used, len(o.ref.index), o.Len())
	}
}

func TestClearKeepsCapacity(t *testing.T) {
	o := NewObject[String]()
	for i := 0; i < 10; i++ {
		*o.At(text(i + 10)) = NewString(text(30))
	}
	ref, c := o.ref, o.Cap()
	o.Clear()
	if o.Len() != 0 || o.Cap() != c || o.ref != ref {
		t.Errorf("clear: len %d cap %d", o.Len(), o.Cap())
	}
	if o.Has(text(10)) {
		t.Error("cleared key still found")
	}
	for _, c := range o.ref.cells {
		if c.ref != nil {
			t.Fatal("cleared slot still references a payload")
		}
	}
	*o.At("again") = NewString("x")
	if s, ok := o.Lookup("again"); !ok || s.String() != "x" {
		t.Error("insert after clear failed")
	}

	a := NewArray[Value]()
	one, two := Value(Int(1)), Value(Int(2))
	a.Append(&one, &two)
	a.Clear()
	if !a.Empty() || a.Cap() != 3 {
		t.Errorf("array clear: len %d cap %d", a.Len(), a.Cap())
	}
}

func TestEqual(t *testing.T) {
	mk := func(kv ...string) Value {
		o := NewObject[Value]()
		for i := 0; i < len(kv); i += 2 {
			*o.At(kv[i]) = Value(NewString(kv[i+1]))
		}
		return Value(o)
	}
	tests := []struct {
		a, b Value
		want bool
	}{
		{Value{}, Value{}, true},
		{Value(True()), Value(False()), false},
		{Value(Int(3)), Value(Uint(3)), true},
		{Value(Int(-1)), Value(Uint(1<<64 - 1)), false},
		{Value(Int(3)), Value(Float(3)), true},
		{Value(Uint(3)), Value(Float(3.5)), false},
		{Value(NewString("a")), Value(NewString("a")), true},
		{Value(NewString("a")), Value(Int(1)), false},
		{mk("a", "1", "b", "2"), mk("b", "2", "a", "1"), true},
		{mk("a", "1", "b", "2"), mk("a", "1", "c", "2"), false},
		{mk("a", "1"), mk("a", "1", "b", "2"), false},
		{Value(NewArray[Value]()), Value(NewArray[Value]()), true},
		{Value(NewArray[Value]()), Value(NewObject[Value]()), false},
	}
	for i, test := range tests {
		if got := test.a.Equal(&test.b); got != test.want {
			t.Errorf("%d: Equal = %v, want %v", i, got, test.want)
		}
	}
}

func TestTagString(t *testing.T) {
	var b bytes.Buffer
	for tg := tagNull; tg <= tagShort15+1; tg++ {
		b.WriteString(tg.String())
		b.WriteByte(' ')
	}
	want := "null false true int64 uint64 float64 object array string " +
		"short00 short01 short02 short03 short04 short05 short06 short07 " +
		"short08 short09 short10 short11 short12 short13 short14 short15 tag-unknown "
	if b.String() != want {
		t.Errorf("got %q", b.String())
	}
}
