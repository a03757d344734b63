package jsonvalue_airp

import (
	"io"
	"strconv"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
)

// Dump writes the storage layout of v to w, one cell per line, children
// indented by indent. It shows how each cell is stored (tag, inline or heap,
// length and capacity); it is not JSON.
//
//	object len=1 cap=3
//	  short01 "a": array len=2 cap=3
//	    [0] int64 5
//	    [1] string len=16 "0123456789abcdef"
func Dump(w io.Writer, v *Value, indent string) (int, error) {
	if v == nil {
		return 0, errors.New("dump of <nil>")
	}
	buf := make([]byte, 0, 64)
	var inner func(m *Value, level int)
	inner = func(m *Value, level int) { // closure with single buffer
		buf = appendCell(buf, m)
		buf = append(buf, '\n')
		switch m.tag {
		case tagArray:
			cells := m.live()
			for i := range cells {
				buf = append(buf, strings.Repeat(indent, level+1)...)
				buf = append(buf, '[')
				buf = strconv.AppendInt(buf, int64(i), 10)
				buf = append(buf, "] "...)
				inner(&cells[i], level+1)
			}
		case tagObject:
			cells := m.live()
			for i := 0; i < len(cells); i += 2 {
				buf = append(buf, strings.Repeat(indent, level+1)...)
				buf = appendCell(buf, &cells[i])
				buf = append(buf, ": "...)
				inner(&cells[i+1], level+1)
			}
		}
	}
	inner(v, 0)
	return w.Write(buf)
}

func appendCell(buf []byte, m *Value) []byte {
	buf = append(buf, m.tag.String()...)
	switch {
	case m.tag == tagInt:
		buf = append(buf, ' ')
		return strconv.AppendInt(buf, int64(m.word()), 10)
	case m.tag == tagUint:
		buf = append(buf, ' ')
		return strconv.AppendUint(buf, m.word(), 10)
	case m.tag == tagFloat:
		buf = append(buf, ' ')
		return strconv.AppendFloat(buf, (*Number)(m).Float64(), 'g', -1, 64)
	case m.tag == tagArray || m.tag == tagObject:
		buf = append(buf, " len="...)
		buf = strconv.AppendInt(buf, int64(m.count()), 10)
		buf = append(buf, " cap="...)
		return strconv.AppendInt(buf, int64(capacity(m.class())), 10)
	case m.tag == tagString:
		buf = append(buf, " len="...)
		buf = strconv.AppendInt(buf, int64(m.count()), 10)
		fallthrough
	case m.tag.isInline():
		buf = append(buf, ' ')
		return strconv.AppendQuote(buf, string(m.bytes()))
	default:
		return buf
	}
}

// cellSize is the in-memory size of one cell.
const cellSize = int(unsafe.Sizeof(Value{}))

// Footprint summarizes the memory a value tree occupies.
type Footprint struct {
	Cells         int // cells in the tree, object keys included
	InlineStrings int // strings stored inside their cell, keys included
	HeapStrings   int // strings with a heap buffer, keys included
	Containers    int // arrays and objects
	SlackSlots    int // allocated but unused container slots
	HeapBytes     int // bytes of heap payloads, buffers and indexes
}

// Bytes returns the total size of the tree: the root cell plus every heap
// payload.
func (f Footprint) Bytes() int {
	return cellSize + f.HeapBytes
}

// Measure walks v and reports its Footprint.
func Measure(v *Value) Footprint {
	var f Footprint
	measure(v, &f)
	return f
}

func measure(v *Value, f *Footprint) {
	f.Cells++
	switch v.tag {
	case tagString:
		f.HeapStrings++
		f.HeapBytes += len(v.ref.text)
	case tagArray, tagObject:
		f.Containers++
		if v.ref == nil {
			return
		}
		slots := capacity(v.class())
		f.SlackSlots += slots - v.count()
		f.HeapBytes += len(v.ref.cells)*cellSize + len(v.ref.index)*4
		cells := v.live()
		for i := range cells {
			measure(&cells[i], f)
		}
	default:
		if v.tag.isInline() {
			f.InlineStrings++
		}
	}
}
