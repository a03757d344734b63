package jsonvalue_airp

// tag is the discriminant stored in every cell. It alone decides which part
// of the cell is meaningful.
type tag uint8

// The zero tag is null so that the zero Value is a valid JSON null.
// Every tag from tagString upwards is a string; the ones above tagString are
// inline and encode their length.
const (
	tagNull tag = iota
	tagFalse
	tagTrue
	tagInt
	tagUint
	tagFloat
	tagObject
	tagArray
	tagString
	tagShort00
)

// maxInline is the longest string stored inside the cell.
const maxInline = 15

// tagShort15 is the last inline string tag.
const tagShort15 = tagShort00 + maxInline

func shortTag(n int) tag {
	return tagShort00 + tag(n)
}

func (t tag) isString() bool {
	return t >= tagString
}

func (t tag) isInline() bool {
	return t > tagString
}

func (t tag) isNumber() bool {
	return t == tagInt || t == tagUint || t == tagFloat
}

func (t tag) isBool() bool {
	return t == tagFalse || t == tagTrue
}

// owns reports whether a cell with this tag may hold a heap payload.
func (t tag) owns() bool {
	return t == tagString || t == tagObject || t == tagArray
}

// inlineLen is only meaningful when t.isInline().
func (t tag) inlineLen() int {
	return int(t - tagShort00)
}

// String generates a readable form of a tag meant for debugging.
func (t tag) String() string {
	switch {
	case t == tagNull:
		return "null"
	case t == tagFalse:
		return "false"
	case t == tagTrue:
		return "true"
	case t == tagInt:
		return "int64"
	case t == tagUint:
		return "uint64"
	case t == tagFloat:
		return "float64"
	case t == tagObject:
		return "object"
	case t == tagArray:
		return "array"
	case t == tagString:
		return "string"
	case t <= tagShort15:
		return "short" + string([]byte{'0' + byte(t.inlineLen()/10), '0' + byte(t.inlineLen()%10)})
	default:
		return "tag-unknown"
	}
}
