package jsonvalue_airp

// Kind is an enum for the logical JSON types a Value can hold.
type Kind uint8

//go:generate stringer -type Kind -trimprefix Kind

// Kinds to compare values with. The zero value is KindNull, matching the zero
// Value.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// kindOf folds the storage tags into the six logical kinds. All numeric
// encodings are KindNumber, both boolean tags are KindBool and inline and heap
// strings are KindString.
func kindOf(t tag) Kind {
	switch t {
	case tagNull:
		return KindNull
	case tagFalse, tagTrue:
		return KindBool
	case tagInt, tagUint, tagFloat:
		return KindNumber
	case tagObject:
		return KindObject
	case tagArray:
		return KindArray
	default:
		return KindString
	}
}
