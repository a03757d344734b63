package jsonvalue_airp

// Boolean is a view of a true or false cell. The tag is the whole payload.
type Boolean Value

// NewBoolean returns the boolean b.
func NewBoolean(b bool) Boolean {
	if b {
		return Boolean{tag: tagTrue}
	}
	return Boolean{tag: tagFalse}
}

// True returns the boolean true.
func True() Boolean { return NewBoolean(true) }

// False returns the boolean false.
func False() Boolean { return NewBoolean(false) }

// Bool returns the Go value of b.
func (b *Boolean) Bool() bool {
	return b.tag == tagTrue
}

// Set changes b in place.
func (b *Boolean) Set(x bool) {
	*b = NewBoolean(x)
}

// AsValue returns b as a generic value aliasing the same cell.
func (b *Boolean) AsValue() *Value {
	return (*Value)(b)
}
