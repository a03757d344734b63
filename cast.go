package jsonvalue_airp

// Elem is implemented by the view types of this package: Value, String,
// Number, Boolean, Array, Object and Optional. It lets generic containers
// and Cast treat a cell as a T without copying it.
type Elem[T any] interface {
	// bind views the cell v as a T.
	bind(v *Value) *T
	// unbind returns the cell behind p.
	unbind(p *T) *Value
	// admits reports whether a cell tagged t may be viewed as a T.
	admits(t tag) bool
	// mismatch is the error for a cell tagged t that is not admitted.
	mismatch(t tag) error
	// blank is the value a new T starts out with.
	blank() Value
}

// Cast returns v viewed as a T. The result aliases v. It fails with an
// error wrapping one of the ErrNot... sentinels when the tag of v does not
// fit T.
func Cast[T Elem[T]](v *Value) (*T, error) {
	var z T
	if !z.admits(v.tag) {
		return nil, z.mismatch(v.tag)
	}
	return z.bind(v), nil
}

// Probe returns v viewed as a T, or nil when the tag of v does not fit T.
func Probe[T Elem[T]](v *Value) *T {
	var z T
	if !z.admits(v.tag) {
		return nil
	}
	return z.bind(v)
}

// MustCast is like Cast but panics on a mismatch.
func MustCast[T Elem[T]](v *Value) *T {
	p, err := Cast[T](v)
	if err != nil {
		panic(err)
	}
	return p
}

func (Value) bind(v *Value) *Value       { return v }
func (Value) unbind(p *Value) *Value     { return p }
func (Value) admits(tag) bool            { return true }
func (Value) mismatch(tag) error         { return nil }
func (Value) blank() Value               { return Value{} }
func (String) bind(v *Value) *String     { return (*String)(v) }
func (String) unbind(p *String) *Value   { return (*Value)(p) }
func (String) admits(t tag) bool         { return t.isString() }
func (String) mismatch(t tag) error      { return newCastError(ErrNotString, t) }
func (String) blank() Value              { return Value{tag: tagShort00} }
func (Number) bind(v *Value) *Number     { return (*Number)(v) }
func (Number) unbind(p *Number) *Value   { return (*Value)(p) }
func (Number) admits(t tag) bool         { return t.isNumber() }
func (Number) mismatch(t tag) error      { return newCastError(ErrNotNumber, t) }
func (Number) blank() Value              { return Value{tag: tagInt} }
func (Boolean) bind(v *Value) *Boolean   { return (*Boolean)(v) }
func (Boolean) unbind(p *Boolean) *Value { return (*Value)(p) }
func (Boolean) admits(t tag) bool        { return t.isBool() }
func (Boolean) mismatch(t tag) error     { return newCastError(ErrNotBoolean, t) }
func (Boolean) blank() Value             { return Value{tag: tagFalse} }

func (Array[T]) bind(v *Value) *Array[T]   { return (*Array[T])(v) }
func (Array[T]) unbind(p *Array[T]) *Value { return (*Value)(p) }
func (Array[T]) admits(t tag) bool         { return t == tagArray }
func (Array[T]) mismatch(t tag) error      { return newCastError(ErrNotArray, t) }
func (Array[T]) blank() Value              { return Value{tag: tagArray} }

func (Object[T]) bind(v *Value) *Object[T]   { return (*Object[T])(v) }
func (Object[T]) unbind(p *Object[T]) *Value { return (*Value)(p) }
func (Object[T]) admits(t tag) bool          { return t == tagObject }
func (Object[T]) mismatch(t tag) error       { return newCastError(ErrNotObject, t) }
func (Object[T]) blank() Value               { return Value{tag: tagObject} }

// An optional admits null and whatever its element admits.
func (Optional[T]) bind(v *Value) *Optional[T]   { return (*Optional[T])(v) }
func (Optional[T]) unbind(p *Optional[T]) *Value { return (*Value)(p) }
func (Optional[T]) blank() Value                 { return Value{} }

func (Optional[T]) admits(t tag) bool {
	var z T
	return t == tagNull || z.admits(t)
}

func (Optional[T]) mismatch(t tag) error {
	var z T
	return z.mismatch(t)
}
