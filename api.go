package jsonvalue_airp

import (
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromGo builds a value from a Go value following encoding/json for the
// kinds it supports: bools, integers, floats, strings, []byte (as a
// string), slices and arrays, maps with string keys, structs and pointers
// and interfaces. Struct fields honour the name, omitempty and string parts
// of their `json` tag and embedded structs are flattened. Marshaler
// interfaces are not consulted.
func FromGo(val interface{}) (Value, error) {
	if val == nil {
		return Value{}, nil
	}
	switch x := val.(type) {
	case Value:
		return x.Clone(), nil
	case *Value:
		if x == nil {
			return Value{}, nil
		}
		return x.Clone(), nil
	case String:
		return Value(x.Clone()), nil
	case Number:
		return Value(x), nil
	case Boolean:
		return Value(x), nil
	}
	return fromReflect(reflect.ValueOf(val))
}

func fromReflect(v reflect.Value) (Value, error) {
	switch v.Kind() {
	case reflect.Bool:
		return Value(NewBoolean(v.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Value(Int(v.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value(Uint(v.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return Value(Float(v.Float())), nil
	case reflect.String:
		return stringCell(v.String()), nil
	case reflect.Slice:
		if v.IsNil() {
			return Value{}, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return Value(NewStringBytes(v.Bytes())), nil
		}
		fallthrough
	case reflect.Array:
		arr := NewArray[Value]()
		arr.Reserve(v.Len())
		for i := 0; i < v.Len(); i++ {
			m, err := fromReflect(v.Index(i))
			if err != nil {
				return Value{}, errors.Wrapf(err, "index %d", i)
			}
			arr.PushBack(&m)
		}
		return Value(arr), nil
	case reflect.Map:
		if v.IsNil() {
			return Value{}, nil
		}
		if v.Type().Key().Kind() != reflect.String {
			return Value{}, errors.Wrapf(ErrUnsupported, "map key %s", v.Type().Key())
		}
		keys := v.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		obj := NewObject[Value]()
		obj.Reserve(len(keys))
		for _, key := range keys {
			m, err := fromReflect(v.MapIndex(key))
			if err != nil {
				return Value{}, errors.Wrapf(err, "key %q", key.String())
			}
			obj.At(key.String()).MoveFrom(&m)
		}
		return Value(obj), nil
	case reflect.Struct:
		obj := NewObject[Value]()
		for _, f := range structFields(v.Type()) {
			fv, ok := fieldOf(v, f.index)
			if !ok {
				continue
			}
			if f.opts.omitempty && isEmpty(fv) {
				continue
			}
			m, err := fromReflect(fv)
			if err != nil {
				return Value{}, errors.Wrapf(err, "field %s", f.name)
			}
			if f.opts.quoted {
				quote(&m)
			}
			obj.At(f.key).MoveFrom(&m)
		}
		return Value(obj), nil
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return Value{}, nil
		}
		return fromReflect(v.Elem())
	default:
		return Value{}, errors.Wrapf(ErrUnsupported, "%s", v.Kind())
	}
}

type fieldOpts struct {
	omitempty bool
	quoted    bool
}

// quote replaces a number or boolean by its text, as the ",string" option
// asks for.
func quote(m *Value) {
	var text []byte
	switch m.tag {
	case tagFalse, tagTrue:
		text = strconv.AppendBool(nil, m.tag == tagTrue)
	case tagInt:
		text = strconv.AppendInt(nil, int64(m.word()), 10)
	case tagUint:
		text = strconv.AppendUint(nil, m.word(), 10)
	case tagFloat:
		text = strconv.AppendFloat(nil, (*Number)(m).Float64(), 'g', -1, 64)
	default:
		return
	}
	*m = Value(NewStringBytes(text))
}

// field is an object member backed by a struct field, possibly promoted
// from an embedded struct.
type field struct {
	name   string
	key    string
	index  []int
	tagged bool
	opts   fieldOpts
}

// structFields lists the members of t by the rules of encoding/json:
// exported fields named by their `json` tag, embedded structs without a tag
// name flattened, and a shallower field hiding deeper ones of the same key.
// Equally deep fields of one key hide each other unless exactly one is
// tagged.
func structFields(t reflect.Type) []field {
	var all []field
	onPath := map[reflect.Type]bool{}
	var walk func(t reflect.Type, index []int)
	walk = func(t reflect.Type, index []int) {
		if onPath[t] {
			return
		}
		onPath[t] = true
		defer delete(onPath, t)
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := f.Tag.Get("json")
			if tag == "-" {
				continue
			}
			name, opts := parseTag(tag)
			path := append(index[:len(index):len(index)], i)
			if f.Anonymous && name == "" {
				ft := f.Type
				if ft.Kind() == reflect.Ptr {
					if !f.IsExported() {
						continue
					}
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					walk(ft, path)
					continue
				}
			}
			if !f.IsExported() {
				continue
			}
			key := name
			if key == "" {
				key = f.Name
			}
			all = append(all, field{name: f.Name, key: key, index: path, tagged: name != "", opts: opts})
		}
	}
	walk(t, nil)

	out := make([]field, 0, len(all))
	for i, f := range all {
		if dominant(all, i) {
			out = append(out, f)
		}
	}
	return out
}

func dominant(all []field, i int) bool {
	f := all[i]
	for j, g := range all {
		if j == i || g.key != f.key {
			continue
		}
		switch {
		case len(g.index) < len(f.index):
			return false
		case len(g.index) == len(f.index) && (g.tagged || !f.tagged):
			return false
		}
	}
	return true
}

func parseTag(tag string) (string, fieldOpts) {
	parts := strings.Split(tag, ",")
	var opts fieldOpts
	for _, opt := range parts[1:] {
		switch opt {
		case "omitempty":
			opts.omitempty = true
		case "string":
			opts.quoted = true
		}
	}
	return parts[0], opts
}

// fieldOf follows index from the struct v. It fails on a nil embedded
// pointer.
func fieldOf(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// settableField is fieldOf for writing: nil embedded pointers are
// allocated on the way.
func settableField(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, v.CanSet()
}

// isEmpty is the omitempty test of encoding/json.
func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return v.IsZero()
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}

// Interface creates the Go representation of v. The possible underlying
// types are:
//     Object    map[string]interface{}
//     Array     []interface{}
//     String    string
//     Number    int64, uint64 or float64, as stored
//     Bool      bool
//     Null      nil
// A nil v is null.
func (v *Value) Interface() interface{} {
	if v == nil {
		return nil
	}
	switch v.tag {
	case tagNull:
		return nil
	case tagFalse, tagTrue:
		return v.tag == tagTrue
	case tagInt:
		return int64(v.word())
	case tagUint:
		return v.word()
	case tagFloat:
		return (*Number)(v).Float64()
	case tagArray:
		cells := v.live()
		s := make([]interface{}, len(cells))
		for i := range cells {
			s[i] = cells[i].Interface()
		}
		return s
	case tagObject:
		cells := v.live()
		m := make(map[string]interface{}, len(cells)/2)
		for i := 0; i < len(cells); i += 2 {
			m[string(cells[i].bytes())] = cells[i+1].Interface()
		}
		return m
	default:
		return string(v.bytes())
	}
}

// Unpack reads v into the Go value val points to. Type mismatches surface as
// the errors of Cast.
func (v *Value) Unpack(val interface{}) error {
	rv := reflect.ValueOf(val)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Errorf("unpack into non-pointer %T", val)
	}
	return unpack(v, rv.Elem())
}

func unpack(v *Value, dst reflect.Value) error {
	switch dst.Kind() {
	case reflect.Interface:
		if dst.Type().NumMethod() != 0 {
			return errors.Wrapf(ErrUnsupported, "interface %s", dst.Type())
		}
		if i := v.Interface(); i != nil {
			dst.Set(reflect.ValueOf(i))
		} else {
			dst.Set(reflect.Zero(dst.Type()))
		}
		return nil
	case reflect.Ptr:
		if v.IsNull() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return unpack(v, dst.Elem())
	case reflect.Bool:
		b, err := Cast[Boolean](v)
		if err != nil {
			return err
		}
		dst.SetBool(b.Bool())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := Cast[Number](v)
		if err != nil {
			return err
		}
		i, ok := exactInt(n)
		if !ok || dst.OverflowInt(i) {
			return errors.Wrapf(ErrOverflow, "%v into %s", v.Interface(), dst.Type())
		}
		dst.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := Cast[Number](v)
		if err != nil {
			return err
		}
		u, ok := exactUint(n)
		if !ok || dst.OverflowUint(u) {
			return errors.Wrapf(ErrOverflow, "%v into %s", v.Interface(), dst.Type())
		}
		dst.SetUint(u)
		return nil
	case reflect.Float32, reflect.Float64:
		n, err := Cast[Number](v)
		if err != nil {
			return err
		}
		f := n.Float64()
		if dst.OverflowFloat(f) {
			return errors.Wrapf(ErrOverflow, "%v into %s", v.Interface(), dst.Type())
		}
		dst.SetFloat(f)
		return nil
	case reflect.String:
		s, err := Cast[String](v)
		if err != nil {
			return err
		}
		dst.SetString(s.String())
		return nil
	case reflect.Slice:
		if dst.Type().Elem().Kind() == reflect.Uint8 {
			if s := Probe[String](v); s != nil {
				dst.SetBytes(append([]byte(nil), s.Bytes()...))
				return nil
			}
		}
		arr, err := Cast[Array[Value]](v)
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(dst.Type(), arr.Len(), arr.Len())
		for i, e := range arr.All() {
			if err := unpack(e, out.Index(i)); err != nil {
				return errors.Wrapf(err, "index %d", i)
			}
		}
		dst.Set(out)
		return nil
	case reflect.Map:
		if dst.Type().Key().Kind() != reflect.String {
			return errors.Wrapf(ErrUnsupported, "map key %s", dst.Type().Key())
		}
		obj, err := Cast[Object[Value]](v)
		if err != nil {
			return err
		}
		if dst.IsNil() {
			dst.Set(reflect.MakeMapWithSize(dst.Type(), obj.Len()))
		}
		for k, e := range obj.All() {
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := unpack(e, elem); err != nil {
				return errors.Wrapf(err, "key %q", k.String())
			}
			dst.SetMapIndex(reflect.ValueOf(k.String()).Convert(dst.Type().Key()), elem)
		}
		return nil
	case reflect.Struct:
		obj, err := Cast[Object[Value]](v)
		if err != nil {
			return err
		}
		for _, f := range structFields(dst.Type()) {
			e, ok := obj.Lookup(f.key)
			if !ok {
				continue
			}
			fv, ok := settableField(dst, f.index)
			if !ok {
				continue
			}
			if err := unpack(e, fv); err != nil {
				return errors.Wrapf(err, "field %s", f.name)
			}
		}
		return nil
	default:
		return errors.Wrapf(ErrUnsupported, "%s", dst.Kind())
	}
}

// exactInt returns n as int64 if it holds a whole number in range.
func exactInt(n *Number) (int64, bool) {
	switch {
	case n.IsInt():
		return n.Int64(), true
	case n.IsUint():
		return n.Int64(), n.Uint64() <= math.MaxInt64
	}
	f := n.Float64()
	return int64(f), f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63
}

// exactUint returns n as uint64 if it holds a whole non-negative number in
// range.
func exactUint(n *Number) (uint64, bool) {
	switch {
	case n.IsUint():
		return n.Uint64(), true
	case n.IsInt():
		return n.Uint64(), n.Int64() >= 0
	}
	f := n.Float64()
	return uint64(f), f == math.Trunc(f) && f >= 0 && f < 1<<64
}
