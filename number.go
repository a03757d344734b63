package jsonvalue_airp

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is a view of a numeric cell. A number is stored as int64, uint64 or
// float64, whichever it was built from.
type Number Value

// Int returns a number stored as a signed integer.
func Int(n int64) Number {
	v := Value{tag: tagInt}
	v.setWord(uint64(n))
	return Number(v)
}

// Uint returns a number stored as an unsigned integer.
func Uint(n uint64) Number {
	v := Value{tag: tagUint}
	v.setWord(n)
	return Number(v)
}

// Float returns a number stored as a double.
func Float(f float64) Number {
	v := Value{tag: tagFloat}
	v.setWord(math.Float64bits(f))
	return Number(v)
}

// NumberOf returns a number for any Go integer or float. Signed integers
// are stored as int64, unsigned ones as uint64 and floats as float64.
func NumberOf[N constraints.Integer | constraints.Float](n N) Number {
	var zero, one N = 0, 1
	switch {
	case one/2 != zero:
		return Float(float64(n))
	case zero-one < zero:
		return Int(int64(n))
	default:
		return Uint(uint64(n))
	}
}

// NumberAs converts n to N from whichever encoding it is stored in, with Go
// conversion semantics.
func NumberAs[N constraints.Integer | constraints.Float](n *Number) N {
	switch n.tag {
	case tagInt:
		return N(int64(n.v().word()))
	case tagUint:
		return N(n.v().word())
	default:
		return N(math.Float64frombits(n.v().word()))
	}
}

func (n *Number) v() *Value {
	return (*Value)(n)
}

// AsValue returns n as a generic value aliasing the same cell.
func (n *Number) AsValue() *Value {
	return n.v()
}

// Int64 returns n converted to int64.
func (n *Number) Int64() int64 {
	return NumberAs[int64](n)
}

// Uint64 returns n converted to uint64.
func (n *Number) Uint64() uint64 {
	return NumberAs[uint64](n)
}

// Float64 returns n converted to float64.
func (n *Number) Float64() float64 {
	return NumberAs[float64](n)
}

// IsInt reports whether n is stored as int64.
func (n *Number) IsInt() bool { return n.tag == tagInt }

// IsUint reports whether n is stored as uint64.
func (n *Number) IsUint() bool { return n.tag == tagUint }

// IsFloat reports whether n is stored as float64.
func (n *Number) IsFloat() bool { return n.tag == tagFloat }
