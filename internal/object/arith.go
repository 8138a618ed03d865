package object

import "math/big"

// numericKind classifies a Value for cross-carrier numeric tower
// arithmetic. bool and int64 both ride the fast integer path; *BigInt
// is the arbitrary-precision path; float64 is its own path and always
// wins a mixed comparison (int + float promotes to float, never the
// other way).
type numericKind int

const (
	notNumeric numericKind = iota
	kindInt
	kindBigInt
	kindFloat
)

func classify(v Value) numericKind {
	switch v.(type) {
	case bool:
		return kindInt
	case int64:
		return kindInt
	case *BigInt:
		return kindBigInt
	case float64:
		return kindFloat
	default:
		return notNumeric
	}
}

func asInt64(v Value) int64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int64:
		return x
	}
	panic("object: asInt64 on a non-integer value")
}

func asBig(v Value) *big.Int {
	switch x := v.(type) {
	case bool:
		if x {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	case int64:
		return big.NewInt(x)
	case *BigInt:
		return x.V
	}
	panic("object: asBig on a non-integer value")
}

func asFloat64(v Value) float64 {
	switch x := v.(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int64:
		return float64(x)
	case *BigInt:
		f := new(big.Float).SetInt(x.V)
		out, _ := f.Float64()
		return out
	case float64:
		return x
	}
	panic("object: asFloat64 on a non-numeric value")
}

// bigResult demotes v back to the int64 fast path when it fits,
// matching BigInt.Demote's own rule.
func bigResult(v *big.Int) Value {
	b := NewBigInt(v)
	if dem, ok := b.Demote(); ok {
		return dem
	}
	return b
}

// IntAdd, IntSub and IntMul are the overflow-checked fast-path integer
// operations: each promotes to *BigInt instead of wrapping when the
// int64 result would overflow.
func IntAdd(a, b int64) Value {
	sum := a + b
	if ((a ^ sum) & (b ^ sum)) < 0 {
		return bigResult(new(big.Int).Add(big.NewInt(a), big.NewInt(b)))
	}
	return sum
}

func IntSub(a, b int64) Value {
	diff := a - b
	if ((a ^ b) & (a ^ diff)) < 0 {
		return bigResult(new(big.Int).Sub(big.NewInt(a), big.NewInt(b)))
	}
	return diff
}

func IntMul(a, b int64) Value {
	if a == 0 || b == 0 {
		return int64(0)
	}
	p := a * b
	if p/b != a || (b == -1 && a == -1<<63) {
		return bigResult(new(big.Int).Mul(big.NewInt(a), big.NewInt(b)))
	}
	return p
}

func IntNeg(a int64) Value {
	if a == -1<<63 {
		return bigResult(new(big.Int).Neg(big.NewInt(a)))
	}
	return -a
}

// NumericAdd, NumericSub and NumericMul implement the three-rung
// tower: float beats everything, *BigInt beats plain int64, and
// int64/bool share the fast path. The bool return reports whether
// both operands were numeric at all.
func NumericAdd(a, b Value) (Value, bool) {
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric {
		return nil, false
	}
	if ka == kindFloat || kb == kindFloat {
		return asFloat64(a) + asFloat64(b), true
	}
	if ka == kindBigInt || kb == kindBigInt {
		return bigResult(new(big.Int).Add(asBig(a), asBig(b))), true
	}
	return IntAdd(asInt64(a), asInt64(b)), true
}

func NumericSub(a, b Value) (Value, bool) {
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric {
		return nil, false
	}
	if ka == kindFloat || kb == kindFloat {
		return asFloat64(a) - asFloat64(b), true
	}
	if ka == kindBigInt || kb == kindBigInt {
		return bigResult(new(big.Int).Sub(asBig(a), asBig(b))), true
	}
	return IntSub(asInt64(a), asInt64(b)), true
}

func NumericMul(a, b Value) (Value, bool) {
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric {
		return nil, false
	}
	if ka == kindFloat || kb == kindFloat {
		return asFloat64(a) * asFloat64(b), true
	}
	if ka == kindBigInt || kb == kindBigInt {
		return bigResult(new(big.Int).Mul(asBig(a), asBig(b))), true
	}
	return IntMul(asInt64(a), asInt64(b)), true
}

// NumericAnd, NumericOr and NumericXor are the bitwise operations:
// they apply only to the integer rungs, never float. Two bool operands
// stay bool (True & False is False), matching bool overriding its
// bitwise handlers independently of the int arithmetic it otherwise
// inherits wholesale.
func NumericAnd(a, b Value) (Value, bool) {
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ba && bb, true
		}
	}
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric || ka == kindFloat || kb == kindFloat {
		return nil, false
	}
	if ka == kindBigInt || kb == kindBigInt {
		return bigResult(new(big.Int).And(asBig(a), asBig(b))), true
	}
	return asInt64(a) & asInt64(b), true
}

func NumericOr(a, b Value) (Value, bool) {
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ba || bb, true
		}
	}
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric || ka == kindFloat || kb == kindFloat {
		return nil, false
	}
	if ka == kindBigInt || kb == kindBigInt {
		return bigResult(new(big.Int).Or(asBig(a), asBig(b))), true
	}
	return asInt64(a) | asInt64(b), true
}

func NumericXor(a, b Value) (Value, bool) {
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			return ba != bb, true
		}
	}
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric || ka == kindFloat || kb == kindFloat {
		return nil, false
	}
	if ka == kindBigInt || kb == kindBigInt {
		return bigResult(new(big.Int).Xor(asBig(a), asBig(b))), true
	}
	return asInt64(a) ^ asInt64(b), true
}

// NumericNeg and NumericAbs are the unary rungs of the tower.
func NumericNeg(a Value) (Value, bool) {
	switch classify(a) {
	case kindFloat:
		return -asFloat64(a), true
	case kindBigInt:
		return bigResult(new(big.Int).Neg(asBig(a))), true
	case kindInt:
		return IntNeg(asInt64(a)), true
	default:
		return nil, false
	}
}

func NumericAbs(a Value) (Value, bool) {
	switch classify(a) {
	case kindFloat:
		f := asFloat64(a)
		if f < 0 {
			return -f, true
		}
		return f, true
	case kindBigInt:
		return bigResult(new(big.Int).Abs(asBig(a))), true
	case kindInt:
		v := asInt64(a)
		if v < 0 {
			return IntNeg(v), true
		}
		return v, true
	default:
		return nil, false
	}
}

// NumericCompare orders two numeric values across the tower, again
// with float outranking BigInt outranking the int64/bool fast path.
func NumericCompare(a, b Value) (int, bool) {
	ka, kb := classify(a), classify(b)
	if ka == notNumeric || kb == notNumeric {
		return 0, false
	}
	if ka == kindFloat || kb == kindFloat {
		fa, fb := asFloat64(a), asFloat64(b)
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		default:
			return 0, true
		}
	}
	if ka == kindBigInt || kb == kindBigInt {
		return asBig(a).Cmp(asBig(b)), true
	}
	ia, ib := asInt64(a), asInt64(b)
	switch {
	case ia < ib:
		return -1, true
	case ia > ib:
		return 1, true
	default:
		return 0, true
	}
}

// ToInt converts a numeric tower value to its Integer-type
// representation (int64 for bool/int64, self for BigInt, truncated for
// float64).
func ToInt(v Value) (Value, bool) {
	switch classify(v) {
	case kindInt:
		return asInt64(v), true
	case kindBigInt:
		return v, true
	case kindFloat:
		f := asFloat64(v)
		bi, _ := big.NewFloat(f).Int(nil)
		return bigResult(bi), true
	default:
		return nil, false
	}
}

// ToFloat converts a numeric tower value to float64.
func ToFloat(v Value) (float64, bool) {
	if classify(v) == notNumeric {
		return 0, false
	}
	return asFloat64(v), true
}
