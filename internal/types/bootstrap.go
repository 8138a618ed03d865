package types

import (
	"fmt"
	"hash/fnv"
	"math"
	"reflect"

	"github.com/vire-lang/vire/internal/object"
)

// Meta is the type of every Type value itself (the Language's `type`
// type). Object, Meta and the primitive bootstrap types are created
// here, in Go's package-init order, so every built-in type is
// registered before any user source runs.
var (
	Meta           *Type
	IntType        *Type
	BoolType       *Type
	FloatType      *Type
	StrType        *Type
	NoneTypeT      *Type
	EllipsisT      *Type
	NotImplT       *Type
	TupleType      *Type
	ListType       *Type
	BytesType      *Type
	DictType       *Type

	SeqIteratorType    *Type
	MapPairIteratorType *Type
)

func init() {
	var err error

	Object, err = FromSpec(Spec{
		Name:  "object",
		Bases: []*Type{}, // object has no bases; it is the MRO root.
		Flags: FlagBaseType,
	})
	must(err)

	Meta, err = FromSpec(Spec{
		Name:            "type",
		Flags:           FlagBaseType | FlagInstantiable,
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&Type{})},
		CarrierOps:      map[reflect.Type]*object.Operations{reflect.TypeOf(&Type{}): {}},
	})
	must(err)

	BoolType, err = FromSpec(Spec{
		Name: "bool",
		// bool is a subtype of int; IntType is registered next, so BoolType's Bases is
		// wired in after both exist (see wireBoolBase below).
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(true)},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(true): {
				Repr: func(self object.Value) (string, error) {
					if self.(bool) {
						return "True", nil
					}
					return "False", nil
				},
				Bool: func(self object.Value) (bool, error) { return self.(bool), nil },
				Hash: func(self object.Value) (uint64, error) {
					if self.(bool) {
						return 1, nil
					}
					return 0, nil
				},
				Eq: equalOp,
				Ne: notEqualOp,
				Lt: numericLt,
				Le: numericLe,
				Gt: numericGt,
				Ge: numericGe,
				Add: addOp, RAdd: raddOp,
				Sub: subOp, RSub: rsubOp,
				Mul: mulOp, RMul: rmulOp,
				And: andOp, RAnd: randOp,
				Or: orOp, ROr: rorOp,
				Xor: xorOp, RXor: rxorOp,
				Neg:   negOp,
				Abs:   absOp,
				Int:   intConvOp,
				Float: floatConvOp,
				Index: indexConvOp,
			},
		},
	})
	must(err)

	IntType, err = FromSpec(Spec{
		Name: "int",
		AdoptedCarriers: []reflect.Type{
			reflect.TypeOf(int64(0)),
			reflect.TypeOf(&object.BigInt{}),
		},
		OperandCompatible: []reflect.Type{reflect.TypeOf(true)},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(int64(0)): {
				Repr: func(self object.Value) (string, error) { return fmt.Sprintf("%d", self.(int64)), nil },
				Bool: func(self object.Value) (bool, error) { return self.(int64) != 0, nil },
				Hash: func(self object.Value) (uint64, error) { return uint64(self.(int64)), nil },
				Eq:   equalOp,
				Ne:   notEqualOp,
				Lt:   numericLt,
				Le:   numericLe,
				Gt:   numericGt,
				Ge:   numericGe,
				Add: addOp, RAdd: raddOp,
				Sub: subOp, RSub: rsubOp,
				Mul: mulOp, RMul: rmulOp,
				And: andOp, RAnd: randOp,
				Or: orOp, ROr: rorOp,
				Xor: xorOp, RXor: rxorOp,
				Neg:   negOp,
				Abs:   absOp,
				Int:   intConvOp,
				Float: floatConvOp,
				Index: indexConvOp,
			},
			reflect.TypeOf(&object.BigInt{}): {
				Repr: func(self object.Value) (string, error) { return self.(*object.BigInt).V.String(), nil },
				Bool: func(self object.Value) (bool, error) { return self.(*object.BigInt).V.Sign() != 0, nil },
				Hash: bigIntHash,
				Eq:   equalOp,
				Ne:   notEqualOp,
				Lt:   numericLt,
				Le:   numericLe,
				Gt:   numericGt,
				Ge:   numericGe,
				Add: addOp, RAdd: raddOp,
				Sub: subOp, RSub: rsubOp,
				Mul: mulOp, RMul: rmulOp,
				And: andOp, RAnd: randOp,
				Or: orOp, ROr: rorOp,
				Xor: xorOp, RXor: rxorOp,
				Neg:   negOp,
				Abs:   absOp,
				Int:   intConvOp,
				Float: floatConvOp,
				Index: indexConvOp,
			},
		},
	})
	must(err)

	// bool is declared above IntType so its adopted carrier (bool)
	// publishes before int's OperandCompatible references it; its
	// base is wired in now that IntType exists.
	BoolType.Bases = []*Type{IntType}
	BoolType.MRO, err = c3Linearize(BoolType, BoolType.Bases)
	must(err)
	// bool must never gain Language-level subclasses.
	BoolType.Flags &^= FlagBaseType

	FloatType, err = FromSpec(Spec{
		Name:            "float",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(float64(0))},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(float64(0)): {
				Repr: func(self object.Value) (string, error) { return fmt.Sprintf("%g", self.(float64)), nil },
				Bool: func(self object.Value) (bool, error) { return self.(float64) != 0, nil },
				Hash: floatHash,
				Eq:   equalOp,
				Ne:   notEqualOp,
				Lt:   numericLt,
				Le:   numericLe,
				Gt:   numericGt,
				Ge:   numericGe,
				Add: addOp, RAdd: raddOp,
				Sub: subOp, RSub: rsubOp,
				Mul: mulOp, RMul: rmulOp,
				Neg:   negOp,
				Abs:   absOp,
				Int:   intConvOp,
				Float: floatConvOp,
			},
		},
	})
	must(err)

	StrType, err = FromSpec(Spec{
		Name:            "str",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(object.Str(""))},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(object.Str("")): {
				Repr: func(self object.Value) (string, error) { return fmt.Sprintf("%q", string(self.(object.Str))), nil },
				Str:  func(self object.Value) (string, error) { return string(self.(object.Str)), nil },
				Bool: func(self object.Value) (bool, error) { return len(self.(object.Str)) != 0, nil },
				Len:  func(self object.Value) (int, error) { return len(self.(object.Str)), nil },
				Hash: strHash,
				Eq:   equalOp,
				Ne:   notEqualOp,
			},
		},
	})
	must(err)

	NoneTypeT, err = FromSpec(Spec{
		Name:            "NoneType",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(object.None)},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(object.None): {
				Repr: func(object.Value) (string, error) { return "None", nil },
				Bool: func(object.Value) (bool, error) { return false, nil },
				Hash: func(object.Value) (uint64, error) { return 0, nil },
				Eq:   equalOp,
				Ne:   notEqualOp,
			},
		},
	})
	must(err)

	EllipsisT, err = FromSpec(Spec{
		Name:            "ellipsis",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(object.Ellipsis)},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(object.Ellipsis): {
				Repr: func(object.Value) (string, error) { return "Ellipsis", nil },
				Hash: func(object.Value) (uint64, error) { return 1, nil },
				Eq:   equalOp,
				Ne:   notEqualOp,
			},
		},
	})
	must(err)

	NotImplT, err = FromSpec(Spec{
		Name:            "NotImplementedType",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(object.NotImplemented)},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(object.NotImplemented): {
				Repr: func(object.Value) (string, error) { return "NotImplemented", nil },
				Hash: func(object.Value) (uint64, error) { return 2, nil },
				Eq:   equalOp,
				Ne:   notEqualOp,
			},
		},
	})
	must(err)

	TupleType, err = FromSpec(Spec{
		Name:            "tuple",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&object.Tuple{})},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(&object.Tuple{}): {
				Repr: func(self object.Value) (string, error) { return self.(*object.Tuple).Inspect(), nil },
				Len:  func(self object.Value) (int, error) { return self.(*object.Tuple).Len(), nil },
				Iter: func(self object.Value) (object.Value, error) {
					return object.NewSeqIterator(self.(*object.Tuple).Items()), nil
				},
				Eq: equalOp,
				Ne: notEqualOp,
			},
		},
	})
	must(err)

	ListType, err = FromSpec(Spec{
		Name:            "list",
		Flags:           FlagInstantiable,
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&object.List{})},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(&object.List{}): {
				Repr: func(self object.Value) (string, error) { return self.(*object.List).Inspect(), nil },
				Len:  func(self object.Value) (int, error) { return self.(*object.List).Len(), nil },
				Iter: func(self object.Value) (object.Value, error) {
					return object.NewSeqIterator(append([]object.Value(nil), self.(*object.List).Items()...)), nil
				},
				Eq: equalOp,
				Ne: notEqualOp,
			},
		},
	})
	must(err)

	SeqIteratorType, err = FromSpec(Spec{
		Name:            "sequence_iterator",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&object.SeqIterator{})},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(&object.SeqIterator{}): {
				Iter: func(self object.Value) (object.Value, error) { return self, nil },
				Next: func(self object.Value) (object.Value, error) {
					v, ok := self.(*object.SeqIterator).Next()
					if !ok {
						return nil, object.ErrIterationDone
					}
					return v, nil
				},
			},
		},
	})
	must(err)

	BytesType, err = FromSpec(Spec{
		Name:            "bytes",
		Flags:           FlagInstantiable,
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&object.Bytes{})},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(&object.Bytes{}): {
				Repr: func(self object.Value) (string, error) { return self.(*object.Bytes).Inspect(), nil },
				Len:  func(self object.Value) (int, error) { return self.(*object.Bytes).Len(), nil },
				Add: func(self, other object.Value) (object.Value, error) {
					o, ok := other.(*object.Bytes)
					if !ok {
						return object.NotImplemented, nil
					}
					return self.(*object.Bytes).Concat(o), nil
				},
				Mul: func(self, other object.Value) (object.Value, error) {
					n, ok := other.(int64)
					if !ok {
						return object.NotImplemented, nil
					}
					return self.(*object.Bytes).Repeat(int(n)), nil
				},
				GetItem: func(self, key object.Value) (object.Value, error) {
					i, ok := key.(int64)
					if !ok {
						return nil, fmt.Errorf("bytes indices must be integers")
					}
					b := self.(*object.Bytes)
					if i < 0 || int(i) >= b.Len() {
						return nil, &object.NotFoundError{Key: key}
					}
					return b.At(int(i)), nil
				},
				Hash: bytesHash,
				Eq:   equalOp,
				Ne:   notEqualOp,
			},
		},
	})
	must(err)

	DictType, err = FromSpec(Spec{
		Name:            "dict",
		Flags:           FlagInstantiable,
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&object.Map{})},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(&object.Map{}): {
				Repr: func(self object.Value) (string, error) { return self.(*object.Map).Inspect(), nil },
				Len:  func(self object.Value) (int, error) { return self.(*object.Map).Len(), nil },
				GetItem: func(self, key object.Value) (object.Value, error) {
					m := self.(*object.Map)
					v, ok, err := m.Get(key)
					if err != nil {
						return nil, err
					}
					if !ok {
						return nil, &object.NotFoundError{Key: key}
					}
					return v, nil
				},
				SetItem: func(self, key, v object.Value) error {
					return self.(*object.Map).Set(key, v)
				},
				Iter: func(self object.Value) (object.Value, error) {
					return object.NewMapPairIterator(self.(*object.Map)), nil
				},
				Eq: equalOp,
				Ne: notEqualOp,
			},
		},
	})
	must(err)

	MapPairIteratorType, err = FromSpec(Spec{
		Name:            "dict_iterator",
		AdoptedCarriers: []reflect.Type{reflect.TypeOf(&object.MapPairIterator{})},
		CarrierOps: map[reflect.Type]*object.Operations{
			reflect.TypeOf(&object.MapPairIterator{}): {
				Iter: func(self object.Value) (object.Value, error) { return self, nil },
				Next: func(self object.Value) (object.Value, error) {
					v, ok := self.(*object.MapPairIterator).Next()
					if !ok {
						return nil, object.ErrIterationDone
					}
					return v, nil
				},
			},
		},
	})
	must(err)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// equalOp and notEqualOp back every carrier's Eq/Ne handle. Equality
// is total (object.Equal never declines), so these never return
// object.NotImplemented.
func equalOp(self, other object.Value) (object.Value, error) {
	return object.Bool(object.Equal(self, other)), nil
}

func notEqualOp(self, other object.Value) (object.Value, error) {
	return object.Bool(!object.Equal(self, other)), nil
}

// The numeric tower's arithmetic and comparison handles are shared
// across the bool/int64/*BigInt/float64 carriers: object.NumericAdd
// and friends already classify both operands, so one handler per
// operation covers every carrier combination in the tower.
func addOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericAdd(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func raddOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericAdd(other, self)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func subOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericSub(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func rsubOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericSub(other, self)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func mulOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericMul(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func rmulOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericMul(other, self)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func andOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericAnd(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func randOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericAnd(other, self)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func orOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericOr(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func rorOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericOr(other, self)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func xorOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericXor(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func rxorOp(self, other object.Value) (object.Value, error) {
	v, ok := object.NumericXor(other, self)
	if !ok {
		return object.NotImplemented, nil
	}
	return v, nil
}

func negOp(self object.Value) (object.Value, error) {
	v, ok := object.NumericNeg(self)
	if !ok {
		return nil, fmt.Errorf("bad operand type for unary -")
	}
	return v, nil
}

func absOp(self object.Value) (object.Value, error) {
	v, ok := object.NumericAbs(self)
	if !ok {
		return nil, fmt.Errorf("bad operand type for abs()")
	}
	return v, nil
}

func intConvOp(self object.Value) (object.Value, error) {
	v, ok := object.ToInt(self)
	if !ok {
		return nil, fmt.Errorf("cannot convert to int")
	}
	return v, nil
}

func floatConvOp(self object.Value) (object.Value, error) {
	f, ok := object.ToFloat(self)
	if !ok {
		return nil, fmt.Errorf("cannot convert to float")
	}
	return f, nil
}

// indexConvOp backs __index__: only the integer rungs (bool, int64,
// *BigInt) participate, never float.
func indexConvOp(self object.Value) (object.Value, error) {
	v, ok := object.ToInt(self)
	if !ok {
		return nil, fmt.Errorf("cannot convert to int")
	}
	return v, nil
}

func numericLt(self, other object.Value) (object.Value, error) {
	c, ok := object.NumericCompare(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return object.Bool(c < 0), nil
}

func numericLe(self, other object.Value) (object.Value, error) {
	c, ok := object.NumericCompare(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return object.Bool(c <= 0), nil
}

func numericGt(self, other object.Value) (object.Value, error) {
	c, ok := object.NumericCompare(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return object.Bool(c > 0), nil
}

func numericGe(self, other object.Value) (object.Value, error) {
	c, ok := object.NumericCompare(self, other)
	if !ok {
		return object.NotImplemented, nil
	}
	return object.Bool(c >= 0), nil
}

// strHash, floatHash, bigIntHash and bytesHash are the Hash handles
// for carriers that aren't already a Go-comparable fast hash (bool and
// int64 hash to themselves, wired inline above).
func strHash(self object.Value) (uint64, error) {
	h := fnv.New64a()
	h.Write([]byte(self.(object.Str)))
	return h.Sum64(), nil
}

func bigIntHash(self object.Value) (uint64, error) {
	b := self.(*object.BigInt)
	if dem, ok := b.Demote(); ok {
		return uint64(dem.(int64)), nil
	}
	h := fnv.New64a()
	h.Write([]byte(b.V.String()))
	return h.Sum64(), nil
}

func floatHash(self object.Value) (uint64, error) {
	f := self.(float64)
	if i := int64(f); float64(i) == f {
		return uint64(i), nil
	}
	return math.Float64bits(f), nil
}

func bytesHash(self object.Value) (uint64, error) {
	h := fnv.New64a()
	h.Write(self.(*object.Bytes).Raw())
	return h.Sum64(), nil
}
