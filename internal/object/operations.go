package object

// Operations is a per-(type, carrier) record of operation handles.
// A nil field means "the operation is absent" — callers must check
// before invoking, and the meaning of a missing handle
// (NotImplemented-style sentinel vs. a raised error) is
// operation-specific and documented per field.
//
// Every handle returns (Value, error): error carries a raised
// exception (internal/exc values implement Go's error interface, so
// this package never needs to import internal/exc to propagate one)
// or a plain host-level error for invariant violations. A nil error
// with a NotImplemented result value signals "try the reflected
// operation", never an error.
//
// This struct holds function fields rather than a closed interface so
// the type registry can fill in only the slots a given type's
// exposure actually declared, leaving the rest nil and inheritable
// from a base type's table.
type Operations struct {
	Repr  func(self Value) (string, error)
	Str   func(self Value) (string, error)
	Hash  func(self Value) (uint64, error)
	Bool  func(self Value) (bool, error)
	Call  func(self Value, args []Value, names []string) (Value, error)
	Len   func(self Value) (int, error)

	GetAttribute func(self Value, name string) (Value, error)
	GetAttr      func(self Value, name string) (Value, error)
	SetAttr      func(self Value, name string, v Value) error
	DelAttr      func(self Value, name string) error

	Lt func(self, other Value) (Value, error)
	Le func(self, other Value) (Value, error)
	Eq func(self, other Value) (Value, error)
	Ne func(self, other Value) (Value, error)
	Ge func(self, other Value) (Value, error)
	Gt func(self, other Value) (Value, error)

	Iter func(self Value) (Value, error)
	Next func(self Value) (Value, error)

	// Descriptor protocol: Get returns either the descriptor itself
	// (instance == None) or a bound value.
	Get    func(self Value, instance, owner Value) (Value, error)
	Set    func(self Value, instance, v Value) error
	Delete func(self Value, instance Value) error

	Init func(self Value, args []Value, names []string) error
	New  func(args []Value, names []string) (Value, error)

	Vectorcall func(self Value, stack []Value, sp, n int, names []string) (Value, error)

	Add, RAdd func(self, other Value) (Value, error)
	Sub, RSub func(self, other Value) (Value, error)
	Mul, RMul func(self, other Value) (Value, error)
	Neg       func(self Value) (Value, error)
	Abs       func(self Value) (Value, error)
	And, RAnd func(self, other Value) (Value, error)
	Xor, RXor func(self, other Value) (Value, error)
	Or, ROr   func(self, other Value) (Value, error)

	Int   func(self Value) (Value, error)
	Float func(self Value) (Value, error)
	Index func(self Value) (Value, error)

	Contains func(self, item Value) (bool, error)
	GetItem  func(self, key Value) (Value, error)
	SetItem  func(self, key, v Value) error
	DelItem  func(self, key Value) error
}

// Merge returns a copy of base with every nil field in over replaced
// by base's handle, i.e. "over overrides base". The type registry
// uses this once per MRO step when assembling a type's table.
func (over *Operations) Merge(base *Operations) *Operations {
	if base == nil {
		return over
	}
	if over == nil {
		cp := *base
		return &cp
	}
	out := *over
	if out.Repr == nil {
		out.Repr = base.Repr
	}
	if out.Str == nil {
		out.Str = base.Str
	}
	if out.Hash == nil {
		out.Hash = base.Hash
	}
	if out.Bool == nil {
		out.Bool = base.Bool
	}
	if out.Call == nil {
		out.Call = base.Call
	}
	if out.Len == nil {
		out.Len = base.Len
	}
	if out.GetAttribute == nil {
		out.GetAttribute = base.GetAttribute
	}
	if out.GetAttr == nil {
		out.GetAttr = base.GetAttr
	}
	if out.SetAttr == nil {
		out.SetAttr = base.SetAttr
	}
	if out.DelAttr == nil {
		out.DelAttr = base.DelAttr
	}
	if out.Lt == nil {
		out.Lt = base.Lt
	}
	if out.Le == nil {
		out.Le = base.Le
	}
	if out.Eq == nil {
		out.Eq = base.Eq
	}
	if out.Ne == nil {
		out.Ne = base.Ne
	}
	if out.Ge == nil {
		out.Ge = base.Ge
	}
	if out.Gt == nil {
		out.Gt = base.Gt
	}
	if out.Iter == nil {
		out.Iter = base.Iter
	}
	if out.Next == nil {
		out.Next = base.Next
	}
	if out.Get == nil {
		out.Get = base.Get
	}
	if out.Set == nil {
		out.Set = base.Set
	}
	if out.Delete == nil {
		out.Delete = base.Delete
	}
	if out.Init == nil {
		out.Init = base.Init
	}
	if out.New == nil {
		out.New = base.New
	}
	if out.Vectorcall == nil {
		out.Vectorcall = base.Vectorcall
	}
	if out.Add == nil {
		out.Add = base.Add
	}
	if out.RAdd == nil {
		out.RAdd = base.RAdd
	}
	if out.Sub == nil {
		out.Sub = base.Sub
	}
	if out.RSub == nil {
		out.RSub = base.RSub
	}
	if out.Mul == nil {
		out.Mul = base.Mul
	}
	if out.RMul == nil {
		out.RMul = base.RMul
	}
	if out.Neg == nil {
		out.Neg = base.Neg
	}
	if out.Abs == nil {
		out.Abs = base.Abs
	}
	if out.And == nil {
		out.And = base.And
	}
	if out.RAnd == nil {
		out.RAnd = base.RAnd
	}
	if out.Xor == nil {
		out.Xor = base.Xor
	}
	if out.RXor == nil {
		out.RXor = base.RXor
	}
	if out.Or == nil {
		out.Or = base.Or
	}
	if out.ROr == nil {
		out.ROr = base.ROr
	}
	if out.Int == nil {
		out.Int = base.Int
	}
	if out.Float == nil {
		out.Float = base.Float
	}
	if out.Index == nil {
		out.Index = base.Index
	}
	if out.Contains == nil {
		out.Contains = base.Contains
	}
	if out.GetItem == nil {
		out.GetItem = base.GetItem
	}
	if out.SetItem == nil {
		out.SetItem = base.SetItem
	}
	if out.DelItem == nil {
		out.DelItem = base.DelItem
	}
	return &out
}
