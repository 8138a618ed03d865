package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// Comparison operations follow the same reflected-operand rule,
// parametrised by the mirrored pair: `lt`/`gt` mirror
// each other (v < w tries w > v), as do `le`/`ge`; `eq` and `ne` are
// each their own mirror (v == w tries w == v, not some other slot).
func LtSlot(ops *object.Operations) Handle { return ops.Lt }
func GtSlot(ops *object.Operations) Handle { return ops.Gt }
func LeSlot(ops *object.Operations) Handle { return ops.Le }
func GeSlot(ops *object.Operations) Handle { return ops.Ge }
func EqSlot(ops *object.Operations) Handle { return ops.Eq }
func NeSlot(ops *object.Operations) Handle { return ops.Ne }

func Lt(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("<", LtSlot, GtSlot, v, w) }
func Le(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("<=", LeSlot, GeSlot, v, w) }
func Gt(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp(">", GtSlot, LtSlot, v, w) }
func Ge(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp(">=", GeSlot, LeSlot, v, w) }
func Eq(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("==", EqSlot, EqSlot, v, w) }
func Ne(v, w object.Value) (object.Value, *exc.Exception) { return BinaryOp("!=", NeSlot, NeSlot, v, w) }
