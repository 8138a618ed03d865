package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// Repr dispatches the repr protocol: v's Operations.Repr handle, or a
// generic "<TypeName>" fallback for carriers that don't supply one.
func Repr(v object.Value) (string, *exc.Exception) {
	ops, err := types.OpsOf(v)
	if err != nil {
		return "", wrap(err)
	}
	if ops == nil || ops.Repr == nil {
		t, _ := types.TypeOf(v)
		name := "object"
		if t != nil {
			name = t.Name
		}
		return "<" + name + ">", nil
	}
	s, err := ops.Repr(v)
	if err != nil {
		return "", wrap(err)
	}
	return s, nil
}
