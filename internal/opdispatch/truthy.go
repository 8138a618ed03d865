package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// Truthy applies the boolean-conversion protocol: v's Operations.Bool
// handle if it has one, else Len() != 0 if it has that, else true
// (every object is truthy by default — only None, False, 0, and empty
// containers are not, and those all supply one of the two handles).
func Truthy(v object.Value) (bool, *exc.Exception) {
	ops, err := types.OpsOf(v)
	if err != nil {
		return false, wrap(err)
	}
	if ops == nil {
		return true, nil
	}
	if ops.Bool != nil {
		b, goErr := ops.Bool(v)
		if goErr != nil {
			return false, wrap(goErr)
		}
		return b, nil
	}
	if ops.Len != nil {
		n, goErr := ops.Len(v)
		if goErr != nil {
			return false, wrap(goErr)
		}
		return n != 0, nil
	}
	return true, nil
}
