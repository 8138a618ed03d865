package opdispatch

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// GetItem dispatches v[key] through v's Operations table, translating
// the object.NotFoundError sentinel into KeyError (for a dict-typed v)
// or IndexError (everything else) — the Operations handle itself
// cannot construct either, since internal/object does not import
// internal/exc.
func GetItem(v, key object.Value) (object.Value, *exc.Exception) {
	ops, err := types.OpsOf(v)
	if err != nil {
		return nil, wrap(err)
	}
	t, err := types.TypeOf(v)
	if err != nil {
		return nil, wrap(err)
	}
	if ops == nil || ops.GetItem == nil {
		return nil, exc.New(exc.TypeErrorKind, "%q object is not subscriptable", t.Name)
	}
	res, goErr := ops.GetItem(v, key)
	if goErr != nil {
		if nf, ok := goErr.(*object.NotFoundError); ok {
			if t == types.DictType {
				return nil, exc.NewKeyError(nf.Key)
			}
			return nil, exc.New(exc.IndexError, "%s index out of range", t.Name)
		}
		return nil, wrap(goErr)
	}
	return res, nil
}

// SetItem dispatches v[key] = value.
func SetItem(v, key, value object.Value) *exc.Exception {
	ops, err := types.OpsOf(v)
	if err != nil {
		return wrap(err)
	}
	t, err := types.TypeOf(v)
	if err != nil {
		return wrap(err)
	}
	if ops == nil || ops.SetItem == nil {
		return exc.New(exc.TypeErrorKind, "%q object does not support item assignment", t.Name)
	}
	if goErr := ops.SetItem(v, key, value); goErr != nil {
		return wrap(goErr)
	}
	return nil
}
