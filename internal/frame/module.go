package frame

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// Module is a namespace: a module-level global dict plus the
// bookkeeping exec() needs to inject __builtins__ into it. Native ("builtin") modules are Modules whose Globals
// were populated by a ModuleDef instead of by running source.
type Module struct {
	Name    string
	Globals *object.Map
}

// NewModule builds an empty module namespace. hash/eq are the same
// pair every Map needs (internal/opdispatch supplies the real
// dispatch-based implementations; tests may supply simpler ones).
func NewModule(name string, hash func(object.Value) (uint64, error), eq func(a, b object.Value) bool) *Module {
	return &Module{Name: name, Globals: object.NewMap(hash, eq)}
}

// builtinsKey is the well-known name under which a module's builtins
// namespace is injected.
var builtinsKey = object.Str("__builtins__")

// EnsureBuiltins installs builtins under __builtins__ if the module's
// globals don't already have an entry — exec() must not clobber a
// namespace someone already wired up.
func EnsureBuiltins(globals *object.Map, builtins object.Value) error {
	_, present, err := globals.Get(builtinsKey)
	if err != nil {
		return err
	}
	if present {
		return nil
	}
	return globals.Set(builtinsKey, builtins)
}

// ModuleDef describes a native module: a name plus a function that
// populates a fresh Module's globals.
type ModuleDef struct {
	Name    string
	Members func(mod *Module) *exc.Exception
}

// Build constructs the module described by d.
func (d *ModuleDef) Build(hash func(object.Value) (uint64, error), eq func(a, b object.Value) bool) (*Module, *exc.Exception) {
	mod := NewModule(d.Name, hash, eq)
	if d.Members != nil {
		if err := d.Members(mod); err != nil {
			return nil, err
		}
	}
	return mod, nil
}
