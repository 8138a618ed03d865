package exc

import (
	"reflect"
	"sync"

	"github.com/vire-lang/vire/internal/types"
)

// parent records each built-in kind's immediate superclass, mirroring
// the exception tree. BaseException has no parent.
var parent = map[Kind]Kind{
	ExceptionKind:      BaseException,
	ArithmeticError:    ExceptionKind,
	ZeroDivisionError:  ArithmeticError,
	OverflowError:      ArithmeticError,
	LookupError:        ExceptionKind,
	KeyErrorKind:       LookupError,
	IndexError:         LookupError,
	NameError:          ExceptionKind,
	UnboundLocalError:  NameError,
	RuntimeError:       ExceptionKind,
	RecursionError:     RuntimeError,
	StopIterationKind:  ExceptionKind,
	SystemError:        ExceptionKind,
	TypeErrorKind:      ExceptionKind,
	ValueErrorKind:     ExceptionKind,
	AttributeErrorKind: ExceptionKind,
	NotImplementedErr:  RuntimeError,
	MissingFeature:     NotImplementedErr,
	Warning:            ExceptionKind,
	DeprecationWarning: Warning,
	RuntimeWarning:     Warning,
	// InterpreterError deliberately has no entry: it
	// "is never visible to Language code", so it gets no registered
	// Type at all (see typeOf below) rather than a place in the
	// user-visible tree.
}

// IsSubKind reports whether k is kind or a descendant of kind in the
// built-in hierarchy.
func IsSubKind(k, kind Kind) bool {
	for cur := k; ; {
		if cur == kind {
			return true
		}
		p, ok := parent[cur]
		if !ok {
			return cur == kind
		}
		cur = p
	}
}

var (
	registerOnce sync.Once
	typeByKind   map[Kind]*types.Type
)

// exceptionCarrier is the shared Go carrier every built-in exception
// class's instances use: *Exception implements types.Typed, so the
// type registry's generic one-carrier-per-type map is never consulted
// for exceptions — see types.Typed.
var exceptionCarrier = reflect.TypeOf(&Exception{})

func registerHierarchy() {
	registerOnce.Do(func() {
		typeByKind = make(map[Kind]*types.Type)
		// BaseException first: every other kind's Bases resolves
		// through typeByKind, so parents must be registered before
		// children. Walking `parent` in a fixed declaration order
		// that always lists a kind after its parent keeps this
		// simple without a topological sort.
		order := []Kind{
			BaseException, ExceptionKind,
			ArithmeticError, ZeroDivisionError, OverflowError,
			LookupError, KeyErrorKind, IndexError,
			NameError, UnboundLocalError,
			RuntimeError, RecursionError,
			StopIterationKind, SystemError,
			TypeErrorKind, ValueErrorKind, AttributeErrorKind,
			NotImplementedErr, MissingFeature,
			Warning, DeprecationWarning, RuntimeWarning,
		}
		for _, k := range order {
			var bases []*types.Type
			if k == BaseException {
				bases = []*types.Type{types.Object}
			} else if p, ok := parent[k]; ok {
				bases = []*types.Type{typeByKind[p]}
			} else {
				bases = []*types.Type{types.Object}
			}
			t, err := types.FromSpec(types.Spec{
				Name:              string(k),
				Bases:             bases,
				LocalOnlyCarriers: []reflect.Type{exceptionCarrier},
			})
			must(err)
			typeByKind[k] = t
		}
	})
}

func typeOf(k Kind) *types.Type {
	registerHierarchy()
	return typeByKind[k]
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// VireType implements types.Typed so the registry's TypeOf/OpsOf dial
// straight through to e.typ instead of consulting the process-wide
// carrier map (which cannot tell two exception kinds apart since they
// share the *Exception Go struct).
func (e *Exception) VireType() *types.Type { return e.typ }
