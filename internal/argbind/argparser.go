// Package argbind implements the call-site argument binder: an immutable ArgParser describing a callable's parameter
// layout, and a Bind function that fuses a call's positional/keyword
// payload against that layout into a flat slot vector a bound native
// method consumes.
package argbind

import "github.com/vire-lang/vire/internal/object"

// ParamKind classifies a single parameter slot.
type ParamKind uint8

const (
	PositionalOnly ParamKind = iota
	Regular
	KeywordOnly
)

// OptTag is the call-site optimisation tag for the arity the parser saw:
// selected once per ArgParser so a hot call site can skip the general
// binder entirely when the shape allows it.
type OptTag uint8

const (
	// NOARGS, O1, O2, O3 apply when there are no keyword-only
	// parameters, no collectors, and the regular+positional-only
	// arity is exactly 0/1/2/3.
	NOARGS OptTag = iota
	O1
	O2
	O3
	// POSITIONAL applies to longer positional-only signatures with no
	// keyword-only parameters and no collectors.
	POSITIONAL
	// GENERAL covers everything else: keyword-only parameters,
	// defaults, or a *args/**kwargs collector.
	GENERAL
)

// Param describes one named parameter slot in declaration order.
type Param struct {
	Name string
	Kind ParamKind
	// HasDefault and Default apply to Regular and KeywordOnly
	// parameters; PositionalOnly parameters in this implementation
	// are never defaulted.
	HasDefault bool
	Default    object.Value
}

// ArgParser is the immutable signature description.
// Construct one with NewArgParser; the zero value is not valid.
type ArgParser struct {
	Name   string
	Params []Param

	PositionalOnly int // P
	RegularCount   int // R
	KeywordOnly    int // K

	// HasVarArgs reports a *args collector; VarArgsName is its name.
	HasVarArgs  bool
	VarArgsName string

	HasVarKwargs  bool
	VarKwargsName string

	// nameIndex maps every non-collector parameter name to its slot
	// index in Params, built once so Bind's per-keyword lookup is
	// O(1) instead of a linear scan.
	nameIndex map[string]int

	Tag OptTag
}

// NewArgParser builds an ArgParser from an ordered parameter list.
// params must list PositionalOnly parameters first, then Regular,
// then KeywordOnly; NewArgParser
// panics if that invariant is violated, since it is a construction-
// time programming error (typically a bug in internal/expose), never
// a call-time condition.
func NewArgParser(name string, params []Param, varArgsName, varKwargsName string) *ArgParser {
	ap := &ArgParser{
		Name:          name,
		Params:        params,
		HasVarArgs:    varArgsName != "",
		VarArgsName:   varArgsName,
		HasVarKwargs:  varKwargsName != "",
		VarKwargsName: varKwargsName,
		nameIndex:     make(map[string]int, len(params)),
	}

	lastKind := PositionalOnly
	for i, p := range params {
		if p.Kind < lastKind {
			panic("argbind: parameters must be ordered positional-only, regular, keyword-only")
		}
		lastKind = p.Kind
		switch p.Kind {
		case PositionalOnly:
			ap.PositionalOnly++
		case Regular:
			ap.RegularCount++
		case KeywordOnly:
			ap.KeywordOnly++
		}
		ap.nameIndex[p.Name] = i
	}

	ap.Tag = computeTag(ap)
	return ap
}

func computeTag(ap *ArgParser) OptTag {
	if ap.HasVarArgs || ap.HasVarKwargs || ap.KeywordOnly > 0 {
		return GENERAL
	}
	for _, p := range ap.Params {
		if p.HasDefault {
			return GENERAL
		}
	}
	arity := ap.PositionalOnly + ap.RegularCount
	switch arity {
	case 0:
		return NOARGS
	case 1:
		return O1
	case 2:
		return O2
	case 3:
		return O3
	default:
		return POSITIONAL
	}
}

// Arity returns the total number of named slots (P+R+K), i.e. the
// length of the slot vector Bind produces.
func (ap *ArgParser) Arity() int {
	return ap.PositionalOnly + ap.RegularCount + ap.KeywordOnly
}
