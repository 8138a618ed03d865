// Package expose implements the annotation-driven exposer: it reads a declarative description of a native Go type's
// methods, members, and getset pairs and builds the descriptors
// internal/types.Spec.Attrs wants, wiring each method through its own
// internal/argbind.ArgParser so the call protocol never diverges from
// the bound-argument path.
//
// Go's reflect package gives genuine runtime introspection, unlike the
// "systems language without reflection at this depth"
// anticipates — so where that note calls for a build-time codegen
// pass generating a declarative form, this package's ClassSpec *is*
// that declarative form, but member get/set accessors are wired by
// runtime reflect.Value field access rather than generated code (see
// member.go).
package expose

import (
	"reflect"
	"sort"

	"github.com/vire-lang/vire/internal/argbind"
	"github.com/vire-lang/vire/internal/descriptor"
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/types"
)

// ParamSpec is one parameter's entry in a MethodSpec's signature.
type ParamSpec struct {
	Name       string
	Kind       argbind.ParamKind
	HasDefault bool
	Default    object.Value
}

// MethodFunc is a bound-and-ready native method body: it receives the
// already-ArgParser-bound slot vector plus any *args/**kwargs
// overflow. self is nil for a staticmethod.
type MethodFunc func(self object.Value, slots []object.Value, varArgs *object.Tuple, varKwargs *object.Map) (object.Value, *exc.Exception)

// MethodSpec declares one method. For a type exposing multiple carriers,
// the same Language-visible Name may have one MethodSpec per carrier;
// exactly one must set Primary.
type MethodSpec struct {
	Name          string
	Doc           string
	Static        bool
	IsClassMethod bool
	Primary       bool
	Carrier       reflect.Type // nil means "applies regardless of carrier"
	Params        []ParamSpec
	VarArgsName   string
	VarKwargsName string
	Fn            MethodFunc
}

// ClassSpec is the full declarative description of one Language type's
// exposed surface.
type ClassSpec struct {
	Name    string
	Doc     string
	Methods []MethodSpec
	Members []MemberSpec
	GetSets []GetSetSpec
}

// Build compiles spec into an attribute dict suitable for
// types.Spec.Attrs, binding every descriptor to owner. newMap
// constructs an empty mapping carrier for any method declaring a
// **kwargs collector (internal/argbind.Bind's own requirement).
func Build(owner *types.Type, spec ClassSpec, newMap func() *object.Map) (map[string]object.Value, *exc.Exception) {
	attrs := make(map[string]object.Value)

	methodsByName := make(map[string][]MethodSpec)
	var order []string
	for _, m := range spec.Methods {
		if _, seen := methodsByName[m.Name]; !seen {
			order = append(order, m.Name)
		}
		methodsByName[m.Name] = append(methodsByName[m.Name], m)
	}
	sort.Strings(order) // deterministic iteration; Attrs itself is an unordered map

	for _, name := range order {
		decls := methodsByName[name]
		primary, exception := choosePrimary(name, decls)
		if exception != nil {
			return nil, exception
		}
		desc, exception := buildMethodDescriptor(owner, primary, newMap)
		if exception != nil {
			return nil, exception
		}
		attrs[name] = desc
	}

	for _, m := range spec.Members {
		attrs[m.Name] = buildMemberDescriptor(owner, m)
	}

	for _, g := range spec.GetSets {
		attrs[g.Name] = &descriptor.GetSetDescriptor{
			Name:    g.Name,
			Owner:   owner,
			Doc:     g.Doc,
			Getter:  g.Getter,
			Setter:  g.Setter,
			Deleter: g.Deleter,
		}
	}

	return attrs, nil
}

// choosePrimary implements the "multiple primary
// declarations... is an error"; a lone declaration is implicitly
// primary regardless of its Primary flag.
func choosePrimary(name string, decls []MethodSpec) (MethodSpec, *exc.Exception) {
	if len(decls) == 1 {
		return decls[0], nil
	}
	var found *MethodSpec
	for i := range decls {
		if decls[i].Primary {
			if found != nil {
				return MethodSpec{}, exc.New(exc.SystemError, "exposer: multiple primary declarations of %q", name)
			}
			found = &decls[i]
		}
	}
	if found == nil {
		return MethodSpec{}, exc.New(exc.SystemError, "exposer: %q has multiple carrier declarations but none marked primary", name)
	}
	return *found, nil
}

func buildMethodDescriptor(owner *types.Type, m MethodSpec, newMap func() *object.Map) (*descriptor.MethodDescriptor, *exc.Exception) {
	params := make([]argbind.Param, len(m.Params))
	for i, p := range m.Params {
		params[i] = argbind.Param{Name: p.Name, Kind: p.Kind, HasDefault: p.HasDefault, Default: p.Default}
	}
	ap := argbind.NewArgParser(m.Name, params, m.VarArgsName, m.VarKwargsName)

	handle := descriptor.NativeMethod(func(self object.Value, args []object.Value, names []string) (object.Value, *exc.Exception) {
		res, exception := argbind.Bind(ap, args, names, newMap)
		if exception != nil {
			return nil, exception
		}
		return m.Fn(self, res.Slots, res.VarArgs, res.VarKwargs)
	})

	return &descriptor.MethodDescriptor{
		Name:          m.Name,
		Owner:         owner,
		Doc:           m.Doc,
		Parser:        ap,
		Tag:           ap.Tag,
		Handle:        handle,
		Static:        m.Static,
		IsClassMethod: m.IsClassMethod,
	}, nil
}
