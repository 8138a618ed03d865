package expose

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Inspector is the static, build-time counterpart to scan.go's
// runtime reflection: it loads a Go package via go/packages and
// go/types and checks that a Manifest's declared methods actually
// exist, so cmd/vire-expose can fail a build before a renamed or
// removed Go method silently drops Language-level coverage. This
// runtime only ever inspects its own native-class packages, so it
// needs none of the generic-instantiation machinery a general
// third-party-package inspector would.
type Inspector struct {
	loaded map[string]*packages.Package
}

// NewInspector returns an Inspector with an empty package cache.
func NewInspector() *Inspector {
	return &Inspector{loaded: make(map[string]*packages.Package)}
}

func (ins *Inspector) load(pkgPath string) (*packages.Package, error) {
	if pkg, ok := ins.loaded[pkgPath]; ok {
		return pkg, nil
	}
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedTypesInfo | packages.NeedName | packages.NeedSyntax,
	}
	pkgs, err := packages.Load(cfg, pkgPath)
	if err != nil {
		return nil, fmt.Errorf("expose: loading %s: %w", pkgPath, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("expose: package %s not found", pkgPath)
	}
	for _, p := range pkgs {
		for _, e := range p.Errors {
			return nil, fmt.Errorf("expose: %s: %v", pkgPath, e)
		}
	}
	ins.loaded[pkgPath] = pkgs[0]
	return pkgs[0], nil
}

// CheckMethod reports whether typeName, declared in pkgPath, exports
// a method named goMethod (checked on both the value and pointer
// method sets, since exposed carriers are adopted as pointers but a
// value-receiver method is still callable through one).
func (ins *Inspector) CheckMethod(pkgPath, typeName, goMethod string) error {
	pkg, err := ins.load(pkgPath)
	if err != nil {
		return err
	}
	obj := pkg.Types.Scope().Lookup(typeName)
	if obj == nil {
		return fmt.Errorf("expose: type %s not found in %s", typeName, pkgPath)
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return fmt.Errorf("expose: %s.%s is not a named type", pkgPath, typeName)
	}
	if methodSetHas(types.NewMethodSet(types.NewPointer(named)), goMethod) {
		return nil
	}
	if methodSetHas(types.NewMethodSet(named), goMethod) {
		return nil
	}
	return fmt.Errorf("expose: %s.%s has no method %s", pkgPath, typeName, goMethod)
}

func methodSetHas(set *types.MethodSet, name string) bool {
	for i := 0; i < set.Len(); i++ {
		if set.At(i).Obj().Name() == name {
			return true
		}
	}
	return false
}

// CheckManifest cross-checks every method declared in m against the
// Go source at pkgPath, returning one error per mismatch found.
func (ins *Inspector) CheckManifest(pkgPath string, m *Manifest) []error {
	var errs []error
	for _, t := range m.Types {
		for _, meth := range t.Methods {
			if err := ins.CheckMethod(pkgPath, t.Name, meth.Name); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errs
}
