package expose

import (
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/object"
)

// GetSetSpec declares a getter/setter/deleter triple contributing to a
// single named getset-descriptor. A read-only computed
// attribute supplies only Getter; Setter/Deleter left nil fail per
// descriptor.GetSetDescriptor's own AttributeError behaviour.
type GetSetSpec struct {
	Name    string
	Doc     string
	Getter  func(self object.Value) (object.Value, *exc.Exception)
	Setter  func(self object.Value, v object.Value) *exc.Exception
	Deleter func(self object.Value) *exc.Exception
}
