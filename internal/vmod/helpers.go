package vmod

import (
	"errors"
	"hash/fnv"

	"github.com/vire-lang/vire/internal/object"
)

var errNotADict = errors.New("expected a dict")

// structHash/structEq are the minimal hash/eq pair object.Map needs
// (internal/object has no hashing opinion of its own — see
// object.Map's doc comment); string-keyed maps built inside this
// package never hold anything richer than the scalar set
// google.protobuf.Struct supports.
func structHash(v object.Value) (uint64, error) {
	s, ok := v.(object.Str)
	if !ok {
		return 0, errNotADict
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64(), nil
}

func structEq(a, b object.Value) bool { return a == b }
