package exc

import (
	"fmt"

	"github.com/vire-lang/vire/internal/object"
)

// NewKeyError builds a KeyError that retains the raw missing key
// and formats a message that quotes it when it is a string (a Go
// string or the str carrier object.Str); other keys are formatted
// with %v.
func NewKeyError(key any) *Exception {
	e := New(KeyErrorKind, "%v", keyRepr(key))
	e.SetAttr("key", key)
	return e
}

// Key returns the raw key a KeyError was constructed with.
func (e *Exception) Key() (any, bool) {
	if e.kind != KeyErrorKind {
		return nil, false
	}
	return e.Attr("key")
}

func keyRepr(key any) string {
	if s, ok := key.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	if s, ok := key.(object.Str); ok {
		return fmt.Sprintf("%q", string(s))
	}
	return fmt.Sprintf("%v", key)
}

// KeyErrorDuplicate is the conventional pre-formatted KeyError
// subtype called "KeyError.Duplicate": raised when an
// operation finds a key that must be unique already present.
// "KeyError.Duplicate carries the key unchanged" — the
// raw key is retained exactly as NewKeyError does, only the message
// differs.
func KeyErrorDuplicate(key any) *Exception {
	e := New(KeyErrorKind, "duplicate key %v", keyRepr(key))
	e.SetAttr("key", key)
	e.SetAttr("duplicate", true)
	return e
}

// IsDuplicate reports whether e was constructed by KeyErrorDuplicate.
func (e *Exception) IsDuplicate() bool {
	v, ok := e.Attr("duplicate")
	return ok && v == true
}
