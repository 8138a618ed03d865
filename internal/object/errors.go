package object

import "errors"

// ErrIterationDone marks a spent Operations.Next call.
var ErrIterationDone = errors.New("iteration exhausted")

// NotFoundError marks a missing-key or out-of-range condition from an
// Operations.GetItem/Delete handle. internal/object cannot depend on
// internal/exc (exc already depends on internal/types, which depends
// on internal/object), so a handle that hits a missing key returns
// this sentinel and leaves translating it into KeyError/IndexError to
// the caller — internal/opdispatch, which already sits above both.
type NotFoundError struct{ Key Value }

func (e *NotFoundError) Error() string { return "key not found" }
