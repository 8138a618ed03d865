package exc

// StopIterationSentinel is a statically-allocated StopIteration
// instance for hot iteration-exhaustion paths. Iterator protocols that exhaust on every call (e.g. a
// `for` loop driving `next()` to completion) return this value
// instead of constructing a fresh *Exception, since a StopIteration
// raised in the course of ordinary, successful iteration carries no
// diagnostic value and no caller should ever print its stack context.
//
// Code that needs a StopIteration carrying a value (the `return` of
// a generator, in languages that have one) must still construct a
// fresh *Exception via New(StopIterationKind, ...); the sentinel only
// covers the argument-less, value-less case.
var StopIterationSentinel = New(StopIterationKind, "iterator exhausted")

// NoConversion is the sentinel internal numeric-conversion paths
// return instead of an error when a conversion is simply inapplicable
// (e.g. __int__ declined on an operand) rather than invalid — the
// caller is expected to try the next conversion strategy, not to
// surface a user-facing exception. Kept distinct from
// object.NotImplemented, which is a Language-visible value; NoConversion
// never crosses into Language-visible data, it only flows between
// internal conversion helpers.
type noConversionType struct{}

var NoConversion noConversionType

func (noConversionType) Error() string { return "no conversion available" }
