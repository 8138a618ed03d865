package object

import (
	"math/big"
)

// The Language's numeric tower (bool < integer < float) is realised as
// several distinct native carriers that all dispatch uniformly through
// the type registry rather than through a shared Go interface:
//
//   - bool    — adopted directly; the two values are the True/False
//     singletons from singletons.go.
//   - int64   — adopted directly as the fast-path Integer carrier.
//   - *BigInt — the arbitrary-precision Integer carrier, used once a
//     computation overflows int64 (see OverflowError in internal/exc).
//   - float64 — adopted directly as the Float carrier.
//
// int64 and *BigInt are both adopted carriers of the Integer type (the
// integer type accepts two native integer carriers, promoting between
// them as arithmetic overflows or shrinks back down). Operand-compatible
// carriers (bool, accepted as a right operand of integer arithmetic
// because bool is an Integer subtype) are handled by opdispatch, not by
// adding a third carrier here.

// BigInt is the arbitrary-precision Integer carrier. It is a distinct
// named type (not a bare *big.Int) so the carrier map can register it
// without colliding with any host code that also happens to pass
// *big.Int values around for unrelated reasons.
type BigInt struct {
	V *big.Int
}

// NewBigInt adopts n as a BigInt carrier.
func NewBigInt(n *big.Int) *BigInt { return &BigInt{V: n} }

// FitsInt64 reports whether b's value fits in an int64, i.e. whether
// it could be demoted back to the fast-path carrier.
func (b *BigInt) FitsInt64() bool { return b.V.IsInt64() }

// Demote returns the int64 fast-path carrier when b fits in one;
// arithmetic that would otherwise produce a BigInt result with a
// small magnitude should call this so subsequent operations stay on
// the cheap path.
func (b *BigInt) Demote() (Value, bool) {
	if b.FitsInt64() {
		return b.V.Int64(), true
	}
	return b, false
}
