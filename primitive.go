package rex

import (
	"strings"

	"github.com/coregx/coregex"
)

// Commonly used fragments.
var (
	Word            = Raw(`\w`)
	WordBoundary    = Raw(`\b`)
	NonWordBoundary = Raw(`\B`)
	Whitespace      = Raw(`\s`)
	Digit           = Raw(`\d`)
	Any             = Raw(`.`)
	Start           = Raw(`^`)
	End             = Raw(`$`)
	Alphas          = Raw(`[a-zA-Z]`)
	Upper           = Raw(`[A-Z]`)
	Lower           = Raw(`[a-z]`)
	Alphanums       = Raw(`[a-zA-Z0-9]`)
	HexDigit        = Raw(`[0-9a-fA-F]`)
)

// Literal returns a fragment matching exactly s, with every regular
// expression metacharacter escaped.
//
//	Literal("a.b") // a\.b
func Literal(s string) Fragment {
	return Fragment{text: coregex.QuoteMeta(s)}
}

// Class returns a character class [...] joining members.
//
// Members are inserted verbatim: set syntax such as ranges ("a-z") and
// escapes (Digit.String()) is honored, and characters special inside a set
// (']', '\', '^' in first position, '-') are the caller's responsibility.
// An ill-formed class is reported by the engine at compile time.
//
//	Class("a", "b", "c")         // [abc]
//	Class("a-f", Digit.String()) // [a-f\d]
func Class(members ...string) Fragment {
	return Fragment{text: "[" + strings.Join(members, "") + "]"}
}

// NegatedClass is like Class but returns the complement [^...].
//
//	NegatedClass("?#") // [^?#]
func NegatedClass(members ...string) Fragment {
	return Fragment{text: "[^" + strings.Join(members, "") + "]"}
}
