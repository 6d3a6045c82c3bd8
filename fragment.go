package rex

import (
	"github.com/coregx/rex/internal/group"
)

// Fragment is an immutable piece of regular-expression text that can be
// composed further without changing the grouping of its parts.
//
// Fragments are plain values: every operation returns a new Fragment and
// none of them retain structure beyond the text itself. The zero value is
// the empty fragment, which matches the empty string.
//
// A Fragment is safe to share between goroutines.
type Fragment struct {
	text string
}

// Raw returns a Fragment holding text as-is, without escaping.
//
// Use it for pattern syntax that has no constructor, e.g. Raw(`\pL`). The
// text is trusted: it must be a self-contained pattern, since wrapping
// decisions only inspect its outermost group.
func Raw(text string) Fragment {
	return Fragment{text: text}
}

// String returns the pattern text.
func (f Fragment) String() string {
	return f.text
}

// IsEmpty reports whether the fragment has no text.
func (f Fragment) IsEmpty() bool {
	return f.text == ""
}

// IsGrouped reports whether the whole fragment is one parenthesized group
// with nothing outside it.
//
//	Raw("a").IsGrouped()      // false
//	Raw("(a)").IsGrouped()    // true
//	Raw("(a)(b)").IsGrouped() // false
//	Raw("[a]").IsGrouped()    // false
func (f Fragment) IsGrouped() bool {
	return group.Classify(f.text) != group.None
}

// IsNonCapturing reports whether the fragment is a single (?:...) group.
func (f Fragment) IsNonCapturing() bool {
	return group.Classify(f.text) == group.NonCapturing
}

// Precedence returns the fragment wrapped in a non-capturing group, unless
// it already is a single group. Precedence is idempotent.
//
//	Raw("a").Precedence()   // (?:a)
//	Raw("(a)").Precedence() // (a)
func (f Fragment) Precedence() Fragment {
	if f.IsGrouped() {
		return f
	}
	return Fragment{text: "(?:" + f.text + ")"}
}

// Then returns f followed by other.
//
// Concatenation never wraps: sequencing cannot change either operand's
// grouping.
//
//	Raw("a").Then(Raw("b")) // ab
func (f Fragment) Then(other Fragment) Fragment {
	return Fragment{text: f.text + other.text}
}

// Or returns a fragment matching either f or other.
//
// Both operands are wrapped for precedence and the alternation itself is
// wrapped once more, so the result can be quantified or concatenated
// directly.
//
//	Raw("a").Or(Raw("b")) // (?:(?:a)|(?:b))
func (f Fragment) Or(other Fragment) Fragment {
	return Fragment{text: "(?:" + f.Precedence().text + "|" + other.Precedence().text + ")"}
}
