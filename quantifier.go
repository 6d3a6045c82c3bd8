package rex

import (
	"strconv"

	"github.com/spf13/cast"
)

// Optional matches the fragment zero or one time.
//
//	Raw("a").Optional() // (?:a)?
func (f Fragment) Optional() Fragment {
	return f.quantify("?")
}

// OneOrMore matches the fragment one or more times.
//
//	Raw("a").OneOrMore() // (?:a)+
func (f Fragment) OneOrMore() Fragment {
	return f.quantify("+")
}

// ZeroOrMore matches the fragment zero or more times.
//
//	Raw("a").ZeroOrMore() // (?:a)*
func (f Fragment) ZeroOrMore() Fragment {
	return f.quantify("*")
}

// AtLeast matches the fragment n or more times. n must not be negative.
//
//	Raw("a").AtLeast(2) // (?:a){2,}
func (f Fragment) AtLeast(n int) (Fragment, error) {
	if n < 0 {
		return Fragment{}, newError("AtLeast", ErrInvalidRange, "negative lower bound %d", n)
	}
	return f.quantify("{" + strconv.Itoa(n) + ",}"), nil
}

// Repeat matches the fragment exactly n times. n must not be negative.
//
//	Raw("a").Repeat(2) // (?:a){2}
func (f Fragment) Repeat(n int) (Fragment, error) {
	if n < 0 {
		return Fragment{}, newError("Repeat", ErrInvalidRange, "negative count %d", n)
	}
	return f.quantify("{" + strconv.Itoa(n) + "}"), nil
}

// Between matches the fragment from n to m times.
//
// Both bounds must be non-negative and m must be strictly greater than n;
// use Repeat for an exact count.
//
//	Raw("a").Between(2, 4) // (?:a){2,4}
//	Raw("a").Between(0, 3) // (?:a){0,3}
func (f Fragment) Between(n, m int) (Fragment, error) {
	switch {
	case n < 0:
		return Fragment{}, newError("Between", ErrInvalidRange, "negative lower bound %d", n)
	case m < 0:
		return Fragment{}, newError("Between", ErrInvalidRange, "negative upper bound %d", m)
	case m <= n:
		return Fragment{}, newError("Between", ErrInvalidRange, "upper bound %d must exceed lower bound %d", m, n)
	}
	return f.quantify("{" + strconv.Itoa(n) + "," + strconv.Itoa(m) + "}"), nil
}

func (f Fragment) quantify(suffix string) Fragment {
	return Fragment{text: f.Precedence().text + suffix}
}

// Slice is the bounds form of an Index key, in the manner of s[lo:hi].
// A nil field is an omitted bound. Step must be nil.
type Slice struct {
	Lo, Hi, Step *int
}

// Bound returns a pointer to n, for building a Slice.
func Bound(n int) *int {
	return &n
}

// Index applies a quantifier selected by key.
//
// An integer key repeats exactly that many times. A Slice key maps its
// bounds onto the quantifiers:
//
//	Slice{}                           // ZeroOrMore
//	Slice{Lo: Bound(1)}               // OneOrMore
//	Slice{Lo: Bound(n)}               // AtLeast(n)
//	Slice{Hi: Bound(1)}               // Optional
//	Slice{Hi: Bound(m)}               // Between(0, m)
//	Slice{Lo: Bound(n), Hi: Bound(m)} // Between(n, m)
//
// Any other key type, or a Slice with a Step, returns ErrInvalidIndex.
func (f Fragment) Index(key any) (Fragment, error) {
	if s, ok := key.(Slice); ok {
		return f.slice(s)
	}
	n, ok := toInt(key)
	if !ok {
		return Fragment{}, newError("Index", ErrInvalidIndex, "key of type %T", key)
	}
	return f.Repeat(n)
}

func (f Fragment) slice(s Slice) (Fragment, error) {
	switch {
	case s.Step != nil:
		return Fragment{}, newError("Index", ErrInvalidIndex, "slice step %d", *s.Step)
	case s.Lo == nil && s.Hi == nil:
		return f.ZeroOrMore(), nil
	case s.Hi == nil && *s.Lo == 1:
		return f.OneOrMore(), nil
	case s.Hi == nil:
		return f.AtLeast(*s.Lo)
	case s.Lo == nil && *s.Hi == 1:
		return f.Optional(), nil
	case s.Lo == nil:
		return f.Between(0, *s.Hi)
	default:
		return f.Between(*s.Lo, *s.Hi)
	}
}

// Times applies a counted quantifier: an integer repeats exactly that many
// times, a pair of integers ([2]int or a two-element []int) is passed to
// Between. Anything else returns ErrUnsupportedMultiplier.
//
//	Raw("a").Times(2)            // (?:a){2}
//	Raw("a").Times([2]int{1, 3}) // (?:a){1,3}
func (f Fragment) Times(arg any) (Fragment, error) {
	switch v := arg.(type) {
	case [2]int:
		return f.Between(v[0], v[1])
	case []int:
		if len(v) != 2 {
			return Fragment{}, newError("Times", ErrUnsupportedMultiplier, "expected 2 integers, got %d", len(v))
		}
		return f.Between(v[0], v[1])
	}
	n, ok := toInt(arg)
	if !ok {
		return Fragment{}, newError("Times", ErrUnsupportedMultiplier, "argument of type %T", arg)
	}
	return f.Repeat(n)
}

// toInt converts any Go integer kind to int. Strings, floats and other
// types that cast would coerce are rejected.
func toInt(v any) (int, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		n, err := cast.ToIntE(v)
		return n, err == nil
	default:
		return 0, false
	}
}
