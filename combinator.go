package rex

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Concat joins fragments left to right.
//
//	Concat(Raw("a"), Raw("b"), Raw("c")) // abc
func Concat(fragments ...Fragment) Fragment {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.text)
	}
	return Fragment{text: b.String()}
}

// Seq joins parts left to right. A string part is escaped with Literal; a
// Fragment part is used as-is. Any other type returns ErrUnsupportedPart.
//
//	Seq(Must(HexDigit.Repeat(4)), "-", Must(HexDigit.Repeat(4)))
func Seq(parts ...any) (Fragment, error) {
	out := Fragment{}
	for i, p := range parts {
		switch v := p.(type) {
		case string:
			out = out.Then(Literal(v))
		case Fragment:
			out = out.Then(v)
		default:
			return Fragment{}, newError("Seq", ErrUnsupportedPart, "part %d has type %T", i, p)
		}
	}
	return out, nil
}

// Alternation folds Or over fragments left to right. A single fragment is
// returned unchanged and no fragments yield the empty fragment.
//
//	Alternation(Raw("a"), Raw("b"), Raw("c")) // (?:(?:(?:a)|(?:b))|(?:c))
func Alternation(fragments ...Fragment) Fragment {
	if len(fragments) == 0 {
		return Fragment{}
	}
	out := fragments[0]
	for _, f := range fragments[1:] {
		out = out.Or(f)
	}
	return out
}

// Group is one entry of a named-group aggregate.
type Group struct {
	Name     string
	Fragment Fragment
}

// Named pairs a capture name with a fragment for Build.
func Named(name string, f Fragment) Group {
	return Group{Name: name, Fragment: f}
}

// Build captures every fragment under its name and concatenates the
// results in argument order. Each group becomes exactly one named capturing
// group, whether or not its fragment was grouped already.
//
//	Build(Named("key", Word.OneOrMore()), Named("eq", Literal("=")))
//	// (?P<key>(?:\w)+)(?P<eq>=)
func Build(groups ...Group) Fragment {
	out := Fragment{}
	for _, g := range groups {
		out = out.Then(g.Fragment.CaptureAs(g.Name))
	}
	return out
}

// BuildMap is Build over an ordered map, in insertion order.
func BuildMap(m *orderedmap.OrderedMap[string, Fragment]) Fragment {
	out := Fragment{}
	if m == nil {
		return out
	}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = out.Then(pair.Value.CaptureAs(pair.Key))
	}
	return out
}
