package recipe

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/coregx/rex"
)

// ErrInvalidNode indicates a node that cannot be turned into a fragment.
var ErrInvalidNode = errors.New("invalid recipe node")

var constants = map[string]rex.Fragment{
	"start":             rex.Start,
	"end":               rex.End,
	"digit":             rex.Digit,
	"word":              rex.Word,
	"word_boundary":     rex.WordBoundary,
	"non_word_boundary": rex.NonWordBoundary,
	"whitespace":        rex.Whitespace,
	"any":               rex.Any,
	"alphas":            rex.Alphas,
	"upper":             rex.Upper,
	"lower":             rex.Lower,
	"alphanums":         rex.Alphanums,
	"hex_digit":         rex.HexDigit,
}

// ConstantNames returns the names accepted by the const operation.
func ConstantNames() []string {
	names := lo.Keys(constants)
	slices.Sort(names)
	return names
}

// Fragment evaluates the node.
func (n *Node) Fragment() (rex.Fragment, error) {
	if n == nil {
		return rex.Fragment{}, fmt.Errorf("%w: missing node", ErrInvalidNode)
	}
	switch n.Op {
	case "lit":
		return rex.Literal(n.Text), nil
	case "raw":
		return rex.Raw(n.Text), nil
	case "const":
		f, ok := constants[n.Text]
		if !ok {
			return rex.Fragment{}, n.errorf("unknown constant %q (known: %s)", n.Text, strings.Join(ConstantNames(), ", "))
		}
		return f, nil
	case "class":
		if n.Negate {
			return rex.NegatedClass(n.Members...), nil
		}
		return rex.Class(n.Members...), nil
	case "seq":
		parts, err := n.children()
		if err != nil {
			return rex.Fragment{}, err
		}
		return rex.Concat(parts...), nil
	case "alt":
		parts, err := n.children()
		if err != nil {
			return rex.Fragment{}, err
		}
		return rex.Alternation(parts...), nil
	}

	of, err := n.Of.Fragment()
	if err != nil {
		return rex.Fragment{}, n.wrap(err)
	}
	switch n.Op {
	case "optional":
		return of.Optional(), nil
	case "one_or_more":
		return of.OneOrMore(), nil
	case "zero_or_more":
		return of.ZeroOrMore(), nil
	case "at_least":
		return n.check(of.AtLeast(n.N))
	case "repeat":
		return n.check(of.Repeat(n.N))
	case "between":
		return n.check(of.Between(n.Min, n.Max))
	case "capture":
		if n.Name == "" {
			return of.Capture(), nil
		}
		return of.CaptureAs(n.Name), nil
	default:
		return rex.Fragment{}, n.errorf("unknown operation %q", n.Op)
	}
}

func (n *Node) children() ([]rex.Fragment, error) {
	parts := make([]rex.Fragment, 0, len(n.Children))
	for _, c := range n.Children {
		f, err := c.Fragment()
		if err != nil {
			return nil, n.wrap(err)
		}
		parts = append(parts, f)
	}
	return parts, nil
}

func (n *Node) check(f rex.Fragment, err error) (rex.Fragment, error) {
	if err != nil {
		return rex.Fragment{}, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return f, nil
}

func (n *Node) wrap(err error) error {
	return fmt.Errorf("%s: %w", n.Op, err)
}

func (n *Node) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", n.Line, ErrInvalidNode, fmt.Sprintf(format, args...))
}
