package recipe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node is one step of a recipe: a primitive or an operation applied to
// nested nodes. In YAML a node is a mapping with exactly one key naming the
// operation:
//
//	lit: "://"                      # Literal
//	raw: '\pL'                      # Raw
//	const: digit                    # named constant
//	class: ["a-f", "A-F"]           # Class
//	class: {members: ["?#"], negate: true}
//	seq: [node, node, ...]          # Concat
//	alt: [node, node, ...]          # Alternation
//	optional: node                  # also one_or_more, zero_or_more
//	at_least: {of: node, n: 2}
//	repeat: {of: node, n: 8}
//	between: {of: node, min: 1, max: 5}
//	capture: {of: node, name: port} # name may be omitted
type Node struct {
	Op       string
	Text     string   // lit, raw, const
	Members  []string // class
	Negate   bool     // class
	Children []*Node  // seq, alt
	Of       *Node    // quantifiers, capture
	N        int      // at_least, repeat
	Min, Max int      // between
	Name     string   // capture
	Line     int
}

type classArgs struct {
	Members []string `yaml:"members"`
	Negate  bool     `yaml:"negate"`
}

type countArgs struct {
	Of *Node `yaml:"of"`
	N  int   `yaml:"n"`
}

type rangeArgs struct {
	Of  *Node `yaml:"of"`
	Min int   `yaml:"min"`
	Max int   `yaml:"max"`
}

type captureArgs struct {
	Of   *Node  `yaml:"of"`
	Name string `yaml:"name"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("line %d: node must be a mapping with exactly one operation", value.Line)
	}
	n.Op = value.Content[0].Value
	n.Line = value.Line
	arg := value.Content[1]

	var err error
	switch n.Op {
	case "lit", "raw", "const":
		if arg.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %s expects a string", arg.Line, n.Op)
		}
		n.Text = arg.Value
	case "class":
		if arg.Kind == yaml.SequenceNode {
			err = arg.Decode(&n.Members)
			break
		}
		var ca classArgs
		err = arg.Decode(&ca)
		n.Members, n.Negate = ca.Members, ca.Negate
	case "seq", "alt":
		if arg.Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: %s expects a list of nodes", arg.Line, n.Op)
		}
		err = arg.Decode(&n.Children)
	case "optional", "one_or_more", "zero_or_more":
		n.Of = &Node{}
		err = arg.Decode(n.Of)
	case "at_least", "repeat":
		var ca countArgs
		err = arg.Decode(&ca)
		n.Of, n.N = ca.Of, ca.N
	case "between":
		var ra rangeArgs
		err = arg.Decode(&ra)
		n.Of, n.Min, n.Max = ra.Of, ra.Min, ra.Max
	case "capture":
		var ca captureArgs
		err = arg.Decode(&ca)
		n.Of, n.Name = ca.Of, ca.Name
	default:
		return fmt.Errorf("line %d: unknown operation %q", value.Line, n.Op)
	}
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", arg.Line, n.Op, err)
	}
	return nil
}
