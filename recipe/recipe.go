// Package recipe describes patterns declaratively in YAML.
//
// A recipe is an ordered set of named parts. Each part is a tree of fragment
// operations (see Node) and becomes one named capturing group of the final
// pattern, in file order:
//
//	name: date
//	mode: full
//	parts:
//	  year:
//	    repeat: {of: {const: digit}, n: 4}
//	  month:
//	    seq:
//	      - lit: "-"
//	      - repeat: {of: {const: digit}, n: 2}
//
// Recipes only drive the fragment algebra; they never contain regular
// expression syntax other than through the raw operation.
package recipe

import (
	"embed"
	"fmt"
	"os"
	"path"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/coregx/rex"
)

// Mode selects how a compiled recipe is applied to input.
type Mode string

const (
	// ModeSearch finds the leftmost match anywhere in the input.
	ModeSearch Mode = "search"
	// ModePrefix requires the match to start at the beginning of the input.
	ModePrefix Mode = "prefix"
	// ModeFull requires the match to span the whole input.
	ModeFull Mode = "full"
)

// ParseMode validates a mode name. The empty string selects ModeSearch.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeSearch, nil
	case ModeSearch, ModePrefix, ModeFull:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected search, prefix or full)", s)
	}
}

// Match applies re to s in mode m.
func (m Mode) Match(re *rex.Regex, s string) *rex.Match {
	switch m {
	case ModePrefix:
		return re.MatchPrefix(s)
	case ModeFull:
		return re.FullMatch(s)
	default:
		return re.Search(s)
	}
}

// Recipe is a parsed recipe file.
type Recipe struct {
	Name        string
	Description string
	Mode        Mode
	Parts       *orderedmap.OrderedMap[string, *Node]
}

type file struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Mode        string    `yaml:"mode"`
	Parts       yaml.Node `yaml:"parts"`
}

// Parse decodes a recipe from YAML. Errors in individual parts are collected
// and returned together.
func Parse(data []byte) (*Recipe, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("unable to decode recipe: %w", err)
	}

	mode, err := ParseMode(f.Mode)
	if err != nil {
		return nil, err
	}
	if f.Parts.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("recipe %q: parts must be a mapping of name to node", f.Name)
	}

	r := &Recipe{
		Name:        f.Name,
		Description: f.Description,
		Mode:        mode,
		Parts:       orderedmap.New[string, *Node](),
	}
	var errs error
	for i := 0; i+1 < len(f.Parts.Content); i += 2 {
		key, value := f.Parts.Content[i], f.Parts.Content[i+1]
		if _, dup := r.Parts.Get(key.Value); dup {
			errs = multierr.Append(errs, fmt.Errorf("part %q: line %d: duplicate name", key.Value, key.Line))
			continue
		}
		node := &Node{}
		if err := value.Decode(node); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("part %q: %w", key.Value, err))
			continue
		}
		r.Parts.Set(key.Value, node)
	}
	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// Load reads and parses a recipe file.
func Load(name string) (*Recipe, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("unable to read recipe: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", name, err)
	}
	return r, nil
}

// Fragment builds the recipe's pattern: every part captured under its name,
// concatenated in file order. All failing parts are reported.
func (r *Recipe) Fragment() (rex.Fragment, error) {
	fragments := orderedmap.New[string, rex.Fragment]()
	var errs error
	for pair := r.Parts.Oldest(); pair != nil; pair = pair.Next() {
		f, err := pair.Value.Fragment()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("part %q: %w", pair.Key, err))
			continue
		}
		fragments.Set(pair.Key, f)
	}
	if errs != nil {
		return rex.Fragment{}, errs
	}
	return rex.BuildMap(fragments), nil
}

//go:embed builtin/*.yaml
var builtins embed.FS

// BuiltinNames returns the names of the embedded recipes.
func BuiltinNames() []string {
	entries, err := builtins.ReadDir("builtin")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	slices.Sort(names)
	return names
}

// Builtin returns an embedded recipe by name.
func Builtin(name string) (*Recipe, error) {
	data, err := builtins.ReadFile(path.Join("builtin", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown builtin recipe %q (available: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(data)
}
