package rex

import (
	"sync"

	"github.com/coregx/coregex"
	"github.com/samber/lo"
)

// Regex is a compiled Fragment.
//
// Compiling is the only step that involves the engine; it validates the
// pattern text and reports engine errors unchanged. A Regex is safe for
// concurrent use and should be kept and reused instead of compiling the same
// fragment again (see the cache package for a shared store).
type Regex struct {
	fragment Fragment
	search   *coregex.Regex // unanchored
	names    []string

	build    func(string) (*coregex.Regex, error)
	fullOnce sync.Once
	full     *coregex.Regex // \A(?:...)\z, nil if it could not be built
}

// Compile compiles a fragment with the default configuration.
//
// Every group name in the fragment must be unique; a repeated name returns
// ErrDuplicateName.
//
// Example:
//
//	re, err := rex.Compile(rex.Digit.OneOrMore())
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(f Fragment) (*Regex, error) {
	return compile(f, func(pattern string) (*coregex.Regex, error) {
		return coregex.Compile(pattern)
	})
}

// MustCompile is like Compile but panics if the fragment cannot be compiled.
func MustCompile(f Fragment) *Regex {
	re, err := Compile(f)
	if err != nil {
		panic("rex: Compile(`" + f.text + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a fragment with a custom engine configuration.
// The configuration is validated first and a *ConfigError is returned if it
// is out of range.
func CompileWithConfig(f Fragment, config Config) (*Regex, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	ec := config.engine()
	return compile(f, func(pattern string) (*coregex.Regex, error) {
		return coregex.CompileWithConfig(pattern, ec)
	})
}

func compile(f Fragment, build func(string) (*coregex.Regex, error)) (*Regex, error) {
	search, err := build(f.text)
	if err != nil {
		return nil, err
	}
	names := search.SubexpNames()
	// the engine accepts repeated names, which would make name lookups ambiguous
	named := lo.Filter(names, func(n string, _ int) bool { return n != "" })
	if dup := lo.FindDuplicates(named); len(dup) > 0 {
		return nil, newError("Compile", ErrDuplicateName, "group %q in `%s`", dup[0], f.text)
	}
	return &Regex{
		fragment: f,
		search:   search,
		names:    names,
		build:    build,
	}, nil
}

// fullRegex returns the \A...\z variant, compiled on first use. The wrapping
// group does not capture, so group numbers are unchanged.
func (r *Regex) fullRegex() *coregex.Regex {
	r.fullOnce.Do(func() {
		full, err := r.build(`\A(?:` + r.fragment.text + `)\z`)
		if err == nil {
			r.full = full
		}
	})
	return r.full
}

// String returns the pattern text.
func (r *Regex) String() string {
	return r.fragment.text
}

// Fragment returns the fragment the Regex was compiled from.
func (r *Regex) Fragment() Fragment {
	return r.fragment
}

// NumSubexp returns the number of capturing groups in the pattern.
func (r *Regex) NumSubexp() int {
	return len(r.names) - 1
}

// SubexpNames returns the names of the capturing groups. names[0] is the
// whole match and always empty; unnamed groups have empty names.
// The slice is shared and must not be modified.
func (r *Regex) SubexpNames() []string {
	return r.names
}

// SubexpIndex returns the index of the group with the given name, or -1.
func (r *Regex) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}
	_, i, ok := lo.FindIndexOf(r.names, func(n string) bool { return n == name })
	if !ok {
		return -1
	}
	return i
}

// MatchString reports whether s contains a match anywhere.
func (r *Regex) MatchString(s string) bool {
	return r.search.MatchString(s)
}

// Search returns the leftmost match anywhere in s, or nil.
func (r *Regex) Search(s string) *Match {
	return r.newMatch(s, r.search.FindStringSubmatchIndex(s))
}

// MatchPrefix returns a match that starts at the beginning of s, or nil.
//
// The leftmost match starts at offset 0 whenever any match does, and it is
// then the match an anchored search would pick, so no extra engine is needed.
func (r *Regex) MatchPrefix(s string) *Match {
	loc := r.search.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 {
		return nil
	}
	return r.newMatch(s, loc)
}

// FullMatch returns a match spanning all of s, or nil.
//
// The anchored variant is compiled on the first call. If it cannot be built
// (the extra group can exceed the engine's recursion limit), the leftmost
// search match is accepted when it spans all of s.
func (r *Regex) FullMatch(s string) *Match {
	if full := r.fullRegex(); full != nil {
		return r.newMatch(s, full.FindStringSubmatchIndex(s))
	}
	loc := r.search.FindStringSubmatchIndex(s)
	if loc == nil || loc[0] != 0 || loc[1] != len(s) {
		return nil
	}
	return r.newMatch(s, loc)
}

// Split slices s into the substrings between matches. n limits the number
// of substrings as in strings.SplitN; n < 0 returns all of them.
func (r *Regex) Split(s string, n int) []string {
	return r.search.Split(s, n)
}

// ReplaceAll replaces every match in s with repl. Inside repl, $1 or
// ${name} expand to the text of the corresponding group.
func (r *Regex) ReplaceAll(s, repl string) string {
	return r.search.ReplaceAllString(s, repl)
}

// ReplaceAllLiteral replaces every match in s with repl, taken verbatim.
func (r *Regex) ReplaceAllLiteral(s, repl string) string {
	return r.search.ReplaceAllLiteralString(s, repl)
}

// ReplaceAllFunc replaces every match in s with the result of repl applied
// to the matched text.
func (r *Regex) ReplaceAllFunc(s string, repl func(string) string) string {
	return r.search.ReplaceAllStringFunc(s, repl)
}

// FindAll returns successive non-overlapping matches in s.
// If n >= 0, at most n matches are returned.
func (r *Regex) FindAll(s string, n int) []*Match {
	all := r.search.FindAllStringSubmatchIndex(s, n)
	if len(all) == 0 {
		return nil
	}
	return lo.Map(all, func(loc []int, _ int) *Match {
		return r.newMatch(s, loc)
	})
}

func (r *Regex) newMatch(s string, loc []int) *Match {
	if loc == nil {
		return nil
	}
	return &Match{input: s, loc: loc, names: r.names}
}

// Match is one successful match and its group bindings.
type Match struct {
	input string
	loc   []int
	names []string
}

// Text returns the matched text.
func (m *Match) Text() string {
	return m.input[m.loc[0]:m.loc[1]]
}

// Start returns the byte offset of the match in the input.
func (m *Match) Start() int {
	return m.loc[0]
}

// End returns the byte offset just past the match.
func (m *Match) End() int {
	return m.loc[1]
}

// Group returns the text of group i (0 is the whole match). ok is false if i
// is out of range or the group did not participate in the match.
func (m *Match) Group(i int) (text string, ok bool) {
	if i < 0 || 2*i+1 >= len(m.loc) || m.loc[2*i] < 0 {
		return "", false
	}
	return m.input[m.loc[2*i]:m.loc[2*i+1]], true
}

// Named returns the text of the named group. ok is false if there is no
// such group or it did not participate in the match.
func (m *Match) Named(name string) (text string, ok bool) {
	if name == "" {
		return "", false
	}
	for i, n := range m.names {
		if n == name {
			return m.Group(i)
		}
	}
	return "", false
}

// Names returns the names of the named groups in pattern order.
func (m *Match) Names() []string {
	return lo.Filter(m.names, func(n string, _ int) bool { return n != "" })
}

// GroupDict returns the bindings of every named group that participated in
// the match.
func (m *Match) GroupDict() map[string]string {
	dict := make(map[string]string)
	for i, n := range m.names {
		if n == "" {
			continue
		}
		if text, ok := m.Group(i); ok {
			dict[n] = text
		}
	}
	return dict
}
