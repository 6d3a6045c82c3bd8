package recipe

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/coregx/rex"
)

func TestLoad(t *testing.T) {
	r, err := Load(filepath.Join("testdata", "date.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "date", r.Name)
	assert.Equal(t, ModeFull, r.Mode)
	assert.Equal(t, 3, r.Parts.Len())

	var keys []string
	for pair := r.Parts.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"year", "month", "day"}, keys, "parts keep file order")

	f, err := r.Fragment()
	require.NoError(t, err)
	assert.Equal(t, `(?P<year>(?:\d){4})(?P<month>-((?:\d){2}))(?P<day>-(?:\d){2})`, f.String())

	m := r.Mode.Match(rex.MustCompile(f), "2024-06-30")
	require.NotNil(t, m)
	assert.Equal(t, map[string]string{"year": "2024", "month": "-06", "day": "-30"}, m.GroupDict())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	assert.ErrorContains(t, err, "unable to read recipe")
}

func TestParseNodes(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"lit", `lit: "a.b"`, `a\.b`},
		{"raw", `raw: '\pL'`, `\pL`},
		{"const", `const: hex_digit`, `[0-9a-fA-F]`},
		{"class list", `class: ["a-f", "0-9"]`, `[a-f0-9]`},
		{"class negated", `class: {members: ["?#"], negate: true}`, `[^?#]`},
		{"seq", `seq: [{lit: a}, {lit: b}]`, `ab`},
		{"alt", `alt: [{lit: a}, {lit: b}]`, `(?:(?:a)|(?:b))`},
		{"optional", `optional: {lit: s}`, `(?:s)?`},
		{"one_or_more", `one_or_more: {const: digit}`, `(?:\d)+`},
		{"zero_or_more", `zero_or_more: {const: digit}`, `(?:\d)*`},
		{"at_least", `at_least: {of: {const: digit}, n: 2}`, `(?:\d){2,}`},
		{"repeat", `repeat: {of: {const: digit}, n: 3}`, `(?:\d){3}`},
		{"between", `between: {of: {const: digit}, min: 1, max: 5}`, `(?:\d){1,5}`},
		{"capture", `capture: {of: {lit: x}}`, `(x)`},
		{"capture named", `capture: {of: {lit: x}, name: inner}`, `(?P<inner>x)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse([]byte("parts:\n  p:\n    " + tt.yaml + "\n"))
			require.NoError(t, err)
			node, ok := r.Parts.Get("p")
			require.True(t, ok)
			f, err := node.Fragment()
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{"bad yaml", "parts: [", "unable to decode recipe"},
		{"bad mode", "mode: sideways\nparts: {p: {lit: a}}", "unknown mode"},
		{"parts not a mapping", "parts: [a, b]", "parts must be a mapping"},
		{"unknown op", "parts: {p: {glob: a}}", `unknown operation "glob"`},
		{"two ops", "parts: {p: {lit: a, raw: b}}", "exactly one operation"},
		{"seq not list", "parts: {p: {seq: {lit: a}}}", "expects a list"},
		{"lit not scalar", "parts: {p: {lit: [a]}}", "expects a string"},
		{"duplicate part", "parts:\n  p: {lit: a}\n  p: {lit: b}\n", "duplicate name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestParseCollectsErrors(t *testing.T) {
	_, err := Parse([]byte("parts:\n  a: {glob: x}\n  b: {lit: ok}\n  c: {seq: 1}\n"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestFragmentErrors(t *testing.T) {
	r, err := Parse([]byte(`
parts:
  equal: {between: {of: {const: digit}, min: 2, max: 2}}
  negative: {repeat: {of: {const: digit}, n: -1}}
  nested: {seq: [{optional: {const: nope}}]}
  missing: {optional: {capture: {name: x}}}
  fine: {lit: ok}
`))
	require.NoError(t, err)

	_, err = r.Fragment()
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 4)
	assert.True(t, errors.Is(errs[0], rex.ErrInvalidRange))
	assert.True(t, errors.Is(errs[1], rex.ErrInvalidRange))
	assert.True(t, errors.Is(errs[2], ErrInvalidNode))
	assert.ErrorContains(t, errs[2], `unknown constant "nope"`)
	assert.True(t, errors.Is(errs[3], ErrInvalidNode))
	assert.ErrorContains(t, errs[0], `part "equal"`)
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeSearch, "search": ModeSearch, "prefix": ModePrefix, "full": ModeFull} {
		got, err := ParseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseMode("all")
	assert.Error(t, err)
}

func TestModeMatch(t *testing.T) {
	re := rex.MustCompile(rex.Digit.OneOrMore())
	assert.NotNil(t, ModeSearch.Match(re, "a1"))
	assert.Nil(t, ModePrefix.Match(re, "a1"))
	assert.NotNil(t, ModePrefix.Match(re, "1a"))
	assert.Nil(t, ModeFull.Match(re, "1a"))
	assert.NotNil(t, ModeFull.Match(re, "12"))
}

func TestBuiltinURL(t *testing.T) {
	r, err := Builtin("url")
	require.NoError(t, err)
	assert.Equal(t, ModePrefix, r.Mode)

	f, err := r.Fragment()
	require.NoError(t, err)
	re := rex.MustCompile(f)
	assert.Equal(t, []string{"", "scheme", "domain_name", "port", "path", "query", "fragment"}, re.SubexpNames())

	m := r.Mode.Match(re, "https://www.google.com:8080?q=hello#world")
	require.NotNil(t, m)
	got := m.GroupDict()
	assert.Equal(t, "https://", got["scheme"])
	assert.Equal(t, "www.google.com", got["domain_name"])
	assert.Equal(t, ":8080", got["port"])
	assert.Equal(t, "?q=hello", got["query"])
	assert.Equal(t, "#world", got["fragment"])

	assert.Nil(t, r.Mode.Match(re, "ftp://www.google.com"))
}

func TestBuiltinUUID(t *testing.T) {
	r, err := Builtin("uuid")
	require.NoError(t, err)

	f, err := r.Fragment()
	require.NoError(t, err)
	re := rex.MustCompile(f)

	m := r.Mode.Match(re, "01234567-89ab-cdef-0123-456789abcdef")
	require.NotNil(t, m)
	low, _ := m.Named("time_low")
	assert.Equal(t, "01234567", low)

	assert.Nil(t, r.Mode.Match(re, "01234567-89ab-cdef-0123-456789abcdefa"))
}

func TestBuiltinNames(t *testing.T) {
	assert.Equal(t, []string{"url", "uuid"}, BuiltinNames())

	_, err := Builtin("nope")
	assert.ErrorContains(t, err, "available: url, uuid")
}

func TestConstantNames(t *testing.T) {
	names := ConstantNames()
	assert.Contains(t, names, "digit")
	assert.Contains(t, names, "hex_digit")
	assert.IsIncreasing(t, names)
}
