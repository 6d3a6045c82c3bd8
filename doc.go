// Package rex builds regular expressions from small composable fragments.
//
// A Fragment is an immutable piece of pattern text that is always safe to
// compose further: quantifiers and alternation wrap their operands in a
// non-capturing group when needed, so concatenating or quantifying a
// fragment never changes the grouping of its parts. The classic trap
//
//	"ab" + "?"      // matches "a" or "ab"
//
// cannot happen:
//
//	rex.Literal("ab").Optional() // (?:ab)?
//
// Fragments are compiled by the coregex engine (same syntax as Go's
// regexp package) in an explicit second step:
//
//	scheme := rex.Concat(rex.Start, rex.Literal("http"), rex.Literal("s").Optional(), rex.Literal("://"))
//	re, err := rex.Compile(scheme)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.MatchString("https://example.com") // true
//
// Named groups are assembled with Build, which captures each fragment under
// its name and concatenates them in order:
//
//	p := rex.Build(
//	    rex.Named("year", rex.Must(rex.Digit.Repeat(4))),
//	    rex.Named("sep", rex.Literal("-")),
//	    rex.Named("month", rex.Must(rex.Digit.Repeat(2))),
//	)
//	// (?P<year>(?:\d){4})(?P<sep>-)(?P<month>(?:\d){2})
//
// Counted quantifiers validate their bounds and return an error; Must turns
// that error into a panic for bounds known at compile time.
//
// The package never parses existing regex syntax. Fragments are generative
// only; the engine validates the final text when it is compiled.
package rex
