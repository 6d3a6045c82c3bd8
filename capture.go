package rex

import (
	"github.com/coregx/rex/internal/group"
)

// Capture turns the fragment into a capturing group.
//
// An existing group is rewritten rather than wrapped again: a capturing
// group (plain or named) is returned unchanged and a non-capturing group
// loses its (?: marker. Anything else is wrapped.
//
//	Raw("abc").Capture()     // (abc)
//	Raw("(?:abc)").Capture() // (abc)
//	Raw("(abc)").Capture()   // (abc)
func (f Fragment) Capture() Fragment {
	switch group.Classify(f.text) {
	case group.Capturing, group.Named:
		return f
	case group.NonCapturing:
		return Fragment{text: "(" + group.Interior(f.text) + ")"}
	default:
		return Fragment{text: "(" + f.text + ")"}
	}
}

// CaptureAs turns the fragment into a capturing group named name.
//
// The group body is never altered and never double-wrapped: plain,
// non-capturing and already named groups are renamed in place.
//
//	Raw("abc").CaptureAs("word")         // (?P<word>abc)
//	Raw("(?:abc)").CaptureAs("word")     // (?P<word>abc)
//	Raw("(?P<x>abc)").CaptureAs("word")  // (?P<word>abc)
//	Raw("[0-9]+").CaptureAs("number")    // (?P<number>[0-9]+)
//
// The name is not validated. An invalid or repeated name is reported by
// the engine when the final pattern is compiled.
func (f Fragment) CaptureAs(name string) Fragment {
	switch group.Classify(f.text) {
	case group.Capturing, group.Named, group.NonCapturing:
		return named(name, group.Interior(f.text))
	default:
		// flag groups keep their flags inside the new group
		return named(name, f.text)
	}
}

func named(name, body string) Fragment {
	return Fragment{text: "(?P<" + name + ">" + body + ")"}
}
