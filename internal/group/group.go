// Package group classifies the outermost grouping of pattern text.
//
// The classifier only looks at outer syntax: it answers whether a piece of
// pattern text is one parenthesized group with nothing outside it, and what
// kind of group that is. It never validates the interior; malformed text is
// the engine's problem at compile time.
package group

// Kind describes the outermost group of a pattern text.
type Kind uint8

const (
	// None means the text is not a single group: it is empty, does not
	// start with '(', or has content after the group closes.
	None Kind = iota

	// Capturing is a plain capturing group: (...)
	Capturing

	// Named is a named capturing group: (?P<name>...) or (?<name>...)
	Named

	// NonCapturing is a non-capturing group: (?:...)
	NonCapturing

	// Flags is a flag group with a body such as (?i:...). It does not
	// capture and its flags must be kept when rewriting. A bare flag
	// setting like (?i) is None: it has no body to group.
	Flags
)

// String returns a human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Capturing:
		return "Capturing"
	case Named:
		return "Named"
	case NonCapturing:
		return "NonCapturing"
	case Flags:
		return "Flags"
	default:
		return "Unknown"
	}
}

// IsCapturing reports whether the group captures (plain or named).
func (k Kind) IsCapturing() bool {
	return k == Capturing || k == Named
}

// Classify returns the kind of the outermost group of text.
//
// The scan is depth-aware: escaped parentheses and parentheses inside
// bracket expressions do not count. The text is a group only if the '('
// at offset 0 is closed by the final byte.
func Classify(text string) Kind {
	if !isGrouped(text) {
		return None
	}
	if len(text) < 3 || text[1] != '?' {
		return Capturing
	}
	switch text[2] {
	case ':':
		return NonCapturing
	case '<':
		// (?<name>...) but not a lookbehind (?<=...) / (?<!...)
		if len(text) > 3 && (text[3] == '=' || text[3] == '!') {
			return Flags
		}
		return Named
	case 'P':
		if len(text) > 3 && text[3] == '<' {
			return Named
		}
	}
	if bareFlags(text) {
		return None
	}
	return Flags
}

// bareFlags reports whether text is a flag setting such as (?i) or (?-s),
// which changes flags for what follows but has no body to quantify.
func bareFlags(text string) bool {
	for i := 2; i < len(text)-1; i++ {
		switch c := text[i]; {
		case c == '-', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		default:
			return false
		}
	}
	return true
}

// Interior returns the group body of text, without the opening marker and
// the closing parenthesis. For Named groups the name is dropped. It returns
// text unchanged when the kind is None or Flags, since those have no body
// that can be rewrapped without changing meaning.
func Interior(text string) string {
	switch Classify(text) {
	case Capturing:
		return text[1 : len(text)-1]
	case NonCapturing:
		return text[3 : len(text)-1]
	case Named:
		end := nameEnd(text)
		if end < 0 {
			return text
		}
		return text[end+1 : len(text)-1]
	default:
		return text
	}
}

// Name returns the capture name of a Named group, or "" for any other kind.
func Name(text string) string {
	if Classify(text) != Named {
		return ""
	}
	start := 3 // (?<
	if text[2] == 'P' {
		start = 4 // (?P<
	}
	end := nameEnd(text)
	if end < start {
		return ""
	}
	return text[start:end]
}

// nameEnd returns the offset of the '>' closing a group name.
func nameEnd(text string) int {
	for i := 3; i < len(text); i++ {
		if text[i] == '>' {
			return i
		}
	}
	return -1
}

// isGrouped reports whether the '(' at offset 0 is matched by the last byte.
func isGrouped(text string) bool {
	n := len(text)
	if n < 2 || text[0] != '(' || text[n-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < n; i++ {
		switch text[i] {
		case '\\':
			i++ // skip escaped byte
		case '[':
			i = skipClass(text, i)
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i == n-1
			}
			if depth < 0 {
				return false
			}
		}
	}
	return false
}

// skipClass returns the offset of the ']' closing the bracket expression
// opened at text[open]. An unterminated class consumes the rest of the text.
func skipClass(text string, open int) int {
	i := open + 1
	if i < len(text) && text[i] == '^' {
		i++
	}
	// a leading ']' is a member, not the terminator
	if i < len(text) && text[i] == ']' {
		i++
	}
	for ; i < len(text); i++ {
		switch text[i] {
		case '\\':
			i++
		case '[':
			// [:alpha:] inside a class
			if i+1 < len(text) && text[i+1] == ':' {
				if end := posixEnd(text, i+2); end > 0 {
					i = end
				}
			}
		case ']':
			return i
		}
	}
	return len(text) - 1
}

// posixEnd returns the offset of the ']' in ":]" closing a POSIX class name
// that starts at from, or -1.
func posixEnd(text string, from int) int {
	for i := from; i+1 < len(text); i++ {
		if text[i] == ':' && text[i+1] == ']' {
			return i + 1
		}
		if text[i] == ']' {
			return -1
		}
	}
	return -1
}
