package sqltpl

/*
A trusted, pre-formatted SQL snippet that must be spliced into the query text
verbatim, optionally carrying its own ordered arguments to be spliced into the
output argument list at the same position. Treated as immutable once
constructed.

No validation is performed. The SQL-safety of the text is the caller's
responsibility; this is an explicit trust boundary, not a defect. Never pass
unsanitized external input as fragment text.
*/
type Fragment struct {
	Text string
	Args []interface{}
}

// Constructs a `Fragment`. See the type for the trust caveats.
func Raw(text string, args ...interface{}) Fragment {
	return Fragment{Text: text, Args: args}
}

// Implement `fmt.Stringer`.
func (self Fragment) String() string { return self.Text }

/*
Implement `ISql`. The text is spliced verbatim, contributing no placeholders;
the fragment's own arguments, if any, are appended in order.
*/
func (self Fragment) StatementAppend(out *Statement) {
	appendStr(&out.Text, self.Text)
	out.Args = append(out.Args, self.Args...)
}

/*
Replaces each special character with its two-character escape form, following
the MySQL literal-escaping convention: NUL, backspace, tab, Ctrl-Z, line feed,
carriage return, double quote, single quote, backslash, and percent. Returns
the input unchanged (without allocating) when it contains none of them.

This is NOT a substitute for placeholder binding and must not be treated as
injection-proof. Its sole legitimate use is embedding a value inside a
fragment's verbatim text when binding can't be used, such as a `like` pattern
built as raw text.
*/
func Escape(src string) string {
	var buf []byte

	for i := 0; i < len(src); i++ {
		char := src[i]
		esc, ok := escapeChar(char)
		if !ok {
			if buf != nil {
				buf = append(buf, char)
			}
			continue
		}
		if buf == nil {
			buf = make([]byte, 0, len(src)+8)
			buf = append(buf, src[:i]...)
		}
		buf = append(buf, '\\', esc)
	}

	if buf == nil {
		return src
	}
	return bytesToMutableString(buf)
}

func escapeChar(char byte) (byte, bool) {
	switch char {
	case 0:
		return '0', true
	case '\b':
		return 'b', true
	case '\t':
		return 't', true
	case 0x1a:
		return 'z', true
	case '\n':
		return 'n', true
	case '\r':
		return 'r', true
	case '"':
		return '"', true
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	case '%':
		return '%', true
	default:
		return 0, false
	}
}
