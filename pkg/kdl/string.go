package kdl

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-kdl/internal/tokenizer"
)

// IsBareIdentifier reports whether s can be spelled as a bare (unquoted)
// identifier. Empty strings, strings with whitespace or reserved
// punctuation, number lookalikes, and keyword words must be quoted.
func IsBareIdentifier(s string) bool {
	return tokenizer.IsBareIdentifier(s)
}

// QuoteString renders s as a quoted string literal, escaping quotes,
// backslashes, and control characters. The result always re-parses to s.
func QuoteString(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7F {
				fmt.Fprintf(&sb, `\u{%x}`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// formatStringValue is the format's standard string rendering: bare when
// the bare-identifier rules independently accept the value, quoted
// otherwise.
func formatStringValue(s string) string {
	if IsBareIdentifier(s) {
		return s
	}
	return QuoteString(s)
}
