package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeString converts a matched quoted-string token (delimiters and
// escapes included) into its semantic value. The matcher has already
// validated the shape of every escape, so the only failures left are
// unicode escapes naming non-scalar code points.
func decodeString(repr string) (string, *SyntaxError) {
	body := repr[1 : len(repr)-1]

	var sb strings.Builder
	sb.Grow(len(body))

	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}

		escStart := i + 1 // offset within repr, past the opening quote
		i++
		e := body[i]
		i++

		switch e {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 's':
			sb.WriteByte(' ')
		case ' ', '\t':
			// Whitespace escape: the backslash and the run it introduces
			// are elided from the value.
			for i < len(body) && (body[i] == ' ' || body[i] == '\t') {
				i++
			}
		case 'u':
			i++ // '{'
			end := strings.IndexByte(body[i:], '}')
			hex := body[i : i+end]
			i += end + 1

			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
				return "", &SyntaxError{
					Message: fmt.Sprintf("\\u{%s} is not a unicode scalar value", hex),
					Offset:  escStart,
					Length:  i - escStart + 1,
				}
			}
			sb.WriteRune(rune(v))
		}
	}

	return sb.String(), nil
}
