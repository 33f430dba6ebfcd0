// Package v1 implements the legacy (first-generation) KDL identifier
// grammar as a self-contained engine. The current-generation parser never
// depends on its internals: callers reach it through the pluggable
// legacy-parser hook in pkg/kdl, and its diagnostics are swallowed on the
// fallback path.
package v1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Identifier is a legacy-grammar identifier: the decoded value, the
// original spelling, and the byte range it covered.
type Identifier struct {
	Value   string
	Repr    string
	HasRepr bool
	Offset  int
	Length  int
}

// SyntaxError is a legacy-grammar diagnostic. It never reaches callers of
// the fallback parse path; only the direct legacy entry point surfaces it.
type SyntaxError struct {
	Message string
	Offset  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Message, e.Offset)
}

// The legacy lexical rules. Legacy bare identifiers draw a different
// punctuation line than the current grammar (# is legal, < > and , are
// not), and legacy strings use the \/ escape that the current grammar
// dropped.
var identifierLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Bare", Pattern: `[^\x00-\x20\\/(){}<>;\[\]=,"]+`},
})

var (
	typeString = identifierLexer.Symbols()["String"]
	typeBare   = identifierLexer.Symbols()["Bare"]
)

// ParseIdentifier parses input as a legacy identifier. The whole input
// must form exactly one identifier token.
func ParseIdentifier(input string) (*Identifier, error) {
	lx, err := identifierLexer.LexString("", input)
	if err != nil {
		return nil, &SyntaxError{Message: err.Error()}
	}

	tok, err := lx.Next()
	if err != nil {
		return nil, &SyntaxError{Message: "not a valid legacy identifier", Offset: 0}
	}
	if tok.EOF() {
		return nil, &SyntaxError{Message: "expected identifier, found end of input", Offset: 0}
	}

	next, err := lx.Next()
	if err != nil || !next.EOF() {
		return nil, &SyntaxError{Message: "unexpected trailing characters after identifier", Offset: next.Pos.Offset}
	}

	switch tok.Type {
	case typeString:
		value, serr := decodeString(tok.Value)
		if serr != nil {
			return nil, serr
		}
		return &Identifier{
			Value:   value,
			Repr:    tok.Value,
			HasRepr: true,
			Offset:  tok.Pos.Offset,
			Length:  len(tok.Value),
		}, nil
	case typeBare:
		if serr := validateBare(tok.Value); serr != nil {
			return nil, serr
		}
		return &Identifier{
			Value:   tok.Value,
			Repr:    tok.Value,
			HasRepr: true,
			Offset:  tok.Pos.Offset,
			Length:  len(tok.Value),
		}, nil
	default:
		return nil, &SyntaxError{Message: "not a valid legacy identifier", Offset: tok.Pos.Offset}
	}
}

// validateBare applies the legacy string-level rules: no digit (or
// sign-digit) prefix, and no keyword words.
func validateBare(s string) *SyntaxError {
	first := s[0]
	rest := s
	if first == '+' || first == '-' {
		rest = s[1:]
	}
	if rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		return &SyntaxError{Message: "legacy identifiers cannot begin with a digit", Offset: 0}
	}
	switch s {
	case "true", "false", "null":
		return &SyntaxError{Message: fmt.Sprintf("%q is a legacy keyword, not an identifier", s), Offset: 0}
	}
	return nil
}

// decodeString expands legacy string escapes: \" \\ \/ \b \f \n \r \t
// and \u{1-6 hex digits}.
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

		escOffset := i + 1 // within repr
		i++
		e := body[i]
		i++

		switch e {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case '/':
			sb.WriteByte('/')
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
		case 'u':
			if i >= len(body) || body[i] != '{' {
				return "", &SyntaxError{Message: "expected '{' after '\\u'", Offset: escOffset}
			}
			i++
			end := strings.IndexByte(body[i:], '}')
			if end < 0 || end == 0 || end > 6 {
				return "", &SyntaxError{Message: "invalid unicode escape", Offset: escOffset}
			}
			v, err := strconv.ParseUint(body[i:i+end], 16, 32)
			if err != nil || v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
				return "", &SyntaxError{Message: "invalid unicode escape", Offset: escOffset}
			}
			sb.WriteRune(rune(v))
			i += end + 1
		default:
			return "", &SyntaxError{Message: fmt.Sprintf("invalid escape sequence '\\%c'", e), Offset: escOffset}
		}
	}

	return sb.String(), nil
}
