// Package parser implements the KDL identifier production on top of the
// internal tokenizer. Unlike a document parser it matches a single token
// that must cover the caller's entire input; anything left over (including
// whitespace) is a syntax error.
package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/ast"
	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-kdl/internal/tokenizer"
)

// Identifier is the raw result of matching the identifier production:
// the decoded value, the exact source text that produced it, and the byte
// range the token covered.
type Identifier struct {
	Value  string
	Repr   string
	Offset int
	Length int
}

// SyntaxError describes a failure to match the identifier production.
// It carries the human-readable message plus the position and byte span
// of the offending text.
type SyntaxError struct {
	Message string
	Pos     ast.Position
	Offset  int
	Length  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos.String())
}

// ParseIdentifier matches input against the identifier production.
//
// Grammar:
//
//	Identifier = BareIdentifier | String | RawString ;
//
// The first character selects the alternative (LL(1)): '"' starts a
// quoted string, '#' a raw string, anything else a bare identifier.
// The matched token must consume the whole input.
func ParseIdentifier(input string) (*Identifier, *SyntaxError) {
	if input == "" {
		return nil, errAt(input, 0, 0, "expected identifier, found end of input")
	}

	first, _ := utf8.DecodeRuneInString(input)
	switch first {
	case '"':
		return parseQuoted(input)
	case '#':
		return parseRaw(input)
	default:
		return parseBare(input)
	}
}

// parseQuoted matches a quoted string identifier and decodes its escapes.
func parseQuoted(input string) (*Identifier, *SyntaxError) {
	stream := shapetokenizer.NewStream(input)
	tok := tokenizer.QuotedStringMatcher()(stream)
	if tok == nil {
		return nil, diagnoseString(input)
	}

	repr := tok.ValueString()
	if len(repr) < len(input) {
		return nil, trailing(input, len(repr))
	}

	value, serr := decodeString(repr)
	if serr != nil {
		serr.Pos = positionAt(input, serr.Offset)
		return nil, serr
	}

	return &Identifier{Value: value, Repr: repr, Offset: 0, Length: len(repr)}, nil
}

// parseRaw matches a raw string identifier. Raw strings have no escapes,
// so the value is the text between the delimiters, verbatim.
func parseRaw(input string) (*Identifier, *SyntaxError) {
	stream := shapetokenizer.NewStream(input)
	tok := tokenizer.RawStringMatcher()(stream)
	if tok == nil {
		return nil, diagnoseRaw(input)
	}

	repr := tok.ValueString()
	if len(repr) < len(input) {
		return nil, trailing(input, len(repr))
	}

	hashes := 0
	for hashes < len(repr) && repr[hashes] == '#' {
		hashes++
	}
	value := repr[hashes+1 : len(repr)-hashes-1]

	return &Identifier{Value: value, Repr: repr, Offset: 0, Length: len(repr)}, nil
}

// parseBare matches a bare identifier. The matcher handles the happy
// path; on rejection the input is re-examined to pick the most specific
// diagnostic.
func parseBare(input string) (*Identifier, *SyntaxError) {
	stream := shapetokenizer.NewStream(input)
	tok := tokenizer.BareIdentifierMatcher()(stream)
	if tok != nil {
		repr := tok.ValueString()
		if len(repr) < len(input) {
			return nil, trailing(input, len(repr))
		}
		return &Identifier{Value: repr, Repr: repr, Offset: 0, Length: len(repr)}, nil
	}

	first, size := utf8.DecodeRuneInString(input)
	if unicode.IsSpace(first) {
		return nil, errAt(input, 0, size, "unexpected whitespace, expected identifier")
	}

	run := identRun(input)
	if run == "" {
		return nil, errAt(input, 0, size, fmt.Sprintf("unexpected %q, expected identifier", first))
	}
	if first >= '0' && first <= '9' {
		return nil, errAt(input, 0, len(run), "bare identifiers cannot begin with a digit")
	}
	if tokenizer.LooksLikeNumber(run) {
		return nil, errAt(input, 0, len(run), fmt.Sprintf("bare identifier %q is ambiguous with a number literal", run))
	}
	if tokenizer.IsReservedKeyword(run) {
		return nil, errAt(input, 0, len(run), fmt.Sprintf("%q is a reserved keyword; quote it to use it as an identifier", run))
	}

	// The run itself was legal, so the matcher must have stopped early.
	return nil, trailing(input, len(run))
}

// identRun returns the maximal prefix of input made of identifier
// characters.
func identRun(input string) string {
	end := 0
	for _, r := range input {
		if !tokenizer.IsIdentifierChar(r) {
			break
		}
		end += utf8.RuneLen(r)
	}
	return input[:end]
}

// diagnoseString explains why the quoted string matcher rejected input.
// input is known to begin with a double quote.
func diagnoseString(input string) *SyntaxError {
	i := 1
	for i < len(input) {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case r == '\n' || r == '\r':
			return errAt(input, i, size, "unexpected newline in string literal; identifiers are single-line")
		case r == '\\':
			if serr := diagnoseEscape(input, &i); serr != nil {
				return serr
			}
		case r < 0x20 && r != '\t':
			return errAt(input, i, size, "control character not allowed in string literal")
		default:
			i += size
		}
	}
	return errAt(input, 0, len(input), "unterminated string literal")
}

// diagnoseEscape validates the escape sequence starting at *i (which
// points at the backslash) and advances *i past it. Returns a non-nil
// error for invalid sequences.
func diagnoseEscape(input string, i *int) *SyntaxError {
	start := *i
	*i++ // backslash
	if *i >= len(input) {
		return errAt(input, 0, len(input), "unterminated string literal")
	}
	e, size := utf8.DecodeRuneInString(input[*i:])
	*i += size

	switch e {
	case '"', '\\', 'b', 'f', 'n', 'r', 't', 's':
		return nil
	case ' ', '\t':
		for *i < len(input) && (input[*i] == ' ' || input[*i] == '\t') {
			*i++
		}
		return nil
	case 'u':
		if *i >= len(input) || input[*i] != '{' {
			return errAt(input, start, *i-start, "expected '{' after '\\u' in string literal")
		}
		*i++
		digits := 0
		for *i < len(input) && input[*i] != '}' {
			if !isHexByte(input[*i]) || digits >= 6 {
				return errAt(input, start, *i-start+1, "invalid unicode escape in string literal")
			}
			*i++
			digits++
		}
		if *i >= len(input) {
			return errAt(input, 0, len(input), "unterminated string literal")
		}
		if digits == 0 {
			return errAt(input, start, *i-start+1, "invalid unicode escape in string literal")
		}
		*i++ // closing brace
		return nil
	default:
		return errAt(input, start, size+1, fmt.Sprintf("invalid escape sequence '\\%c' in string literal", e))
	}
}

// diagnoseRaw explains why the raw string matcher rejected input.
// input is known to begin with a hash.
func diagnoseRaw(input string) *SyntaxError {
	hashes := 0
	for hashes < len(input) && input[hashes] == '#' {
		hashes++
	}

	if hashes >= len(input) || input[hashes] != '"' {
		rest := input[hashes:]
		if run := identRun(rest); run != "" && tokenizer.IsReservedKeyword(run) {
			return errAt(input, 0, hashes+len(run), fmt.Sprintf("%q is a keyword literal, not an identifier", input[:hashes+len(run)]))
		}
		return errAt(input, 0, hashes, "expected '\"' to open a raw string")
	}

	for i := hashes + 1; i < len(input); i++ {
		if input[i] == '\n' || input[i] == '\r' {
			return errAt(input, i, 1, "unexpected newline in raw string literal; identifiers are single-line")
		}
	}
	return errAt(input, 0, len(input), "unterminated raw string literal")
}

// trailing reports leftover input after a complete token.
func trailing(input string, offset int) *SyntaxError {
	r, size := utf8.DecodeRuneInString(input[offset:])
	if unicode.IsSpace(r) {
		return errAt(input, offset, size, "unexpected whitespace after identifier")
	}
	return errAt(input, offset, size, fmt.Sprintf("unexpected %q after identifier", r))
}

// errAt builds a SyntaxError for the given byte span of input.
func errAt(input string, offset, length int, msg string) *SyntaxError {
	return &SyntaxError{
		Message: msg,
		Pos:     positionAt(input, offset),
		Offset:  offset,
		Length:  length,
	}
}

// positionAt converts a byte offset into a 1-based row/column position.
func positionAt(input string, offset int) ast.Position {
	row, col := 1, 1
	for i := 0; i < offset && i < len(input); i++ {
		if input[i] == '\n' {
			row++
			col = 1
		} else {
			col++
		}
	}
	return ast.NewPosition(offset, row, col)
}

// isHexByte checks if a byte is a hex digit (0-9, a-f, A-F).
func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
