package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// The identifier production is a single-token grammar: exactly one of the
// matchers below must consume the caller's entire input. Whitespace is
// never skipped — a lone identifier token has no room for it, so the
// parser treats leftover input (including spaces) as a syntax error.

// BareIdentifierMatcher creates a matcher for KDL bare identifiers.
//
// Grammar:
//
//	BareIdentifier = IdentifierChar { IdentifierChar } ;
//
// The matcher consumes the maximal run of identifier characters and then
// rejects the result if it is ambiguous with a number literal or equal to
// a reserved keyword (see IsBareIdentifier). Those inputs must be spelled
// as quoted strings instead.
func BareIdentifierMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok || !IsIdentifierChar(r) {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		// Maximal run consumed; now apply the string-level rules.
		if !IsBareIdentifier(string(value)) {
			return nil
		}

		return tokenizer.NewToken(TokenBareIdentifier, value)
	}
}

// QuotedStringMatcher creates a matcher for KDL quoted strings.
// Matches: "..." with escape sequences \", \\, \b, \f, \n, \r, \t, \s,
// \u{X...} (1-6 hex digits), and the whitespace escape (backslash
// followed by a run of spaces/tabs, which is elided).
//
// Grammar:
//
//	String = '"' { Character } '"' ;
//	Character = UnescapedChar | EscapeSequence | WhitespaceEscape ;
//	EscapeSequence = "\\" ( '"' | "\\" | "b" | "f" | "n" | "r" | "t" | "s" | UnicodeEscape ) ;
//	UnicodeEscape = "u" "{" HexDigit{1,6} "}" ;
//	WhitespaceEscape = "\\" ( " " | "\t" ) { " " | "\t" } ;
//
// Literal newlines terminate matching: a single-line quoted identifier
// cannot span lines, so a quote left open at a line break or at EOF is an
// unterminated string.
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func QuotedStringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		// Try ByteStream fast path for ASCII strings
		if byteStream, ok := stream.(tokenizer.ByteStream); ok {
			return quotedStringMatcherByte(byteStream)
		}

		// Fallback to rune-based matcher for non-ByteStream
		return quotedStringMatcherRune(stream)
	}
}

// quotedStringMatcherByte uses ByteStream + SWAR for optimal performance.
func quotedStringMatcherByte(stream tokenizer.ByteStream) *tokenizer.Token {
	// Opening quote
	b, ok := stream.PeekByte()
	if !ok || b != '"' {
		return nil
	}

	startPos := stream.BytePosition()
	stream.NextByte() // consume opening quote

	for {
		// Find next quote or backslash using SWAR
		offset := tokenizer.FindEscapeOrQuote(stream.RemainingBytes())

		if offset == -1 {
			// No quote or escape found - unterminated string
			return nil
		}

		// Advance to the found position
		for i := 0; i < offset; i++ {
			b, ok := stream.NextByte()
			if !ok {
				return nil
			}
			// Control characters terminate the token (tab excepted)
			if b < 0x20 && b != '\t' {
				return nil
			}
		}

		// Now at quote or backslash
		b, ok := stream.NextByte()
		if !ok {
			return nil
		}

		if b == '"' {
			// Found closing quote - extract string
			value := stream.SliceFrom(startPos)
			return tokenizer.NewToken(TokenString, []rune(string(value)))
		}

		if b == '\\' {
			escaped, ok := stream.NextByte()
			if !ok {
				return nil
			}

			switch escaped {
			case '"', '\\', 'b', 'f', 'n', 'r', 't', 's':
				// Valid single-char escape
			case ' ', '\t':
				// Whitespace escape - consume the rest of the run
				for {
					ws, ok := stream.PeekByte()
					if !ok || (ws != ' ' && ws != '\t') {
						break
					}
					stream.NextByte()
				}
			case 'u':
				// Unicode escape: u{ 1-6 hex digits }
				brace, ok := stream.NextByte()
				if !ok || brace != '{' {
					return nil
				}
				digits := 0
				for {
					hex, ok := stream.NextByte()
					if !ok {
						return nil
					}
					if hex == '}' {
						break
					}
					if !isHexDigitByte(hex) {
						return nil
					}
					digits++
					if digits > 6 {
						return nil
					}
				}
				if digits == 0 {
					return nil
				}
			default:
				// Invalid escape sequence
				return nil
			}
		}
	}
}

// quotedStringMatcherRune is the fallback rune-based implementation.
func quotedStringMatcherRune(stream tokenizer.Stream) *tokenizer.Token {
	var value []rune

	// Opening quote
	r, ok := stream.NextChar()
	if !ok || r != '"' {
		return nil
	}
	value = append(value, r)

	for {
		r, ok := stream.NextChar()
		if !ok {
			return nil
		}

		value = append(value, r)

		if r == '"' {
			return tokenizer.NewToken(TokenString, value)
		}

		if r == '\\' {
			r, ok := stream.NextChar()
			if !ok {
				return nil
			}
			value = append(value, r)

			switch r {
			case '"', '\\', 'b', 'f', 'n', 'r', 't', 's':
				// Valid single-char escape
			case ' ', '\t':
				// Whitespace escape - consume the rest of the run
				for {
					ws, ok := stream.PeekChar()
					if !ok || (ws != ' ' && ws != '\t') {
						break
					}
					stream.NextChar()
					value = append(value, ws)
				}
			case 'u':
				brace, ok := stream.NextChar()
				if !ok || brace != '{' {
					return nil
				}
				value = append(value, brace)
				digits := 0
				for {
					hex, ok := stream.NextChar()
					if !ok {
						return nil
					}
					value = append(value, hex)
					if hex == '}' {
						break
					}
					if !isHexDigit(hex) {
						return nil
					}
					digits++
					if digits > 6 {
						return nil
					}
				}
				if digits == 0 {
					return nil
				}
			default:
				// Invalid escape sequence
				return nil
			}
		} else if r < 0x20 && r != '\t' {
			// Control characters not allowed (except tab)
			return nil
		}
	}
}

// RawStringMatcher creates a matcher for KDL raw strings.
// Matches: #"..."# with any number of leading hashes and the same number
// of trailing hashes. No escape processing happens inside a raw string.
//
// Grammar:
//
//	RawString = Hashes '"' { Character } '"' Hashes ;
//	Hashes = "#" { "#" } ;
//
// The closing quote must be followed by exactly as many hashes as opened
// the string. Newlines and EOF before the closing delimiter make the
// string unterminated.
func RawStringMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '#' {
			return nil
		}

		var value []rune
		hashes := 0
		for {
			r, ok := stream.PeekChar()
			if !ok || r != '#' {
				break
			}
			stream.NextChar()
			value = append(value, r)
			hashes++
		}

		// Opening quote
		r, ok = stream.NextChar()
		if !ok || r != '"' {
			return nil
		}
		value = append(value, r)

		pending := 0 // trailing hashes seen since the last quote
		closed := false
		for {
			r, ok := stream.NextChar()
			if !ok {
				if closed && pending == hashes {
					return tokenizer.NewToken(TokenRawString, value)
				}
				return nil
			}
			value = append(value, r)

			switch {
			case r == '"':
				closed = true
				pending = 0
			case closed && r == '#':
				pending++
				if pending == hashes {
					return tokenizer.NewToken(TokenRawString, value)
				}
			case r == '\n' || r == '\r':
				// Raw identifier strings are single-line
				return nil
			default:
				closed = false
				pending = 0
			}
		}
	}
}

// isHexDigitByte checks if a byte is a hex digit (0-9, a-f, A-F).
func isHexDigitByte(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isHexDigit returns true if r is a hexadecimal digit (0-9, a-f, A-F).
func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}
