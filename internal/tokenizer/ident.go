package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Identifier character legality for KDL v2 bare identifiers.
//
// Grammar:
//
//	BareIdentifier = IdentifierChar { IdentifierChar } ;
//	IdentifierChar = any character except:
//	                 whitespace, newline, and \ / ( ) { } [ ] ; " # =
//
// Additional string-level restrictions (checked by IsBareIdentifier):
//   - must not begin with a digit, or with a sign/dot prefix that makes it
//     ambiguous with a number literal
//   - must not equal one of the reserved keywords (true, false, null,
//     inf, -inf, nan)

// IsIdentifierChar reports whether r may appear anywhere in a bare
// identifier.
func IsIdentifierChar(r rune) bool {
	if r <= 0x20 || r == 0x7F || r == 0xFEFF || r == utf8.RuneError {
		return false
	}
	if unicode.IsSpace(r) {
		return false
	}
	switch r {
	case '\\', '/', '(', ')', '{', '}', '[', ']', ';', '"', '#', '=':
		return false
	}
	return true
}

// reservedKeywords are the bare words that KDL v2 reserves for keyword
// literals (spelled #true, #false, ... in source). They are never legal
// bare identifiers and must be quoted instead.
var reservedKeywords = map[string]bool{
	"true":  true,
	"false": true,
	"null":  true,
	"inf":   true,
	"-inf":  true,
	"nan":   true,
}

// IsReservedKeyword reports whether s is a reserved keyword word.
func IsReservedKeyword(s string) bool {
	return reservedKeywords[s]
}

// LooksLikeNumber reports whether s begins the way a KDL number literal
// begins: a digit, an optional sign followed by a digit, or a dot
// (optionally after a sign) followed by a digit. Bare identifiers with
// such prefixes are rejected to keep them unambiguous with numbers.
func LooksLikeNumber(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if r == '+' || r == '-' {
		s = s[size:]
		r, size = utf8.DecodeRuneInString(s)
	}
	if r == '.' {
		s = s[size:]
		r, _ = utf8.DecodeRuneInString(s)
	}
	return r >= '0' && r <= '9'
}

// IsBareIdentifier reports whether s is legal as an unquoted identifier.
// An empty string, a number lookalike, a reserved keyword, or any string
// containing an illegal character must be quoted when rendered.
func IsBareIdentifier(s string) bool {
	if s == "" {
		return false
	}
	if LooksLikeNumber(s) || IsReservedKeyword(s) {
		return false
	}
	for _, r := range s {
		if !IsIdentifierChar(r) {
			return false
		}
	}
	return true
}
