package kdl

import (
	"github.com/shapestone/shape-core/pkg/ast"
	"github.com/shapestone/shape-kdl/internal/parser"
)

// ParseIdentifier parses text into an identifier using DefaultOptions:
// the current-generation grammar first, then the built-in legacy engine
// as a fallback.
//
// Example:
//
//	id, err := kdl.ParseIdentifier("foo")
//	id.Value()  // foo
//	id.String() // foo
func ParseIdentifier(input string) (*Identifier, error) {
	return ParseIdentifierWith(input, DefaultOptions())
}

// ParseIdentifierWith parses text into an identifier under the given
// options.
//
// The current-generation grammar is attempted first. If it rejects the
// input and the legacy fallback is enabled, the legacy engine is tried;
// on legacy success the result is converted with FromLegacy. On legacy
// failure the legacy error is discarded and the current-generation error
// is returned unchanged — current-generation diagnostics are strictly
// more useful to callers.
//
// A failed parse never yields a partially constructed identifier.
func ParseIdentifierWith(input string, opts Options) (*Identifier, error) {
	res, serr := parser.ParseIdentifier(input)
	if serr == nil {
		id := &Identifier{value: res.Value, repr: res.Repr, hasRepr: true}
		if opts.TrackSpans {
			id.span = Span{Offset: res.Offset, Length: res.Length}
		}
		return id, nil
	}

	if opts.LegacyFallback && opts.LegacyParser != nil {
		if legacy, err := opts.LegacyParser(input); err == nil {
			id := FromLegacy(legacy)
			if !opts.TrackSpans {
				id.span = Span{}
			}
			return id, nil
		}
		// Both grammars rejected: surface only the current-generation
		// diagnostic.
	}

	return nil, &ParseError{
		Message: serr.Message,
		Pos:     serr.Pos,
		Span:    Span{Offset: serr.Offset, Length: serr.Length},
	}
}

// ParseLegacyIdentifier parses text against the legacy grammar only,
// using the built-in engine.
func ParseLegacyIdentifier(input string) (*Identifier, error) {
	return ParseLegacyIdentifierWith(input, DefaultOptions())
}

// ParseLegacyIdentifierWith parses text against the legacy grammar only,
// using the engine configured in opts. Unlike the fallback path, the
// legacy engine's diagnostic is surfaced here: there is no
// current-generation error to prefer.
func ParseLegacyIdentifierWith(input string, opts Options) (*Identifier, error) {
	if opts.LegacyParser == nil {
		return nil, &ParseError{Message: "legacy format support is disabled", Pos: ast.ZeroPosition()}
	}

	legacy, err := opts.LegacyParser(input)
	if err != nil {
		return nil, &ParseError{Message: err.Error(), Pos: ast.ZeroPosition()}
	}

	id := FromLegacy(legacy)
	if !opts.TrackSpans {
		id.span = Span{}
	}
	return id, nil
}
