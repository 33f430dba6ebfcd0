package kdl

import (
	v1 "github.com/shapestone/shape-kdl/internal/v1"
)

// LegacyIdentifier is the result shape a legacy-grammar engine produces:
// the decoded value, the original spelling when the engine kept one, and
// the source span remapped to an (offset, length) pair.
type LegacyIdentifier struct {
	Value   string
	Repr    string
	HasRepr bool
	Span    Span
}

// LegacyIdentifierParser is the pluggable legacy-grammar capability. Any
// engine that can turn text into a LegacyIdentifier may be plugged in;
// the built-in one is LegacyParserV1. A nil parser disables legacy
// support entirely.
type LegacyIdentifierParser func(input string) (LegacyIdentifier, error)

// Options controls parsing behavior. The reference implementation's
// compile-time feature toggles map onto these three independent knobs.
type Options struct {
	// TrackSpans populates the source span of parsed identifiers. When
	// false, parsed identifiers carry a zero span.
	TrackSpans bool

	// LegacyFallback retries failed parses against the legacy grammar.
	// It has no effect without a LegacyParser.
	LegacyFallback bool

	// LegacyParser is the legacy-grammar engine used by the fallback and
	// by the direct legacy parse entry point. Nil disables both.
	LegacyParser LegacyIdentifierParser
}

// DefaultOptions enables span tracking and the built-in legacy engine
// with fallback, matching the reference implementation's default build.
func DefaultOptions() Options {
	return Options{
		TrackSpans:     true,
		LegacyFallback: true,
		LegacyParser:   LegacyParserV1(),
	}
}

// LegacyParserV1 returns the built-in legacy-grammar engine.
func LegacyParserV1() LegacyIdentifierParser {
	return func(input string) (LegacyIdentifier, error) {
		id, err := v1.ParseIdentifier(input)
		if err != nil {
			return LegacyIdentifier{}, err
		}
		return LegacyIdentifier{
			Value:   id.Value,
			Repr:    id.Repr,
			HasRepr: id.HasRepr,
			Span:    Span{Offset: id.Offset, Length: id.Length},
		}, nil
	}
}
