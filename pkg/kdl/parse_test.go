package kdl

import (
	"errors"
	"strings"
	"testing"
)

// TestLegacyFallback verifies that inputs only the legacy grammar
// accepts are parsed through the fallback.
func TestLegacyFallback(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue string
	}{
		// '#' is legal inside legacy bare identifiers but not current ones.
		{"legacy bare punctuation", "foo#bar", "foo#bar"},
		// \/ is a legacy-only escape.
		{"legacy slash escape", `"\/"`, "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseIdentifier(tt.input)
			if err != nil {
				t.Fatalf("ParseIdentifier(%q) error: %v", tt.input, err)
			}
			if id.Value() != tt.wantValue {
				t.Errorf("Value = %q, want %q", id.Value(), tt.wantValue)
			}
			repr, ok := id.Repr()
			if !ok || repr != tt.input {
				t.Errorf("Repr = %q (%v), want the original text", repr, ok)
			}
		})
	}
}

// TestKeywordAndEmptyRejection pins down how keyword-shaped inputs and
// empty input behave across the two grammars. `true` and empty input are
// rejected by both engines; `#true` is a keyword literal to the current
// grammar but a plain bare identifier to the legacy one, so the default
// fallback accepts it.
func TestKeywordAndEmptyRejection(t *testing.T) {
	t.Run("rejected under every configuration", func(t *testing.T) {
		for _, input := range []string{"", "true", "false", "null"} {
			if id, err := ParseIdentifier(input); err == nil {
				t.Errorf("ParseIdentifier(%q) = %v, want error", input, id)
			}
		}
	})

	t.Run("keywords rejected without fallback", func(t *testing.T) {
		opts := DefaultOptions()
		opts.LegacyFallback = false

		for _, input := range []string{"true", "#true", "#null"} {
			_, err := ParseIdentifierWith(input, opts)
			if err == nil {
				t.Fatalf("ParseIdentifierWith(%q) succeeded, want keyword rejection", input)
			}
			if !strings.Contains(err.Error(), "keyword") {
				t.Errorf("error for %q = %v, want a keyword diagnostic", input, err)
			}
		}
	})

	t.Run("hash-prefixed keyword is a legacy bare identifier", func(t *testing.T) {
		id, err := ParseIdentifier("#true")
		if err != nil {
			t.Fatalf("ParseIdentifier(%q) error: %v", "#true", err)
		}
		if id.Value() != "#true" {
			t.Errorf("Value = %q, want %q", id.Value(), "#true")
		}
	})
}

// TestFallbackPrecedence verifies that the current-generation decoding
// wins whenever the current grammar accepts, even if a legacy parser
// would decode the same input differently.
func TestFallbackPrecedence(t *testing.T) {
	opts := DefaultOptions()
	opts.LegacyParser = func(input string) (LegacyIdentifier, error) {
		return LegacyIdentifier{Value: "LEGACY", Repr: input, HasRepr: true}, nil
	}

	id, err := ParseIdentifierWith("foo", opts)
	if err != nil {
		t.Fatalf("ParseIdentifierWith error: %v", err)
	}
	if id.Value() != "foo" {
		t.Errorf("Value = %q, want %q (current-generation decoding must win)", id.Value(), "foo")
	}
}

// TestFallbackErrorShadowing verifies that when both grammars reject,
// the returned error is the current-generation one and the legacy error
// is swallowed entirely.
func TestFallbackErrorShadowing(t *testing.T) {
	opts := DefaultOptions()
	opts.LegacyParser = func(input string) (LegacyIdentifier, error) {
		return LegacyIdentifier{}, errors.New("legacy engine exploded")
	}

	_, err := ParseIdentifierWith(`"x`, opts)
	if err == nil {
		t.Fatal("expected error for unterminated string")
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if !strings.Contains(perr.Message, "unterminated string") {
		t.Errorf("Message = %q, want the current-generation diagnostic", perr.Message)
	}
	if strings.Contains(err.Error(), "legacy engine exploded") {
		t.Errorf("legacy diagnostic leaked into the returned error: %v", err)
	}
}

// TestFallbackDisabled verifies the LegacyFallback knob.
func TestFallbackDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.LegacyFallback = false

	if _, err := ParseIdentifierWith("foo#bar", opts); err == nil {
		t.Error("legacy-only input parsed with fallback disabled")
	}

	// Still fine for current-generation input.
	if _, err := ParseIdentifierWith("foo", opts); err != nil {
		t.Errorf("current-generation input failed: %v", err)
	}
}

// TestLegacySupportDisabled verifies that a nil legacy parser disables
// both the fallback and the direct legacy entry point.
func TestLegacySupportDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.LegacyParser = nil

	if _, err := ParseIdentifierWith("foo#bar", opts); err == nil {
		t.Error("legacy-only input parsed with no legacy parser configured")
	}

	_, err := ParseLegacyIdentifierWith("foo", opts)
	if err == nil {
		t.Fatal("direct legacy parse succeeded with no legacy parser configured")
	}
	if !strings.Contains(err.Error(), "disabled") {
		t.Errorf("error = %v, want a legacy-support-disabled message", err)
	}
}

// TestParseLegacyIdentifier verifies the direct legacy entry point.
func TestParseLegacyIdentifier(t *testing.T) {
	id, err := ParseLegacyIdentifier(`"\/"`)
	if err != nil {
		t.Fatalf("ParseLegacyIdentifier error: %v", err)
	}
	if id.Value() != "/" {
		t.Errorf("Value = %q, want %q", id.Value(), "/")
	}

	// Unlike the fallback path, the legacy diagnostic surfaces here.
	_, err = ParseLegacyIdentifier(`"\s"`)
	if err == nil {
		t.Fatal("legacy parse accepted a current-generation-only escape")
	}
	if !strings.Contains(err.Error(), "invalid escape") {
		t.Errorf("error = %v, want the legacy invalid-escape diagnostic", err)
	}
}

// TestSpanTracking verifies the TrackSpans knob.
func TestSpanTracking(t *testing.T) {
	opts := DefaultOptions()
	opts.TrackSpans = false

	id, err := ParseIdentifierWith("foo", opts)
	if err != nil {
		t.Fatal(err)
	}
	if !id.Span().IsZero() {
		t.Errorf("Span = %+v with tracking disabled, want zero", id.Span())
	}

	// Legacy results are stripped the same way.
	id, err = ParseIdentifierWith("foo#bar", opts)
	if err != nil {
		t.Fatal(err)
	}
	if !id.Span().IsZero() {
		t.Errorf("legacy Span = %+v with tracking disabled, want zero", id.Span())
	}
}

// TestParseErrorSpan verifies that surfaced errors carry the offending
// span.
func TestParseErrorSpan(t *testing.T) {
	_, err := ParseIdentifier("foo bar")
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if perr.Span.Offset != 3 {
		t.Errorf("Span.Offset = %d, want 3", perr.Span.Offset)
	}
}
