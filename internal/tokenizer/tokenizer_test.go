package tokenizer

import (
	"testing"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
)

// TestBareIdentifierMatcher tests matching of bare identifiers
func TestBareIdentifierMatcher(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantNil bool
	}{
		{"simple word", "foo", "foo", false},
		{"dashed", "my-node", "my-node", false},
		{"underscored", "_private", "_private", false},
		{"leading sign", "+foo", "+foo", false},
		{"lone dash", "-", "-", false},
		{"unicode", "noël", "noël", false},
		{"stops at space", "foo bar", "foo", false},
		{"stops at equals", "key=value", "key", false},
		{"leading digit", "123", "", true},
		{"sign then digit", "+123", "", true},
		{"dot then digit", ".5", "", true},
		{"keyword true", "true", "", true},
		{"keyword -inf", "-inf", "", true},
		{"empty", "", "", true},
		{"leading space", " foo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := shapetokenizer.NewStream(tt.input)
			token := BareIdentifierMatcher()(stream)

			if tt.wantNil {
				if token != nil {
					t.Errorf("Expected no match, got token %q", token.ValueString())
				}
				return
			}
			if token == nil {
				t.Fatalf("Expected match for %q, got nil", tt.input)
			}
			if token.Kind() != TokenBareIdentifier {
				t.Errorf("Kind = %s, want %s", token.Kind(), TokenBareIdentifier)
			}
			if token.ValueString() != tt.want {
				t.Errorf("Value = %q, want %q", token.ValueString(), tt.want)
			}
		})
	}
}

// TestQuotedStringMatcher tests matching of quoted strings with escapes
func TestQuotedStringMatcher(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantNil bool
	}{
		{"simple", `"foo"`, `"foo"`, false},
		{"escaped quote", `"foo\"bar"`, `"foo\"bar"`, false},
		{"escaped backslash", `"a\\b"`, `"a\\b"`, false},
		{"space escape", `"a\sb"`, `"a\sb"`, false},
		{"named escapes", `"\n\r\t\b\f"`, `"\n\r\t\b\f"`, false},
		{"unicode escape", `"\u{1F600}"`, `"\u{1F600}"`, false},
		{"whitespace escape", `"a\   b"`, `"a\   b"`, false},
		{"empty string", `""`, `""`, false},
		{"literal tab ok", "\"a\tb\"", "\"a\tb\"", false},
		{"stops at close", `"foo" extra`, `"foo"`, false},
		{"unterminated", `"x`, "", true},
		{"bare quote only", `"`, "", true},
		{"literal newline", "\"a\nb\"", "", true},
		{"invalid escape", `"\q"`, "", true},
		{"v1 slash escape rejected", `"\/"`, "", true},
		{"unicode escape missing brace", `"\u1234"`, "", true},
		{"unicode escape empty", `"\u{}"`, "", true},
		{"unicode escape too long", `"\u{12345678}"`, "", true},
		{"not a quote", "foo", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := shapetokenizer.NewStream(tt.input)
			token := QuotedStringMatcher()(stream)

			if tt.wantNil {
				if token != nil {
					t.Errorf("Expected no match, got token %q", token.ValueString())
				}
				return
			}
			if token == nil {
				t.Fatalf("Expected match for %q, got nil", tt.input)
			}
			if token.Kind() != TokenString {
				t.Errorf("Kind = %s, want %s", token.Kind(), TokenString)
			}
			if token.ValueString() != tt.want {
				t.Errorf("Value = %q, want %q", token.ValueString(), tt.want)
			}
		})
	}
}

// TestRawStringMatcher tests matching of raw strings
func TestRawStringMatcher(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantNil bool
	}{
		{"single hash", `#"raw"#`, `#"raw"#`, false},
		{"double hash", `##"has "# inside"##`, `##"has "# inside"##`, false},
		{"backslash is literal", `#"no\escape"#`, `#"no\escape"#`, false},
		{"embedded quote", `#"say "hi""#`, `#"say "hi""#`, false},
		{"empty body", `#""#`, `#""#`, false},
		{"unterminated", `#"x`, "", true},
		{"hash count mismatch", `##"x"#`, "", true},
		{"keyword not raw string", `#true`, "", true},
		{"newline in body", "#\"a\nb\"#", "", true},
		{"no opening quote", `#foo`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := shapetokenizer.NewStream(tt.input)
			token := RawStringMatcher()(stream)

			if tt.wantNil {
				if token != nil {
					t.Errorf("Expected no match, got token %q", token.ValueString())
				}
				return
			}
			if token == nil {
				t.Fatalf("Expected match for %q, got nil", tt.input)
			}
			if token.Kind() != TokenRawString {
				t.Errorf("Kind = %s, want %s", token.Kind(), TokenRawString)
			}
			if token.ValueString() != tt.want {
				t.Errorf("Value = %q, want %q", token.ValueString(), tt.want)
			}
		})
	}
}
