// Package kdl provides the KDL identifier value type: a single lexical
// name token (node names and property keys) that owns both its decoded
// semantic value and, optionally, the exact source spelling it was parsed
// from.
//
// # Identifiers
//
// An Identifier created by parsing remembers its original text, so
// rendering it back reproduces the input byte-for-byte:
//
//	id, err := kdl.ParseIdentifier(`"foo\"bar"`)
//	if err != nil {
//	    // handle error
//	}
//	id.Value()  // foo"bar        (decoded)
//	id.String() // "foo\"bar"     (verbatim round trip)
//
// An Identifier built programmatically has no stored spelling and is
// auto-formatted on render: bare when legal, quoted otherwise:
//
//	kdl.NewIdentifier("foo").String()     // foo
//	kdl.NewIdentifier(`foo"bar`).String() // "foo\"bar"
//
// # Two grammars
//
// The format has two incompatible grammar generations. ParseIdentifier
// tries the current generation first and, when configured with a legacy
// parser, falls back to the legacy grammar. Legacy diagnostics are never
// surfaced from the fallback path: when both grammars reject an input,
// the current-generation error is returned because it is strictly more
// useful to callers. Options replaces the reference implementation's
// compile-time feature toggles with runtime knobs, and the legacy engine
// sits behind the pluggable LegacyIdentifierParser hook so any engine can
// be substituted.
//
// # Equality
//
// Equal compares (value, representation) and deliberately excludes the
// source span: identifiers parsed from different locations with the same
// spelling are interchangeable as map keys. For name lookup across a
// document use SemanticEqual, which compares decoded values only — a bare
// foo and a quoted "foo" are semantically the same name but structurally
// different.
//
// # Thread Safety
//
// All parse functions are safe for concurrent use; each call builds its
// own parser state. An Identifier itself is a plain mutable value with no
// internal locking: share it across goroutines only with external
// synchronization, or not at all.
package kdl
