// Package tokenizer provides KDL v2 token matchers built on Shape's
// tokenizer framework.
package tokenizer

// Token type constants for the KDL identifier grammar.
// These correspond to the terminals of the identifier production
// (docs/grammar/kdl-identifier.ebnf).
const (
	TokenBareIdentifier = "BareIdentifier" // foo, my-node, ...
	TokenString         = "String"         // "..." with escapes
	TokenRawString      = "RawString"      // #"..."# (no escapes)
)
