package kdl

import (
	"encoding/binary"
	"hash/fnv"
	"io"
)

// Identifier represents a KDL identifier: the name of a node or the key
// of a property.
//
// It holds the decoded semantic value and, when the identifier came from
// parsed text, the exact original spelling (its representation). The
// representation makes rendering lossless; clearing it with ClearFormat
// switches the identifier to canonical auto-formatting.
type Identifier struct {
	value   string
	repr    string
	hasRepr bool
	span    Span
}

// NewIdentifier creates an identifier from a plain string value. No
// validation is performed: the value may be arbitrary text, and the
// formatting step decides whether it can be emitted bare or must be
// quoted. The identifier has no custom representation and a zero span.
func NewIdentifier(value string) *Identifier {
	return &Identifier{value: value}
}

// FromLegacy converts a successfully parsed legacy-grammar identifier
// into an Identifier, copying its decoded value, its spelling if
// customized, and its span.
func FromLegacy(legacy LegacyIdentifier) *Identifier {
	id := &Identifier{value: legacy.Value, span: legacy.Span}
	if legacy.HasRepr {
		id.repr = legacy.Repr
		id.hasRepr = true
	}
	return id
}

// Value returns the decoded string value of this identifier.
func (id *Identifier) Value() string {
	return id.value
}

// SetValue sets the string value of this identifier. The value is not
// re-parsed or validated; the stored representation (if any) is left
// untouched and still wins when rendering.
func (id *Identifier) SetValue(value string) {
	id.value = value
}

// Repr returns the custom string representation of this identifier, if
// any.
func (id *Identifier) Repr() (string, bool) {
	return id.repr, id.hasRepr
}

// SetRepr sets a custom string representation for this identifier. It is
// emitted verbatim by String, whether or not it would re-parse to the
// same value.
func (id *Identifier) SetRepr(repr string) {
	id.repr = repr
	id.hasRepr = true
}

// Span returns this identifier's source span.
//
// The span is initialized when the identifier is parsed with span
// tracking enabled, but is not maintained across mutation: a modified
// identifier's span is best-effort provenance only.
func (id *Identifier) Span() Span {
	return id.span
}

// SetSpan sets this identifier's source span.
func (id *Identifier) SetSpan(span Span) {
	id.span = span
}

// ClearFormat resets this identifier to its default representation. The
// next render derives a canonical spelling from the value: bare if that
// is legal, quoted otherwise.
func (id *Identifier) ClearFormat() {
	id.repr = ""
	id.hasRepr = false
}

// Autoformat auto-formats this identifier.
func (id *Identifier) Autoformat() {
	id.ClearFormat()
}

// String renders this identifier. A custom representation is emitted
// verbatim; otherwise the value is rendered with the format's standard
// string rule, so any value is representable.
func (id *Identifier) String() string {
	if id.hasRepr {
		return id.repr
	}
	return formatStringValue(id.value)
}

// Len returns the byte length of this identifier when rendered. Note
// that an empty value without a custom representation renders as "" and
// therefore has length 2.
func (id *Identifier) Len() int {
	return len(id.String())
}

// IsEmpty returns true if this identifier renders to nothing at all.
func (id *Identifier) IsEmpty() bool {
	return id.Len() == 0
}

// Equal reports structural equality: values and representations must
// both match. Spans are intentionally excluded. Two identifiers with the
// same decoded value but different spellings (bare foo vs quoted "foo")
// are not Equal; use SemanticEqual for name matching.
func (id *Identifier) Equal(other *Identifier) bool {
	return id.value == other.value &&
		id.hasRepr == other.hasRepr &&
		id.repr == other.repr
}

// SemanticEqual reports whether two identifiers name the same thing,
// comparing decoded values only and ignoring spelling and span.
func (id *Identifier) SemanticEqual(other *Identifier) bool {
	return id.value == other.value
}

// Hash returns a 64-bit hash over the same components Equal compares,
// so equal identifiers always hash alike regardless of where they were
// parsed from.
func (id *Identifier) Hash() uint64 {
	h := fnv.New64a()
	// Length-prefix the value so the value/repr boundary is unambiguous
	// in the hashed byte stream.
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(len(id.value)))
	h.Write(n[:])
	io.WriteString(h, id.value)
	if id.hasRepr {
		h.Write([]byte{1})
		io.WriteString(h, id.repr)
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}
