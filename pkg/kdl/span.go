package kdl

// Span is the byte range an identifier covered in the input it was
// parsed from. Spans record provenance only: they are excluded from
// Equal and Hash, and mutating an identifier does not update them.
type Span struct {
	Offset int
	Length int
}

// End returns the byte offset one past the spanned range.
func (s Span) End() int {
	return s.Offset + s.Length
}

// IsZero reports whether the span is the zero value, which is what
// identifiers built from plain strings (or parsed with span tracking
// disabled) carry.
func (s Span) IsZero() bool {
	return s.Offset == 0 && s.Length == 0
}
