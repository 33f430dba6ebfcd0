package kdl

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// ParseError is the single error type surfaced by the parse entry
// points. It always carries a current-generation diagnostic: when the
// legacy fallback was attempted and also failed, the legacy error is
// discarded and the current-generation one is returned unchanged.
type ParseError struct {
	Message string
	Pos     ast.Position
	Span    Span
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos.String())
}
